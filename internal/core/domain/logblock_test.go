package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLogBlock(t *testing.T) {
	block := FormatLogBlock("2025-03-01", "ab12cd34", "  worked on things\n")
	assert.Equal(t, "\n\n### 2025-03-01 (Ref: ab12cd34)\nworked on things\n\n---", block)
	assert.Contains(t, block, LogRef("ab12cd34"))
}

func TestLogPaths(t *testing.T) {
	assert.Equal(t, "projects/Health.md", ProjectLogPath("Health"))
	assert.Equal(t, "life/life_log_2025-03.md", LifeLogPath(LifeBucketMonth.Period("2025-03-01")))
	assert.Equal(t, "life/life_log_2025.md", LifeLogPath(LifeBucketYear.Period("2025-03-01")))
}
