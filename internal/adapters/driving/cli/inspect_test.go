package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
)

const sampleEntry = `# 2025-03-01
## A. Project Log
#LifeOS #Garden planted beans
Next Steps:
- Fix fence
## B. Life Log
Long walk, slept well.
`

func TestParseCmd(t *testing.T) {
	setupTestServices(t)

	out, err := run(t, sampleEntry, "parse")
	require.NoError(t, err)

	assert.Contains(t, out, "Garden")
	assert.Contains(t, out, "planted beans")
	assert.Contains(t, out, "- Fix fence")
	assert.Contains(t, out, "Long walk, slept well.")
}

func TestParseCmd_FromFile(t *testing.T) {
	setupTestServices(t)
	path := filepath.Join(t.TempDir(), "entry.md")
	require.NoError(t, os.WriteFile(path, []byte("just a day"), 0o644))

	out, err := run(t, "", "parse", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "(no project section)")
}

func TestParseCmd_MissingFile(t *testing.T) {
	setupTestServices(t)

	_, err := run(t, "", "parse", "--file", filepath.Join(t.TempDir(), "nope.md"))
	assert.Error(t, err)
}

func TestExtractCmd(t *testing.T) {
	setupTestServices(t)

	out, err := run(t, "- [ ] call the plumber\n- [x] done already\n", "extract")
	require.NoError(t, err)
	assert.Contains(t, out, "[High] call the plumber")
	assert.NotContains(t, out, "done already")
}

func TestExtractCmd_None(t *testing.T) {
	setupTestServices(t)

	out, err := run(t, "", "extract", "nothing", "to", "do")
	require.NoError(t, err)
	assert.Contains(t, out, "No action items found.")
}

func TestPendingCmd(t *testing.T) {
	setupTestServices(t,
		domain.RawEntry{ID: "a1", Date: "2025-03-01", Analysis: &domain.Analysis{Summary: "calm"}},
		domain.RawEntry{ID: "b2", Date: "2025-03-02"},
	)

	out, err := run(t, "", "pending")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-03-01 a1 calm")
	assert.Contains(t, out, "b2")
}

func TestPendingCmd_Empty(t *testing.T) {
	setupTestServices(t)

	out, err := run(t, "", "pending")
	require.NoError(t, err)
	assert.Contains(t, out, "Inbox is empty.")
}
