package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lifeos-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/normalisers/dualtrack"
)

func TestInspectService(t *testing.T) {
	parser, err := dualtrack.NewParser(domain.DefaultSettings().Parser)
	require.NoError(t, err)
	inbox := memory.NewInbox(domain.RawEntry{ID: "e1", Date: "2025-03-01", RawText: "x"})
	s := NewInspectService(inbox, parser, dualtrack.NewTaskExtractor(nil))

	parsed := s.Parse(dualTrackEntry)
	assert.Equal(t, "Garden", parsed.Project.PrimaryTag)
	assert.Equal(t, "Quiet evening.", parsed.Life.Content)

	tasks := s.ExtractTasks("- [ ] Call Bob\n- [x] done")
	require.Len(t, tasks, 1)
	assert.Equal(t, "Call Bob", tasks[0].Title)

	pending, err := s.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "e1", pending[0].ID)
}
