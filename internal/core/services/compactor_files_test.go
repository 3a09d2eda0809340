package services

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lifeos-cli/internal/adapters/driven/archive/columnar"
	"github.com/custodia-labs/lifeos-cli/internal/adapters/driven/storage/fs"
	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
)

// crashingInbox fails every Remove, as if the process died after persisting.
type crashingInbox struct {
	*fs.Inbox
}

func (crashingInbox) Remove(context.Context, domain.RawEntry) error {
	return errors.New("killed")
}

func newFileCompactor(paths domain.PathSettings, inbox driven.Inbox) (*Compactor, *columnar.Store) {
	archive := columnar.NewStore(paths, domain.CompressionZstd)
	return NewCompactor(
		inbox,
		archive,
		fs.NewJSONExporter(paths),
		fs.NewStatusStore(paths),
		NewAnalytics(),
	), archive
}

func putEntry(t *testing.T, inbox *fs.Inbox, id, date, text string) {
	t.Helper()
	mood := 5.0
	require.NoError(t, inbox.Put(context.Background(), &domain.RawEntry{
		ID:        id,
		Date:      date,
		RawText:   text,
		Analysis:  &domain.Analysis{Mood: &mood, Summary: "s-" + id, Raw: map[string]any{}},
		Embedding: []float32{0.5, 0.25},
	}))
}

func TestCompact_Files_RerunAfterCrashIsByteIdentical(t *testing.T) {
	paths := domain.PathSettings{DataDir: t.TempDir()}
	inbox := fs.NewInbox(paths.InboxDir())
	ctx := context.Background()

	// An archive already holding one record.
	putEntry(t, inbox, "old00001", "2025-02-28", "older entry")
	compactor, archive := newFileCompactor(paths, inbox)
	_, err := compactor.Compact(ctx)
	require.NoError(t, err)

	putEntry(t, inbox, "new00001", "2025-03-02", "second")
	putEntry(t, inbox, "new00002", "2025-03-01", "first")

	crashed, _ := newFileCompactor(paths, crashingInbox{inbox})
	result, err := crashed.Compact(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Removed)
	afterCrash, err := os.ReadFile(archive.Path())
	require.NoError(t, err)

	result, err = compactor.Compact(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Removed)
	afterRerun, err := os.ReadFile(archive.Path())
	require.NoError(t, err)

	assert.Equal(t, afterCrash, afterRerun)

	records, _, err := archive.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"old00001", "new00002", "new00001"},
		[]string{records[0].ID, records[1].ID, records[2].ID})

	listing, err := inbox.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listing.Entries)

	assert.FileExists(t, fs.NewJSONExporter(paths).Path())
	state, err := os.ReadFile(filepath.Join(paths.ArchiveDir(), fs.StateFile))
	require.NoError(t, err)
	assert.Contains(t, string(state), `"entry_count": 3`)
}

func TestCompact_Files_CorruptArchiveKeepsInbox(t *testing.T) {
	paths := domain.PathSettings{DataDir: t.TempDir()}
	inbox := fs.NewInbox(paths.InboxDir())
	ctx := context.Background()

	compactor, archive := newFileCompactor(paths, inbox)
	require.NoError(t, os.MkdirAll(paths.ArchiveDir(), 0755))
	require.NoError(t, os.WriteFile(archive.Path(), []byte("garbage"), 0644))
	putEntry(t, inbox, "e1", "2025-03-01", "text")

	_, err := compactor.Compact(ctx)
	assert.ErrorIs(t, err, domain.ErrArchiveCorrupt)

	listing, err := inbox.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listing.Entries, 1)
}

func TestCompact_Files_FrontmatterTimestampStableAcrossRuns(t *testing.T) {
	paths := domain.PathSettings{DataDir: t.TempDir()}
	inbox := fs.NewInbox(paths.InboxDir())
	ctx := context.Background()

	require.NoError(t, os.MkdirAll(paths.InboxDir(), 0755))
	body := "---\nid: aaa11111\ncreated: 2025-03-01T08:00:00Z\n---\nmorning pages\n"
	require.NoError(t, os.WriteFile(filepath.Join(paths.InboxDir(), "2025-03-01_aaa11111.md"), []byte(body), 0644))

	compactor, _ := newFileCompactor(paths, inbox)
	exported := func() map[string]any {
		t.Helper()
		data, err := os.ReadFile(fs.NewJSONExporter(paths).Path())
		require.NoError(t, err)
		var rows []map[string]any
		require.NoError(t, json.Unmarshal(data, &rows))
		for _, row := range rows {
			if row["uuid"] == "aaa11111" {
				return row
			}
		}
		t.Fatal("row aaa11111 not exported")
		return nil
	}

	_, err := compactor.Compact(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01T08:00:00Z", exported()["created"])

	putEntry(t, inbox, "bbb22222", "2025-03-02", "second")
	_, err = compactor.Compact(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01T08:00:00Z", exported()["created"])
}
