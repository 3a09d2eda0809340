package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lifeos-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/normalisers/dualtrack"
)

func newTestCapture(inbox *memory.Inbox, extractor *countingExtractor, analyzer *stubAnalyzer, embedder *stubEmbedder) *CaptureService {
	s := &CaptureService{
		inbox: inbox,
		now:   func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) },
		newID: func() string { return "abcd1234" },
	}
	if extractor != nil {
		s.extractor = extractor
	}
	if analyzer != nil {
		s.analyzer = analyzer
	}
	if embedder != nil {
		s.embedder = embedder
	}
	return s
}

func TestNewCaptureService(t *testing.T) {
	s := NewCaptureService(memory.NewInbox(), dualtrack.NewTaskExtractor(nil), nil, nil)
	require.NotNil(t, s)
	assert.Len(t, newEntryID(), entryIDLength)
}

func TestCapture_AnalyzerItemsSkipFallback(t *testing.T) {
	inbox := memory.NewInbox()
	extractor := &countingExtractor{tasks: []domain.Task{{Title: "regex task"}}}
	analyzer := &stubAnalyzer{analysis: &domain.Analysis{
		Mood:        mood(7),
		Tags:        []string{"Health"},
		ActionItems: []domain.ActionItem{{Task: "ai task", Priority: "Low"}},
		Raw:         map[string]any{},
	}}
	s := newTestCapture(inbox, extractor, analyzer, &stubEmbedder{vector: []float32{0.1, 0.2}})

	entry, err := s.Capture(context.Background(), "2025-03-01 journal text")
	require.NoError(t, err)

	assert.Equal(t, 0, extractor.calls)
	assert.Equal(t, "abcd1234", entry.ID)
	assert.Equal(t, "2025-03-01", entry.Date)
	assert.Equal(t, []domain.ActionItem{{Task: "ai task", Priority: "Low"}}, entry.ActionItems())
	assert.Equal(t, []string{"Health"}, entry.Tags)
	assert.Equal(t, []float32{0.1, 0.2}, entry.Embedding)
	assert.Equal(t, 7.0, entry.Extra["mood"])
	assert.Equal(t, 1, inbox.Len())
}

func TestCapture_EmptyAnalyzerItemsUseFallback(t *testing.T) {
	extractor := &countingExtractor{tasks: []domain.Task{{Title: "Call Bob", Priority: domain.PriorityHigh, Context: domain.FallbackContext}}}
	analyzer := &stubAnalyzer{analysis: &domain.Analysis{Summary: "ok", Raw: map[string]any{}}}
	s := newTestCapture(memory.NewInbox(), extractor, analyzer, nil)

	entry, err := s.Capture(context.Background(), "- [ ] Call Bob")
	require.NoError(t, err)

	assert.Equal(t, 1, analyzer.calls)
	assert.Equal(t, 1, extractor.calls)
	assert.Equal(t, []domain.ActionItem{{Task: "Call Bob", Priority: "High", Context: "Fallback Extraction"}}, entry.ActionItems())
	assert.Equal(t, "ok", entry.Analysis.Summary)
}

func TestCapture_AnalyzerFailureDegrades(t *testing.T) {
	extractor := &countingExtractor{}
	analyzer := &stubAnalyzer{err: errors.New("timeout")}
	s := newTestCapture(memory.NewInbox(), extractor, analyzer, &stubEmbedder{err: errors.New("quota")})

	entry, err := s.Capture(context.Background(), "no date here")
	require.NoError(t, err)

	assert.Equal(t, "AI Parse Error", entry.Analysis.Summary)
	assert.Equal(t, 1, extractor.calls)
	assert.Equal(t, []float32{}, entry.Embedding)
	assert.Equal(t, "2025-06-01", entry.Date)
	assert.Nil(t, entry.Extra)
}

func TestCapture_NoCollaborators(t *testing.T) {
	s := newTestCapture(memory.NewInbox(), nil, nil, nil)

	entry, err := s.Capture(context.Background(), "text")
	require.NoError(t, err)

	assert.Empty(t, entry.Analysis.Summary)
	assert.Empty(t, entry.ActionItems())
	assert.Empty(t, entry.Embedding)
}

func TestCapture_EmptyText(t *testing.T) {
	s := newTestCapture(memory.NewInbox(), nil, nil, nil)

	entry, err := s.Capture(context.Background(), "  \n ")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, entry)
}

func TestCapture_WithRealExtractor(t *testing.T) {
	inbox := memory.NewInbox()
	s := NewCaptureService(inbox, dualtrack.NewTaskExtractor(nil), nil, nil)

	entry, err := s.Capture(context.Background(), "## Tomorrow's MIT\n- Buy milk\n\n- [ ] Call Bob")
	require.NoError(t, err)

	tasks := make([]string, 0)
	for _, item := range entry.ActionItems() {
		tasks = append(tasks, item.Task)
	}
	assert.Equal(t, []string{"Buy milk", "Call Bob"}, tasks)

	listing, err := inbox.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listing.Entries, 1)
	assert.Equal(t, entry.ID, listing.Entries[0].ID)
}
