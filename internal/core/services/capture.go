package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lifeos-cli/internal/logger"
)

// Ensure CaptureService implements the interface.
var _ driving.CaptureService = (*CaptureService)(nil)

// entryIDLength is how many characters of a UUID form an entry id.
const entryIDLength = 8

// CaptureService ingests raw journal text into the inbox.
//
// Action items come from the analyzer first. Only when it reports none,
// including when it fails or is not configured, does the regex extractor run.
type CaptureService struct {
	inbox     driven.Inbox
	extractor driven.TaskExtractor
	analyzer  driven.Analyzer
	embedder  driven.EmbeddingService

	now   func() time.Time
	newID func() string
}

// NewCaptureService creates a capture service.
// The analyzer and embedder are optional.
func NewCaptureService(
	inbox driven.Inbox,
	extractor driven.TaskExtractor,
	analyzer driven.Analyzer,
	embedder driven.EmbeddingService,
) *CaptureService {
	return &CaptureService{
		inbox:     inbox,
		extractor: extractor,
		analyzer:  analyzer,
		embedder:  embedder,
		now:       time.Now,
		newID:     newEntryID,
	}
}

// Capture analyses, embeds and stores the text as a pending entry.
func (s *CaptureService) Capture(ctx context.Context, rawText string) (*domain.RawEntry, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, fmt.Errorf("%w: empty journal text", domain.ErrInvalidInput)
	}

	analysis := s.analyze(ctx, rawText)
	if len(analysis.ActionItems) == 0 && s.extractor != nil {
		for _, task := range s.extractor.Extract(rawText) {
			analysis.ActionItems = append(analysis.ActionItems, task.ActionItem())
		}
		if n := len(analysis.ActionItems); n > 0 {
			logger.Info("Fallback extraction found %d action items", n)
		}
	}

	date, ok := domain.DateFromText(rawText)
	if !ok {
		date = s.now().Format(domain.DateLayout)
	}

	entry := &domain.RawEntry{
		ID:        s.newID(),
		Date:      date,
		RawText:   rawText,
		Tags:      analysis.Tags,
		Analysis:  analysis,
		Embedding: s.embed(ctx, rawText),
	}
	if analysis.Mood != nil {
		entry.Extra = map[string]any{"mood": *analysis.Mood}
	}

	if err := s.inbox.Put(ctx, entry); err != nil {
		return nil, fmt.Errorf("store entry: %w", err)
	}
	logger.Info("Captured entry %s for %s", entry.ID, entry.Date)
	return entry, nil
}

// analyze never fails: an analyzer error yields the failed-analysis marker.
func (s *CaptureService) analyze(ctx context.Context, rawText string) *domain.Analysis {
	if s.analyzer == nil {
		logger.Debug("No analyzer configured")
		return &domain.Analysis{Raw: map[string]any{}}
	}
	analysis, err := s.analyzer.Analyze(ctx, rawText)
	if err != nil || analysis == nil {
		logger.Warn("Analyzer failed, using fallback extraction: %v", err)
		return domain.FailedAnalysis()
	}
	return analysis
}

// embed never fails: any embedding problem yields an empty vector.
func (s *CaptureService) embed(ctx context.Context, rawText string) []float32 {
	if s.embedder == nil {
		return []float32{}
	}
	vector, err := s.embedder.Embed(ctx, rawText)
	if err != nil {
		logger.Warn("Embedding failed, storing empty vector: %v", err)
		return []float32{}
	}
	return vector
}

func newEntryID() string {
	return uuid.NewString()[:entryIDLength]
}
