package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driving"
)

// Ensure InspectService implements the interface.
var _ driving.InspectService = (*InspectService)(nil)

// InspectService exposes the parsing heuristics and the inbox without side effects.
type InspectService struct {
	inbox     driven.Inbox
	parser    driven.EntryParser
	extractor driven.TaskExtractor
}

// NewInspectService creates an inspect service.
func NewInspectService(inbox driven.Inbox, parser driven.EntryParser, extractor driven.TaskExtractor) *InspectService {
	return &InspectService{
		inbox:     inbox,
		parser:    parser,
		extractor: extractor,
	}
}

// Parse splits raw text into project and life sections.
func (s *InspectService) Parse(rawText string) domain.ParsedSections {
	return s.parser.Parse(rawText)
}

// ExtractTasks runs the regex task extractor.
func (s *InspectService) ExtractTasks(content string) []domain.Task {
	return s.extractor.Extract(content)
}

// ListPending returns the entries waiting in the inbox.
func (s *InspectService) ListPending(ctx context.Context) ([]domain.RawEntry, error) {
	listing, err := s.inbox.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inbox: %w", err)
	}
	return listing.Entries, nil
}
