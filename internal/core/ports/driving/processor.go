package driving

import (
	"context"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
)

// InboxProcessor routes every pending entry into the per-topic logs.
type InboxProcessor interface {
	// ProcessInbox parses and routes all pending entries and refreshes the
	// next-actions report.
	ProcessInbox(ctx context.Context) (*ProcessResult, error)
}

// ProcessResult summarises an inbox processing run.
type ProcessResult struct {
	Entries    int
	Written    int
	Duplicates int
	Failed     int

	// NextActions is the report written for this run, keyed by project.
	NextActions map[string]domain.NextActionStatus
}

// InspectService exposes the text heuristics and the inbox read-only.
type InspectService interface {
	// Parse splits raw text into project and life sections.
	Parse(rawText string) domain.ParsedSections

	// ExtractTasks runs the regex task extractor.
	ExtractTasks(content string) []domain.Task

	// ListPending returns the entries waiting in the inbox.
	ListPending(ctx context.Context) ([]domain.RawEntry, error)
}
