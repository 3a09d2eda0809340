package driven

import "github.com/custodia-labs/lifeos-cli/internal/core/domain"

// EntryParser splits a dual-track entry into its sections.
// Implementations are pure functions over text.
type EntryParser interface {
	Parse(rawText string) domain.ParsedSections
}

// TaskExtractor mines actionable items from text without an analyzer.
type TaskExtractor interface {
	Extract(content string) []domain.Task
}
