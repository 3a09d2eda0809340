package driven

import (
	"context"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
)

// Analyzer produces the structured analysis of a journal entry.
// This is an optional service - when nil, capture records a failed analysis
// and relies on regex task extraction.
//
// Implementations may include:
//   - Anthropic (Claude)
type Analyzer interface {
	// Analyze returns mood, tags, action items, project and life data
	// and a summary for the entry text.
	Analyze(ctx context.Context, rawText string) (*domain.Analysis, error)

	// ModelName returns the name of the model being used.
	ModelName() string
}
