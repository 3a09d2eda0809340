package driving

import (
	"context"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
)

// CaptureService turns raw journal text into a pending inbox entry.
type CaptureService interface {
	// Capture analyses, embeds and stores the text.
	// Analyzer and embedding failures degrade; only storage errors are returned.
	Capture(ctx context.Context, rawText string) (*domain.RawEntry, error)
}
