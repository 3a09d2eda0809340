package driving

import (
	"context"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
)

// Compactor merges pending inbox entries into the archive.
type Compactor interface {
	// Compact runs one compaction. An error means the archive could not be
	// read or written; inputs are then left in place for a retry.
	Compact(ctx context.Context) (*CompactResult, error)
}

// CompactResult summarises a compaction run.
type CompactResult struct {
	// Pending is how many inbox entries were merged.
	Pending int

	// Records is the size of the archive after the merge.
	Records int

	// Removed is how many inbox entries were deleted after persisting.
	Removed int

	// Skipped are inbox files that could not be read.
	Skipped []driven.SkippedFile

	// State is the regenerated system state. Nil on a no-op run.
	State *domain.SystemState

	// NoOp is true when there was nothing to merge and no archive.
	NoOp bool
}
