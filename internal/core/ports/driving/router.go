package driving

import (
	"context"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
)

// Router writes parsed sections to their per-topic log files.
type Router interface {
	// Route appends the entry's sections to every destination it belongs to.
	// Each destination is isolated: a failure is recorded in the result and
	// joined into the returned error while other destinations still run.
	Route(ctx context.Context, entry domain.RawEntry, parsed domain.ParsedSections) (*RouteResult, error)
}

// RouteResult reports what happened to each destination.
type RouteResult struct {
	// Written are destinations that received a new block.
	Written []string

	// Duplicates are destinations that already held the entry.
	Duplicates []string

	// Failed maps destinations to their write error.
	Failed map[string]error
}
