package driven

import "context"

// LogStore appends blocks to per-topic log files.
// Destinations are slash-separated paths relative to the store root,
// for example "projects/Health.md".
type LogStore interface {
	// Append writes block to the destination unless the entry id already
	// appears in the destination's tail. Returns false for such duplicates.
	// Missing parent directories are created.
	Append(ctx context.Context, destination, entryID, block string) (bool, error)
}

// RouteIndex records which entries were written to which destination.
// It gives an exact duplicate check that does not depend on the tail window.
type RouteIndex interface {
	// Has reports whether the entry was routed to the destination.
	Has(ctx context.Context, destination, entryID string) (bool, error)

	// Mark records a successful route.
	Mark(ctx context.Context, destination, entryID, date string) error

	// Close releases resources.
	Close() error
}
