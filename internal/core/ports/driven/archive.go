package driven

import (
	"context"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
)

// ArchiveStore persists the compacted archive in its primary columnar form.
type ArchiveStore interface {
	// Load returns the archived records in stored order.
	// A missing archive returns (nil, false, nil). A damaged archive
	// returns an error wrapping domain.ErrArchiveCorrupt.
	Load(ctx context.Context) ([]domain.ArchiveRecord, bool, error)

	// Save replaces the archive atomically.
	Save(ctx context.Context, records []domain.ArchiveRecord) error
}

// ArchiveExporter writes the interchange copy of the archive.
type ArchiveExporter interface {
	// Export replaces the export atomically. Embeddings are omitted.
	Export(ctx context.Context, records []domain.ArchiveRecord) error
}

// StateDeriver computes the system state from the full archive.
// It must tolerate records with any subset of fields set.
type StateDeriver interface {
	Derive(records []domain.ArchiveRecord) domain.SystemState
}

// StatusStore persists derived reports.
type StatusStore interface {
	// SaveState replaces the system state file.
	SaveState(ctx context.Context, state domain.SystemState) error

	// SaveNextActions replaces the next-actions report, keyed by project.
	SaveNextActions(ctx context.Context, actions map[string]domain.NextActionStatus) error
}
