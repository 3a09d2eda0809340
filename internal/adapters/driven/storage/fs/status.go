package fs

import (
	"context"
	"path/filepath"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
)

// Ensure StatusStore implements the interface.
var _ driven.StatusStore = (*StatusStore)(nil)

// File names under the archive and status directories.
const (
	StateFile  = "system_state.json"
	ExportFile = "lifeos_db.json"
)

// StatusStore writes the derived state and the next-actions report as JSON.
type StatusStore struct {
	statePath   string
	actionsPath string
}

// NewStatusStore creates a status store for the given locations.
func NewStatusStore(paths domain.PathSettings) *StatusStore {
	return &StatusStore{
		statePath:   filepath.Join(paths.ArchiveDir(), StateFile),
		actionsPath: paths.StatusFile(),
	}
}

// SaveState replaces system_state.json.
func (s *StatusStore) SaveState(_ context.Context, state domain.SystemState) error {
	return writeJSON(s.statePath, state)
}

// SaveNextActions replaces the next-actions report.
func (s *StatusStore) SaveNextActions(_ context.Context, actions map[string]domain.NextActionStatus) error {
	return writeJSON(s.actionsPath, actions)
}
