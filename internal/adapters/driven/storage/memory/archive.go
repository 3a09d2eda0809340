package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
)

// Ensure the archive stores implement the interfaces.
var (
	_ driven.ArchiveStore    = (*ArchiveStore)(nil)
	_ driven.ArchiveExporter = (*ArchiveStore)(nil)
	_ driven.StatusStore     = (*StatusStore)(nil)
)

// ArchiveStore is an in-memory archive and export.
type ArchiveStore struct {
	mu       sync.RWMutex
	records  []domain.ArchiveRecord
	exists   bool
	exported []domain.ArchiveRecord

	// LoadErr and SaveErr, when set, are returned by Load and Save.
	LoadErr error
	SaveErr error
}

// NewArchiveStore creates a store with no archive.
func NewArchiveStore() *ArchiveStore {
	return &ArchiveStore{}
}

// NewArchiveStoreWith creates a store holding an existing archive.
func NewArchiveStoreWith(records ...domain.ArchiveRecord) *ArchiveStore {
	return &ArchiveStore{records: records, exists: true}
}

// Load returns the stored records.
func (s *ArchiveStore) Load(_ context.Context) ([]domain.ArchiveRecord, bool, error) {
	if s.LoadErr != nil {
		return nil, false, s.LoadErr
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ArchiveRecord(nil), s.records...), s.exists, nil
}

// Save replaces the stored records.
func (s *ArchiveStore) Save(_ context.Context, records []domain.ArchiveRecord) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]domain.ArchiveRecord(nil), records...)
	s.exists = true
	return nil
}

// Export keeps a copy of the exported records.
func (s *ArchiveStore) Export(_ context.Context, records []domain.ArchiveRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exported = append([]domain.ArchiveRecord(nil), records...)
	return nil
}

// Records returns the archived records.
func (s *ArchiveStore) Records() []domain.ArchiveRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ArchiveRecord(nil), s.records...)
}

// Exported returns the last exported records.
func (s *ArchiveStore) Exported() []domain.ArchiveRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ArchiveRecord(nil), s.exported...)
}

// StatusStore is an in-memory implementation of driven.StatusStore.
type StatusStore struct {
	mu          sync.RWMutex
	state       *domain.SystemState
	nextActions map[string]domain.NextActionStatus

	// StateErr, when set, is returned by SaveState.
	StateErr error
}

// NewStatusStore creates an empty status store.
func NewStatusStore() *StatusStore {
	return &StatusStore{}
}

// SaveState stores the state.
func (s *StatusStore) SaveState(_ context.Context, state domain.SystemState) error {
	if s.StateErr != nil {
		return s.StateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = &state
	return nil
}

// SaveNextActions stores the report.
func (s *StatusStore) SaveNextActions(_ context.Context, actions map[string]domain.NextActionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextActions = actions
	return nil
}

// State returns the last saved state, or nil.
func (s *StatusStore) State() *domain.SystemState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// NextActions returns the last saved report.
func (s *StatusStore) NextActions() map[string]domain.NextActionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextActions
}
