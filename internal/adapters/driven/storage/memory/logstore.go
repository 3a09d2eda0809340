package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
)

// Ensure LogStore and RouteIndex implement the interfaces.
var (
	_ driven.LogStore   = (*LogStore)(nil)
	_ driven.RouteIndex = (*RouteIndex)(nil)
)

// LogStore is an in-memory implementation of driven.LogStore.
// It scans the whole log rather than a tail.
type LogStore struct {
	mu   sync.RWMutex
	logs map[string]string

	// FailOn makes Append fail for the listed destinations.
	FailOn map[string]error
}

// NewLogStore creates an empty log store.
func NewLogStore() *LogStore {
	return &LogStore{logs: make(map[string]string)}
}

// Append adds block unless the entry is already in the destination.
func (s *LogStore) Append(_ context.Context, destination, entryID, block string) (bool, error) {
	if err := s.FailOn[destination]; err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.Contains(s.logs[destination], domain.LogRef(entryID)) {
		return false, nil
	}
	s.logs[destination] += block
	return true, nil
}

// Content returns a destination's full text.
func (s *LogStore) Content(destination string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logs[destination]
}

// Destinations returns how many destinations hold text.
func (s *LogStore) Destinations() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.logs)
}

// RouteIndex is an in-memory implementation of driven.RouteIndex.
type RouteIndex struct {
	mu     sync.RWMutex
	routes map[string]string
}

// NewRouteIndex creates an empty route index.
func NewRouteIndex() *RouteIndex {
	return &RouteIndex{routes: make(map[string]string)}
}

// Has reports whether the entry was routed to the destination.
func (i *RouteIndex) Has(_ context.Context, destination, entryID string) (bool, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	_, ok := i.routes[destination+"\x00"+entryID]
	return ok, nil
}

// Mark records a route.
func (i *RouteIndex) Mark(_ context.Context, destination, entryID, date string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.routes[destination+"\x00"+entryID] = date
	return nil
}

// Close is a no-op.
func (i *RouteIndex) Close() error {
	return nil
}
