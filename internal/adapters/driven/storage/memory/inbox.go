package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
)

// Ensure Inbox implements the interface.
var _ driven.Inbox = (*Inbox)(nil)

// Inbox is an in-memory implementation of driven.Inbox.
type Inbox struct {
	mu      sync.RWMutex
	entries map[string]domain.RawEntry
	skipped []driven.SkippedFile

	// RemoveErr, when set, is returned by Remove without removing anything.
	RemoveErr error
}

// NewInbox creates an inbox holding the given entries.
func NewInbox(entries ...domain.RawEntry) *Inbox {
	in := &Inbox{entries: make(map[string]domain.RawEntry)}
	for _, e := range entries {
		in.entries[key(e)] = e
	}
	return in
}

// AddSkipped records a file List will report as unreadable.
func (in *Inbox) AddSkipped(path string, err error) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.skipped = append(in.skipped, driven.SkippedFile{Path: path, Err: err})
}

// List returns the entries ordered by their inbox name.
func (in *Inbox) List(_ context.Context) (*driven.InboxListing, error) {
	in.mu.RLock()
	defer in.mu.RUnlock()

	keys := make([]string, 0, len(in.entries))
	for k := range in.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	listing := &driven.InboxListing{Skipped: append([]driven.SkippedFile(nil), in.skipped...)}
	for _, k := range keys {
		listing.Entries = append(listing.Entries, in.entries[k])
	}
	return listing, nil
}

// Put stores the entry under <date>_<id>.
func (in *Inbox) Put(_ context.Context, entry *domain.RawEntry) error {
	in.mu.Lock()
	defer in.mu.Unlock()

	base := entry.Date + "_" + entry.ID
	entry.MarkdownPath = base + ".md"
	entry.SidecarPath = base + ".json"
	in.entries[key(*entry)] = *entry
	return nil
}

// Remove deletes the entry.
func (in *Inbox) Remove(_ context.Context, entry domain.RawEntry) error {
	if in.RemoveErr != nil {
		return in.RemoveErr
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	delete(in.entries, key(entry))
	return nil
}

// Len returns the number of pending entries.
func (in *Inbox) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.entries)
}

func key(e domain.RawEntry) string {
	if name := e.BaseName(); name != "" {
		return name
	}
	return e.Date + "_" + e.ID
}
