package driven

import (
	"context"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
)

// Inbox is the staging area for entries that have not been compacted yet.
type Inbox interface {
	// List loads every pending entry, ordered by file name.
	// Unreadable files are reported in Skipped and never abort the listing.
	List(ctx context.Context) (*InboxListing, error)

	// Put writes an entry as a Markdown body plus JSON sidecar and sets its paths.
	Put(ctx context.Context, entry *domain.RawEntry) error

	// Remove deletes the files backing an entry. Missing files are not an error.
	Remove(ctx context.Context, entry domain.RawEntry) error
}

// InboxListing is the result of Inbox.List.
type InboxListing struct {
	Entries []domain.RawEntry
	Skipped []SkippedFile
}

// SkippedFile is an inbox file that could not be read.
type SkippedFile struct {
	Path string
	Err  error
}
