package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lifeos-cli/internal/logger"
)

// Ensure Compactor implements the interface.
var _ driving.Compactor = (*Compactor)(nil)

// Compactor merges pending inbox entries into the archive.
// At most one compaction may run against an archive at a time; callers
// serialise runs.
type Compactor struct {
	inbox    driven.Inbox
	archive  driven.ArchiveStore
	exporter driven.ArchiveExporter
	status   driven.StatusStore
	deriver  driven.StateDeriver
}

// NewCompactor creates a compactor.
func NewCompactor(
	inbox driven.Inbox,
	archive driven.ArchiveStore,
	exporter driven.ArchiveExporter,
	status driven.StatusStore,
	deriver driven.StateDeriver,
) *Compactor {
	return &Compactor{
		inbox:    inbox,
		archive:  archive,
		exporter: exporter,
		status:   status,
		deriver:  deriver,
	}
}

// Compact runs one compaction:
//
//  1. load the archive (missing is empty, damaged is fatal)
//  2. flatten pending entries into records
//  3. merge, dedup (keep last) and sort by date
//  4. derive the system state
//  5. persist archive and export
//  6. only then delete the inputs
//
// A failure before step 6 leaves the inbox untouched, so a re-run
// reprocesses the same entries and dedup absorbs them.
func (c *Compactor) Compact(ctx context.Context) (*driving.CompactResult, error) {
	logger.Section("Compaction")

	existing, exists, err := c.archive.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load archive: %w", err)
	}

	listing, err := c.inbox.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inbox: %w", err)
	}
	for _, skipped := range listing.Skipped {
		logger.Warn("Skipping unreadable inbox file %s: %v", skipped.Path, skipped.Err)
	}

	result := &driving.CompactResult{
		Pending: len(listing.Entries),
		Skipped: listing.Skipped,
	}

	if len(listing.Entries) == 0 {
		if !exists {
			logger.Info("Nothing to compact")
			result.NoOp = true
			return result, nil
		}
		logger.Info("No pending entries, regenerating state from %d records", len(existing))
		state := c.deriver.Derive(existing)
		c.saveState(ctx, state)
		result.Records = len(existing)
		result.State = &state
		return result, nil
	}

	incoming := make([]domain.ArchiveRecord, 0, len(listing.Entries))
	for _, entry := range listing.Entries {
		entry.Date = domain.ResolveDate(entry.Date, entry.BaseName())
		incoming = append(incoming, domain.NewArchiveRecord(entry))
	}

	records := MergeRecords(existing, incoming)
	state := c.deriver.Derive(records)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.archive.Save(ctx, records); err != nil {
		return nil, fmt.Errorf("save archive: %w", err)
	}
	if err := c.exporter.Export(ctx, records); err != nil {
		return nil, fmt.Errorf("export archive: %w", err)
	}
	logger.Info("Archived %d records (%d pending, %d existing)", len(records), len(incoming), len(existing))

	c.saveState(ctx, state)
	result.Records = len(records)
	result.State = &state

	for _, entry := range listing.Entries {
		if err := c.inbox.Remove(ctx, entry); err != nil {
			logger.Warn("Failed to remove inbox entry %s: %v", entry.ID, err)
			continue
		}
		result.Removed++
	}

	return result, nil
}

// saveState writes the state file. The state is recomputed on every run,
// so a write failure only leaves it stale until the next one.
func (c *Compactor) saveState(ctx context.Context, state domain.SystemState) {
	if err := c.status.SaveState(ctx, state); err != nil {
		logger.Warn("Failed to save system state: %v", err)
	}
}

// MergeRecords concatenates existing and incoming records, deduplicates them
// and sorts them by date.
//
// Records are keyed by ID when every record has one, otherwise by date.
// The last record with a key wins, so incoming records replace archived
// ones. The sort is stable: records sharing a date keep their merged order.
func MergeRecords(existing, incoming []domain.ArchiveRecord) []domain.ArchiveRecord {
	all := make([]domain.ArchiveRecord, 0, len(existing)+len(incoming))
	all = append(all, existing...)
	all = append(all, incoming...)

	byID := true
	for i := range all {
		if all[i].ID == "" {
			byID = false
			break
		}
	}
	key := func(r *domain.ArchiveRecord) string {
		if byID {
			return r.ID
		}
		return r.Date
	}

	last := make(map[string]int, len(all))
	for i := range all {
		last[key(&all[i])] = i
	}

	merged := make([]domain.ArchiveRecord, 0, len(last))
	for i := range all {
		if last[key(&all[i])] == i {
			merged = append(merged, all[i])
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date < merged[j].Date
	})
	return merged
}
