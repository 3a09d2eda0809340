package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lifeos-cli/internal/logger"
)

// Ensure Processor implements the interface.
var _ driving.InboxProcessor = (*Processor)(nil)

// Processor routes pending inbox entries into the per-topic logs and keeps
// the next-actions report current.
type Processor struct {
	inbox  driven.Inbox
	parser driven.EntryParser
	router driving.Router
	status driven.StatusStore
}

// NewProcessor creates an inbox processor.
func NewProcessor(
	inbox driven.Inbox,
	parser driven.EntryParser,
	router driving.Router,
	status driven.StatusStore,
) *Processor {
	return &Processor{
		inbox:  inbox,
		parser: parser,
		router: router,
		status: status,
	}
}

// ProcessInbox routes every pending entry. Failures are isolated per entry
// and per destination; only listing the inbox or writing the report fails
// the run.
func (p *Processor) ProcessInbox(ctx context.Context) (*driving.ProcessResult, error) {
	logger.Section("Process inbox")

	listing, err := p.inbox.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inbox: %w", err)
	}
	for _, skipped := range listing.Skipped {
		logger.Warn("Skipping unreadable inbox file %s: %v", skipped.Path, skipped.Err)
	}

	result := &driving.ProcessResult{
		NextActions: make(map[string]domain.NextActionStatus),
	}

	for _, entry := range listing.Entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if strings.TrimSpace(entry.RawText) == "" {
			logger.Debug("Skipping empty entry %s", entry.ID)
			continue
		}
		result.Entries++

		parsed := p.parser.Parse(entry.RawText)
		routed, err := p.router.Route(ctx, entry, parsed)
		if routed != nil {
			result.Written += len(routed.Written)
			result.Duplicates += len(routed.Duplicates)
			result.Failed += len(routed.Failed)
		}
		if err != nil && routed == nil {
			logger.Warn("Failed to route entry %s: %v", entry.ID, err)
			result.Failed++
			continue
		}

		if len(parsed.Project.NextActions) > 0 {
			result.NextActions[parsed.Project.PrimaryTag] = domain.NextActionStatus{
				Date:    domain.ResolveDate(entry.Date, entry.BaseName()),
				Actions: parsed.Project.NextActions,
			}
		}
	}

	if len(result.NextActions) > 0 {
		if err := p.status.SaveNextActions(ctx, result.NextActions); err != nil {
			return result, fmt.Errorf("save next actions: %w", err)
		}
	}

	logger.Info("Processed %d entries: %d written, %d duplicates, %d failed",
		result.Entries, result.Written, result.Duplicates, result.Failed)
	return result, nil
}
