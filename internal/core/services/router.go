package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lifeos-cli/internal/logger"
	"github.com/custodia-labs/lifeos-cli/internal/normalisers/dualtrack"
)

// Ensure Router implements the interface.
var _ driving.Router = (*Router)(nil)

// Router appends parsed sections to per-project and per-period logs.
type Router struct {
	logs     driven.LogStore
	index    driven.RouteIndex
	denylist *dualtrack.TagMatcher
	bucket   domain.LifeBucket
}

// NewRouter creates a router. The index is optional; without it duplicates
// are detected by the log store's tail scan only.
func NewRouter(logs driven.LogStore, index driven.RouteIndex, cfg domain.RouterSettings) (*Router, error) {
	denylist, err := dualtrack.NewTagMatcher(cfg.TagDenylist)
	if err != nil {
		return nil, fmt.Errorf("tag denylist: %w", err)
	}
	bucket := cfg.LifeBucket
	if !bucket.IsValid() {
		bucket = domain.LifeBucketMonth
	}
	return &Router{
		logs:     logs,
		index:    index,
		denylist: denylist,
		bucket:   bucket,
	}, nil
}

// destination is one log block to write.
type destination struct {
	path    string
	content string
}

// Destinations lists where an entry's sections go, projects first.
// Every qualifying tag gets its own project log; when no tag qualifies the
// primary tag is used. The life log is always written.
func (r *Router) Destinations(date string, parsed domain.ParsedSections) []string {
	dests := r.destinations(date, parsed)
	paths := make([]string, len(dests))
	for i, d := range dests {
		paths[i] = d.path
	}
	return paths
}

func (r *Router) destinations(date string, parsed domain.ParsedSections) []destination {
	var dests []destination
	if parsed.HasProject() {
		projects := r.denylist.Filter(parsed.Project.Tags)
		if len(projects) == 0 {
			primary := parsed.Project.PrimaryTag
			if primary == "" {
				primary = domain.UncategorizedTag
			}
			projects = []string{primary}
		}
		for _, tag := range projects {
			dests = append(dests, destination{
				path:    domain.ProjectLogPath(tag),
				content: parsed.Project.Content,
			})
		}
	}
	dests = append(dests, destination{
		path:    domain.LifeLogPath(r.bucket.Period(date)),
		content: parsed.Life.Content,
	})
	return dests
}

// Route appends the entry to each destination at most once.
func (r *Router) Route(
	ctx context.Context,
	entry domain.RawEntry,
	parsed domain.ParsedSections,
) (*driving.RouteResult, error) {
	if entry.ID == "" {
		return nil, fmt.Errorf("%w: entry has no id", domain.ErrInvalidInput)
	}
	date := domain.ResolveDate(entry.Date, entry.MarkdownPath)

	result := &driving.RouteResult{}
	var errs []error

	for _, dest := range r.destinations(date, parsed) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		written, err := r.appendOnce(ctx, dest, entry.ID, date)
		switch {
		case err != nil:
			if result.Failed == nil {
				result.Failed = make(map[string]error)
			}
			result.Failed[dest.path] = err
			errs = append(errs, fmt.Errorf("route %s: %w", dest.path, err))
			logger.Warn("Failed to route %s to %s: %v", entry.ID, dest.path, err)
		case written:
			result.Written = append(result.Written, dest.path)
			logger.Debug("Routed %s to %s", entry.ID, dest.path)
		default:
			result.Duplicates = append(result.Duplicates, dest.path)
			logger.Debug("Skipped %s for %s: already routed", dest.path, entry.ID)
		}
	}

	return result, errors.Join(errs...)
}

// appendOnce writes the block unless the index or the log tail already has the entry.
func (r *Router) appendOnce(ctx context.Context, dest destination, entryID, date string) (bool, error) {
	if r.index != nil {
		seen, err := r.index.Has(ctx, dest.path, entryID)
		if err != nil {
			logger.Warn("Route index lookup failed for %s: %v", dest.path, err)
		} else if seen {
			return false, nil
		}
	}

	written, err := r.logs.Append(ctx, dest.path, entryID, domain.FormatLogBlock(date, entryID, dest.content))
	if err != nil {
		return false, err
	}

	if r.index != nil {
		// Also marks tail-detected duplicates so the index catches up with old logs.
		if err := r.index.Mark(ctx, dest.path, entryID, date); err != nil {
			logger.Warn("Route index update failed for %s: %v", dest.path, err)
		}
	}
	return written, nil
}
