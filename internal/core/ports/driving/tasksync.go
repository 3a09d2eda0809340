package driving

import (
	"context"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
)

// TaskSyncService sends pending action items to the configured task sinks.
type TaskSyncService interface {
	// Sync sends every unique pending task to each sink.
	// Per-task failures are counted, never returned.
	Sync(ctx context.Context) (*TaskSyncResult, error)

	// PendingTasks returns the unique action items waiting in the inbox.
	PendingTasks(ctx context.Context) ([]domain.Task, error)
}

// TaskSyncResult summarises a sync run.
type TaskSyncResult struct {
	Tasks  int
	Sent   int
	Failed int
}
