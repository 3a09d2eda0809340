package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lifeos-cli/internal/logger"
)

// Ensure TaskSyncService implements the interface.
var _ driving.TaskSyncService = (*TaskSyncService)(nil)

// TaskSyncService fans pending action items out to task sinks.
type TaskSyncService struct {
	inbox       driven.Inbox
	sinks       []driven.TaskSink
	limiter     driven.RateLimiter
	titlePrefix string
	due         string
}

// NewTaskSyncService creates a task sync service. The limiter is optional.
func NewTaskSyncService(
	inbox driven.Inbox,
	sinks []driven.TaskSink,
	limiter driven.RateLimiter,
	cfg domain.TaskSettings,
) *TaskSyncService {
	return &TaskSyncService{
		inbox:       inbox,
		sinks:       sinks,
		limiter:     limiter,
		titlePrefix: cfg.TitlePrefix,
		due:         cfg.Due,
	}
}

// PendingTasks returns the unique action items of all pending entries,
// in inbox order. Titles are compared exactly.
func (s *TaskSyncService) PendingTasks(ctx context.Context) ([]domain.Task, error) {
	listing, err := s.inbox.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inbox: %w", err)
	}

	seen := make(map[string]bool)
	var tasks []domain.Task
	for _, entry := range listing.Entries {
		for _, item := range entry.ActionItems() {
			task := domain.TaskFromActionItem(item)
			if task.Title == "" || seen[task.Title] {
				continue
			}
			seen[task.Title] = true
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// Sync sends each pending task to every sink, one call per task, waiting on
// the limiter before each call. A failed send is logged and counted.
func (s *TaskSyncService) Sync(ctx context.Context) (*driving.TaskSyncResult, error) {
	if len(s.sinks) == 0 {
		return nil, domain.ErrNoTaskSink
	}

	tasks, err := s.PendingTasks(ctx)
	if err != nil {
		return nil, err
	}

	result := &driving.TaskSyncResult{Tasks: len(tasks)}
	for _, task := range tasks {
		payload := domain.NewTaskPayload(task, s.titlePrefix, s.due)
		for _, sink := range s.sinks {
			if s.limiter != nil {
				if err := s.limiter.Wait(ctx); err != nil {
					return result, fmt.Errorf("rate limiter: %w", err)
				}
			}
			if err := sink.Send(ctx, payload); err != nil {
				var limited *domain.RateLimitError
				if errors.As(err, &limited) && s.limiter != nil {
					s.limiter.Backoff(limited.RetryAfter)
				}
				logger.Warn("Failed to send %q to %s: %v", payload.Title, sink.Name(), err)
				result.Failed++
				continue
			}
			logger.Debug("Sent %q to %s", payload.Title, sink.Name())
			result.Sent++
		}
	}

	logger.Info("Task sync: %d tasks, %d sent, %d failed", result.Tasks, result.Sent, result.Failed)
	return result, nil
}
