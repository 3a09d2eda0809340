package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
)

// TaskSink accepts tasks, one call per task.
//
// Implementations may include:
//   - Webhook (JSON POST)
//   - Google Tasks
type TaskSink interface {
	// Name identifies the sink in logs.
	Name() string

	// Send delivers one task.
	Send(ctx context.Context, task domain.TaskPayload) error
}

// RateLimiter paces calls to an external service.
type RateLimiter interface {
	// Wait blocks until a call is allowed or ctx is done.
	Wait(ctx context.Context) error

	// Backoff pauses all calls for the given delay after a rate limit response.
	// A zero delay uses the implementation's default.
	Backoff(retryAfter time.Duration)
}
