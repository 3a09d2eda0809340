package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
)

// Ensure TaskSink implements the interface.
var _ driven.TaskSink = (*TaskSink)(nil)

// TaskSink records every task it receives.
type TaskSink struct {
	mu    sync.Mutex
	sent  []domain.TaskPayload
	calls int

	// FailTitles makes Send fail for payloads with these titles.
	FailTitles map[string]error
}

// NewTaskSink creates a recording sink.
func NewTaskSink() *TaskSink {
	return &TaskSink{}
}

// Name identifies the sink.
func (s *TaskSink) Name() string {
	return "memory"
}

// Send records the payload.
func (s *TaskSink) Send(_ context.Context, task domain.TaskPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if err := s.FailTitles[task.Title]; err != nil {
		return err
	}
	s.sent = append(s.sent, task)
	return nil
}

// Sent returns the delivered payloads in order.
func (s *TaskSink) Sent() []domain.TaskPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.TaskPayload(nil), s.sent...)
}

// Calls returns how many times Send was called.
func (s *TaskSink) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
