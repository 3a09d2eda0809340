package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
)

type stubAnalyzer struct {
	analysis *domain.Analysis
	err      error
	calls    int
}

func (a *stubAnalyzer) Analyze(_ context.Context, _ string) (*domain.Analysis, error) {
	a.calls++
	return a.analysis, a.err
}

func (a *stubAnalyzer) ModelName() string { return "stub" }

type stubEmbedder struct {
	vector []float32
	err    error
}

func (e *stubEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return e.vector, e.err
}

func (e *stubEmbedder) ModelName() string { return "stub-embed" }

type countingExtractor struct {
	tasks []domain.Task
	calls int
}

func (x *countingExtractor) Extract(_ string) []domain.Task {
	x.calls++
	return x.tasks
}

type countingLimiter struct {
	mu       sync.Mutex
	waits    int
	backoffs []time.Duration
	err      error
}

func (l *countingLimiter) Wait(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.waits++
	return l.err
}

func (l *countingLimiter) Backoff(retryAfter time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.backoffs = append(l.backoffs, retryAfter)
}
