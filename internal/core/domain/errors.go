package domain

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicate indicates an entry was already written to a destination.
	// Routing treats it as a skip, never as a failure.
	ErrDuplicate = errors.New("duplicate entry")

	// ErrArchiveCorrupt indicates the archive exists but cannot be decoded.
	// Compaction aborts and leaves the inbox untouched.
	ErrArchiveCorrupt = errors.New("archive corrupt")

	// ErrAnalyzerUnavailable indicates no analyzer is configured.
	// Capture falls back to regex task extraction.
	ErrAnalyzerUnavailable = errors.New("analyzer unavailable")

	// ErrEmbeddingUnavailable indicates the embedding service is not configured.
	// Entries are captured with an empty vector.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrNoTaskSink indicates task sync was requested without any sink configured.
	ErrNoTaskSink = errors.New("no task sink configured")

	// ErrRateLimited indicates a task sink rejected a request for exceeding its rate limit.
	ErrRateLimited = errors.New("rate limited")
)

// RateLimitError is returned by a task sink that was told to slow down.
// It matches ErrRateLimited with errors.Is.
type RateLimitError struct {
	// Sink names the rejecting sink.
	Sink string

	// RetryAfter is the delay the service asked for; zero when it gave none.
	RetryAfter time.Duration
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s: rate limited, retry after %s", e.Sink, e.RetryAfter)
	}
	return fmt.Sprintf("%s: rate limited", e.Sink)
}

// Unwrap returns ErrRateLimited.
func (e *RateLimitError) Unwrap() error {
	return ErrRateLimited
}
