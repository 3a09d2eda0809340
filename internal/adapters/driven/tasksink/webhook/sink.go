// Package webhook sends tasks to an HTTP endpoint, one JSON POST per task.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/custodia-labs/lifeos-cli/internal/adapters/driven/tasksink"
	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.TaskSink = (*Sink)(nil)

// DefaultTimeout bounds a single POST.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of an error response is echoed.
const maxErrorBody = 512

// Sink posts each task as {title, notes, due}.
type Sink struct {
	client *http.Client
	url    string
	now    func() time.Time
}

// New creates a webhook sink. The URL must be absolute http or https.
func New(rawURL string, timeout time.Duration) (*Sink, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("webhook: %w: invalid URL %q", domain.ErrInvalidInput, rawURL)
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Sink{
		client: &http.Client{Timeout: timeout},
		url:    rawURL,
		now:    time.Now,
	}, nil
}

// Name identifies the sink in logs.
func (s *Sink) Name() string {
	return "webhook"
}

// Send posts one task. Any non-2xx status is an error; 429 is reported as
// *domain.RateLimitError.
func (s *Sink) Send(ctx context.Context, task domain.TaskPayload) error {
	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &domain.RateLimitError{
			Sink:       s.Name(),
			RetryAfter: tasksink.ParseRetryAfter(resp.Header.Get("Retry-After"), s.now()),
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}
	return nil
}
