// Package googletasks inserts tasks into a Google Tasks list.
package googletasks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"

	"github.com/custodia-labs/lifeos-cli/internal/adapters/driven/tasksink"
	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.TaskSink = (*Sink)(nil)

// DefaultTaskList is the user's default list.
const DefaultTaskList = "@default"

// Common Google Tasks errors.
var (
	// ErrUnauthorized indicates invalid or expired credentials.
	ErrUnauthorized = errors.New("google tasks: unauthorised (invalid credentials)")

	// ErrNotFound indicates the task list does not exist.
	ErrNotFound = errors.New("google tasks: task list not found")
)

// Sink inserts one Google task per payload.
type Sink struct {
	service *tasks.Service
	listID  string
	now     func() time.Time
}

// New creates a sink authenticated with service account or authorized user
// credentials. creds is either the JSON document itself or a path to it.
func New(ctx context.Context, creds, listID string) (*Sink, error) {
	data, err := CredentialsJSON(creds)
	if err != nil {
		return nil, err
	}
	parsed, err := google.CredentialsFromJSON(ctx, data, tasks.TasksScope)
	if err != nil {
		return nil, fmt.Errorf("parse google credentials: %w", err)
	}
	svc, err := tasks.NewService(ctx, option.WithTokenSource(parsed.TokenSource))
	if err != nil {
		return nil, fmt.Errorf("create tasks service: %w", err)
	}
	return NewWithService(svc, listID), nil
}

// CredentialsJSON returns inline JSON as is and reads anything else as a file path.
func CredentialsJSON(creds string) ([]byte, error) {
	if IsInlineCredentials(creds) {
		return []byte(strings.TrimSpace(creds)), nil
	}
	data, err := os.ReadFile(creds)
	if err != nil {
		return nil, fmt.Errorf("read google credentials: %w", err)
	}
	return data, nil
}

// IsInlineCredentials reports whether creds holds the JSON document rather than a path.
func IsInlineCredentials(creds string) bool {
	return strings.HasPrefix(strings.TrimSpace(creds), "{")
}

// NewWithService wraps an existing Tasks API client.
func NewWithService(svc *tasks.Service, listID string) *Sink {
	if listID == "" {
		listID = DefaultTaskList
	}
	return &Sink{service: svc, listID: listID, now: time.Now}
}

// Name identifies the sink in logs.
func (s *Sink) Name() string {
	return "google-tasks"
}

// Send inserts the task. The payload's Due is converted with DueDate.
func (s *Sink) Send(ctx context.Context, payload domain.TaskPayload) error {
	due, err := DueDate(payload.Due, s.now())
	if err != nil {
		return err
	}

	task := &tasks.Task{
		Title: payload.Title,
		Notes: payload.Notes,
		Due:   due,
	}
	if _, err := s.service.Tasks.Insert(s.listID, task).Context(ctx).Do(); err != nil {
		return s.wrapError(err)
	}
	return nil
}

// DueDate turns a due hint into the RFC 3339 timestamp Google Tasks expects.
// Accepted: "", "today", "tomorrow", "+Nd", YYYY-MM-DD or RFC 3339.
// Google Tasks only keeps the date, so times are set to midnight UTC.
func DueDate(due string, now time.Time) (string, error) {
	due = strings.ToLower(strings.TrimSpace(due))
	day := func(t time.Time) string {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
	}

	switch {
	case due == "":
		return "", nil
	case due == "today":
		return day(now), nil
	case due == "tomorrow":
		return day(now.AddDate(0, 0, 1)), nil
	case strings.HasPrefix(due, "+") && strings.HasSuffix(due, "d"):
		var n int
		if _, err := fmt.Sscanf(due, "+%dd", &n); err == nil && n >= 0 {
			return day(now.AddDate(0, 0, n)), nil
		}
	default:
		if t, err := time.Parse(domain.DateLayout, due); err == nil {
			return day(t), nil
		}
		if t, err := time.Parse(time.RFC3339, strings.ToUpper(due)); err == nil {
			return day(t), nil
		}
	}
	return "", fmt.Errorf("google tasks: %w: unsupported due %q", domain.ErrInvalidInput, due)
}

// wrapError converts a Google API error to a more specific error.
func (s *Sink) wrapError(err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return fmt.Errorf("insert task: %w", err)
	}

	switch gerr.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, gerr.Message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, s.listID)
	case http.StatusTooManyRequests:
		return &domain.RateLimitError{
			Sink:       s.Name(),
			RetryAfter: tasksink.ParseRetryAfter(gerr.Header.Get("Retry-After"), s.now()),
		}
	default:
		return fmt.Errorf("insert task: %w", err)
	}
}
