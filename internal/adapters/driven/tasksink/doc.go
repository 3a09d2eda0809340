// Package tasksink groups the task sink adapters.
//
// Each sink accepts one domain.TaskPayload per call and reports rate limit
// responses as *domain.RateLimitError so the task sync service can back off.
//
//   - webhook: one JSON POST per task
//   - googletasks: Google Tasks API insert
package tasksink

import (
	"strconv"
	"strings"
	"time"
)

// ParseRetryAfter reads a Retry-After header value given in seconds or as an
// HTTP date. Unparseable or past values yield zero.
func ParseRetryAfter(value string, now time.Time) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := time.Parse(time.RFC1123, value); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
