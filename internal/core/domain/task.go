package domain

import (
	"fmt"
	"strings"
)

// Priority ranks a task.
type Priority string

// Task priorities.
const (
	PriorityHigh Priority = "High"
	PriorityMed  Priority = "Med"
	PriorityLow  Priority = "Low"
)

// ParsePriority maps free-form priority text onto a Priority.
// Unknown or empty values become PriorityMed.
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "h", "p1", "urgent":
		return PriorityHigh
	case "low", "l", "p3":
		return PriorityLow
	default:
		return PriorityMed
	}
}

// String returns the string representation.
func (p Priority) String() string {
	return string(p)
}

// FallbackContext marks tasks mined by the regex extractor.
const FallbackContext = "Fallback Extraction"

// Task is an actionable item mined from an entry.
type Task struct {
	Title    string
	Priority Priority
	Context  string
}

// ActionItem converts the task to the analyzer's action item shape.
func (t Task) ActionItem() ActionItem {
	return ActionItem{
		Task:     t.Title,
		Priority: t.Priority.String(),
		Context:  t.Context,
	}
}

// TaskFromActionItem converts an analyzer action item into a Task.
func TaskFromActionItem(item ActionItem) Task {
	context := item.Context
	if context == "" {
		context = "General"
	}
	return Task{
		Title:    strings.TrimSpace(item.Task),
		Priority: ParsePriority(item.Priority),
		Context:  context,
	}
}

// TaskPayload is what a task sink accepts, one per call.
type TaskPayload struct {
	Title string `json:"title"`
	Notes string `json:"notes"`
	Due   string `json:"due"`
}

// NewTaskPayload renders a task for a sink.
func NewTaskPayload(t Task, titlePrefix, due string) TaskPayload {
	title := t.Title
	if titlePrefix != "" {
		title = titlePrefix + " " + title
	}
	return TaskPayload{
		Title: title,
		Notes: fmt.Sprintf("Context: %s\nPriority: %s", t.Context, t.Priority),
		Due:   due,
	}
}
