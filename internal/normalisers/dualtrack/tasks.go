package dualtrack

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
)

// Ensure TaskExtractor implements the interface.
var _ driven.TaskExtractor = (*TaskExtractor)(nil)

var (
	checkboxLine = regexp.MustCompile(`^-\s*\[\s*\]`)
	checkedLine  = regexp.MustCompile(`^[-*]\s*\[[xX]\]`)
	taskPrefix   = regexp.MustCompile(`^(?:-\s*\[\s*\]|-\s*|\*\s*|TODO\s*:?)\s*`)
)

// TaskExtractor mines actionable bullets from free text. It is the fallback
// used when the analyzer returns no action items.
type TaskExtractor struct {
	header *regexp.Regexp
}

// NewTaskExtractor creates an extractor for the given block headers.
// With no headers the parser defaults are used.
func NewTaskExtractor(headers []string) *TaskExtractor {
	if len(headers) == 0 {
		headers = domain.DefaultSettings().Parser.NextActionHeaders
	}
	return &TaskExtractor{
		header: regexp.MustCompile(`(?i)^#{2,3}\s*(?:\d+\.?\s*)?` + headerAlternation(headers)),
	}
}

// Extract returns the union of tasks listed under a next-actions heading and
// unchecked checkbox lines anywhere in content. Titles are unique and keep
// their first-seen order.
func (x *TaskExtractor) Extract(content string) []domain.Task {
	lines := strings.Split(normaliseNewlines(content), "\n")

	var titles []string
	titles = append(titles, x.headerBlockLines(lines)...)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if checkboxLine.MatchString(trimmed) {
			titles = append(titles, trimmed)
		}
	}

	seen := make(map[string]bool, len(titles))
	var tasks []domain.Task
	for _, line := range titles {
		title := strings.TrimSpace(taskPrefix.ReplaceAllString(line, ""))
		if title == "" || seen[title] {
			continue
		}
		seen[title] = true
		tasks = append(tasks, domain.Task{
			Title:    title,
			Priority: domain.PriorityHigh,
			Context:  domain.FallbackContext,
		})
	}
	return tasks
}

// ActionItems is Extract in the analyzer's shape.
func (x *TaskExtractor) ActionItems(content string) []domain.ActionItem {
	tasks := x.Extract(content)
	items := make([]domain.ActionItem, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, t.ActionItem())
	}
	return items
}

// headerBlockLines returns the task lines of the first next-actions block.
func (x *TaskExtractor) headerBlockLines(lines []string) []string {
	var out []string
	inBlock := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !inBlock {
			inBlock = x.header.MatchString(trimmed)
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			break
		}
		if isTaskLine(trimmed) {
			out = append(out, trimmed)
		}
	}
	return out
}

func isTaskLine(line string) bool {
	if checkedLine.MatchString(line) {
		return false
	}
	return strings.HasPrefix(line, "- [ ]") ||
		strings.HasPrefix(line, "- ") ||
		strings.HasPrefix(line, "* ") ||
		strings.HasPrefix(line, "TODO")
}
