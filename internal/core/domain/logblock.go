package domain

import (
	"fmt"
	"strings"
)

// LogRef is the token that identifies an entry inside a log file.
func LogRef(entryID string) string {
	return "(Ref: " + entryID + ")"
}

// FormatLogBlock renders one append-only log block. The layout is read back
// by people and tools and must not change.
func FormatLogBlock(date, entryID, content string) string {
	return fmt.Sprintf("\n\n### %s %s\n%s\n\n---", date, LogRef(entryID), strings.TrimSpace(content))
}

// ProjectLogPath is the destination of a project's log.
func ProjectLogPath(tag string) string {
	return "projects/" + tag + ".md"
}

// LifeLogPath is the destination of a life log period.
func LifeLogPath(period string) string {
	return "life/life_log_" + period + ".md"
}
