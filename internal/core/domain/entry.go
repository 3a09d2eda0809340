package domain

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the ISO-8601 calendar date used for entry dates, log headers and exports.
const DateLayout = "2006-01-02"

// EpochDate is assigned to entries whose date cannot be recovered from any source.
const EpochDate = "1970-01-01"

// RawEntry is a journal document waiting in the inbox.
// It is created by capture and consumed (then deleted) by compaction.
type RawEntry struct {
	// ID is unique per entry. Legacy sidecars call it "uuid".
	ID string

	// Date is the entry date as YYYY-MM-DD. May be empty until resolved.
	Date string

	// RawText is the full journal text.
	RawText string

	// Tags are labels supplied by frontmatter or the analyzer.
	Tags []string

	// Analysis is the analyzer output, nil when no sidecar exists.
	Analysis *Analysis

	// Embedding is the document vector. Empty when embedding failed.
	Embedding []float32

	// Extra holds frontmatter fields with no dedicated slot.
	Extra map[string]any

	// MarkdownPath is the inbox body file, if any.
	MarkdownPath string

	// SidecarPath is the inbox JSON sidecar file, if any.
	SidecarPath string
}

// Files returns the inbox files backing the entry, sidecar first.
func (e *RawEntry) Files() []string {
	var files []string
	if e.SidecarPath != "" {
		files = append(files, e.SidecarPath)
	}
	if e.MarkdownPath != "" {
		files = append(files, e.MarkdownPath)
	}
	return files
}

// BaseName returns the inbox file stem shared by body and sidecar.
func (e *RawEntry) BaseName() string {
	path := e.MarkdownPath
	if path == "" {
		path = e.SidecarPath
	}
	if path == "" {
		return ""
	}
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ActionItems returns the analyzer's action items, or nil without analysis.
func (e *RawEntry) ActionItems() []ActionItem {
	if e.Analysis == nil {
		return nil
	}
	return e.Analysis.ActionItems
}

var (
	compactDatePrefix = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})`)
	isoDatePrefix     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	isoDateAnywhere   = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
)

// NormaliseDate reduces a date-ish string to YYYY-MM-DD.
// Returns false when the value does not start with a valid calendar date.
func NormaliseDate(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if len(value) < len(DateLayout) {
		return "", false
	}
	candidate := value[:len(DateLayout)]
	if _, err := time.Parse(DateLayout, candidate); err != nil {
		return "", false
	}
	return candidate, true
}

// DateFromFilename recovers a date from an inbox filename prefix.
// Both "20250301_ab12cd34.md" and "2025-03-01_ab12cd34.md" are understood.
func DateFromFilename(path string) (string, bool) {
	name := filepath.Base(path)
	for _, re := range []*regexp.Regexp{isoDatePrefix, compactDatePrefix} {
		m := re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		date := m[1] + "-" + m[2] + "-" + m[3]
		if _, err := time.Parse(DateLayout, date); err == nil {
			return date, true
		}
	}
	return "", false
}

// DateFromText returns the first valid YYYY-MM-DD appearing in text.
func DateFromText(text string) (string, bool) {
	for _, candidate := range isoDateAnywhere.FindAllString(text, -1) {
		if _, err := time.Parse(DateLayout, candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// ResolveDate picks the entry date using the fallback chain:
// explicit date, then the filename prefix, then EpochDate. It never fails.
func ResolveDate(explicit, filename string) string {
	if date, ok := NormaliseDate(explicit); ok {
		return date
	}
	if filename != "" {
		if date, ok := DateFromFilename(filename); ok {
			return date
		}
	}
	return EpochDate
}
