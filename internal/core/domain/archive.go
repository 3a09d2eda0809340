package domain

import (
	"strings"
	"time"
)

// ArchiveRecord is a durable row of the compacted archive: the flattened
// union of a RawEntry and its analysis. Records are keyed by ID (or Date
// when some record lacks an ID) and a newer record replaces an older one.
type ArchiveRecord struct {
	ID      string
	Date    string
	Content string

	// Mood is copied from frontmatter, else from the analysis.
	Mood *float64

	Tags        []string
	Summary     string
	ActionItems []ActionItem
	ProjectData map[string]any
	LifeData    map[string]any

	// Analysis is the complete analyzer object.
	Analysis map[string]any

	// Embedding is kept in the columnar archive only, never exported to JSON.
	Embedding []float32

	// Extra holds frontmatter fields with no dedicated column.
	Extra map[string]any
}

// NewArchiveRecord flattens an inbox entry into an archive row.
// The entry date must already be resolved.
func NewArchiveRecord(e RawEntry) ArchiveRecord {
	r := ArchiveRecord{
		ID:        e.ID,
		Date:      e.Date,
		Content:   strings.TrimSpace(e.RawText),
		Tags:      e.Tags,
		Embedding: e.Embedding,
	}

	for k, v := range e.Extra {
		if k == "mood" {
			r.Mood = AsFloat(v)
			continue
		}
		if r.Extra == nil {
			r.Extra = make(map[string]any, len(e.Extra))
		}
		r.Extra[k] = plainValue(v)
	}

	if a := e.Analysis; a != nil {
		if r.Mood == nil {
			r.Mood = a.Mood
		}
		if len(r.Tags) == 0 {
			r.Tags = a.Tags
		}
		r.Summary = a.Summary
		r.ActionItems = a.ActionItems
		r.ProjectData = a.ProjectData
		r.LifeData = a.LifeData
		r.Analysis = a.ToMap()
	}

	return r
}

// plainValue rewrites decoded frontmatter so it survives any archive codec
// unchanged: timestamps become strings, at any depth.
func plainValue(v any) any {
	switch val := v.(type) {
	case time.Time:
		return formatTimestamp(val)
	case *time.Time:
		if val == nil {
			return nil
		}
		return formatTimestamp(*val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = plainValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = plainValue(item)
		}
		return out
	default:
		return v
	}
}

// formatTimestamp keeps a bare YAML date as a date.
func formatTimestamp(t time.Time) string {
	if t.Location() == time.UTC && t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339Nano)
}
