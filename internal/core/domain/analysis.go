package domain

import (
	"strconv"
	"strings"
)

// ActionItem is a task as the analyzer reports it.
type ActionItem struct {
	Task     string `json:"task"`
	Priority string `json:"priority,omitempty"`
	Context  string `json:"context,omitempty"`
}

// Analysis is the analyzer's structured view of an entry.
// Its shape is owned by the analyzer; Raw keeps every field so nothing
// unknown is lost on the way to the archive.
type Analysis struct {
	Mood        *float64
	Focus       *float64
	Tags        []string
	ActionItems []ActionItem
	ProjectData map[string]any
	LifeData    map[string]any
	Summary     string

	// Raw is the complete analyzer object as decoded from JSON.
	Raw map[string]any
}

// FailedAnalysis is recorded when the analyzer call or its JSON fails.
func FailedAnalysis() *Analysis {
	return &Analysis{
		Summary: "AI Parse Error",
		Raw:     map[string]any{},
	}
}

// AnalysisFromMap builds an Analysis from a decoded JSON object.
// Fields of the wrong type are ignored rather than rejected.
func AnalysisFromMap(m map[string]any) *Analysis {
	if m == nil {
		return nil
	}
	a := &Analysis{Raw: m}
	a.Mood = AsFloat(m["mood"])
	a.Focus = AsFloat(m["focus"])
	a.Tags = AsStrings(m["tags"])
	a.Summary, _ = m["summary"].(string)
	a.ProjectData, _ = m["project_data"].(map[string]any)
	a.LifeData, _ = m["life_data"].(map[string]any)

	if items, ok := m["action_items"].([]any); ok {
		for _, item := range items {
			switch v := item.(type) {
			case string:
				if strings.TrimSpace(v) != "" {
					a.ActionItems = append(a.ActionItems, ActionItem{Task: v})
				}
			case map[string]any:
				task, _ := v["task"].(string)
				if strings.TrimSpace(task) == "" {
					continue
				}
				priority, _ := v["priority"].(string)
				context, _ := v["context"].(string)
				a.ActionItems = append(a.ActionItems, ActionItem{
					Task:     task,
					Priority: priority,
					Context:  context,
				})
			}
		}
	}
	return a
}

// ToMap renders the analysis back to a JSON-ready object.
// Typed fields overwrite their Raw counterparts; other Raw keys are kept.
func (a *Analysis) ToMap() map[string]any {
	if a == nil {
		return nil
	}
	out := make(map[string]any, len(a.Raw)+4)
	for k, v := range a.Raw {
		out[k] = v
	}

	items := make([]any, 0, len(a.ActionItems))
	for _, item := range a.ActionItems {
		items = append(items, map[string]any{
			"task":     item.Task,
			"priority": item.Priority,
			"context":  item.Context,
		})
	}
	out["action_items"] = items

	if a.Summary != "" {
		out["summary"] = a.Summary
	}
	if a.Mood != nil {
		out["mood"] = *a.Mood
	}
	if a.Focus != nil {
		out["focus"] = *a.Focus
	}
	if len(a.Tags) > 0 {
		tags := make([]any, len(a.Tags))
		for i, t := range a.Tags {
			tags[i] = t
		}
		out["tags"] = tags
	}
	return out
}

// AsFloat converts a loosely typed JSON/YAML scalar to a float.
func AsFloat(v any) *float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	return &f
}

// AsStrings converts a loosely typed list to strings, dropping non-strings.
func AsStrings(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if list == "" {
			return nil
		}
		return []string{list}
	default:
		return nil
	}
}
