package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisFromMap(t *testing.T) {
	a := AnalysisFromMap(map[string]any{
		"mood":    "7.5",
		"focus":   float64(6),
		"tags":    []any{"health", "", 3},
		"summary": "good day",
		"action_items": []any{
			"call mum",
			"   ",
			map[string]any{"task": "fix fence", "priority": "High", "context": "Garden"},
			map[string]any{"task": ""},
		},
		"project_data": map[string]any{"signals": []any{"x"}},
		"model":        "haiku",
	})
	require.NotNil(t, a)

	require.NotNil(t, a.Mood)
	assert.InDelta(t, 7.5, *a.Mood, 0.0001)
	require.NotNil(t, a.Focus)
	assert.InDelta(t, 6.0, *a.Focus, 0.0001)
	assert.Equal(t, []string{"health"}, a.Tags)
	assert.Equal(t, "good day", a.Summary)
	assert.Equal(t, []ActionItem{
		{Task: "call mum"},
		{Task: "fix fence", Priority: "High", Context: "Garden"},
	}, a.ActionItems)
	assert.NotNil(t, a.ProjectData)
	assert.Nil(t, a.LifeData)
	assert.Equal(t, "haiku", a.Raw["model"])
}

func TestAnalysisFromMap_Nil(t *testing.T) {
	assert.Nil(t, AnalysisFromMap(nil))
}

func TestAnalysis_ToMapKeepsUnknownKeys(t *testing.T) {
	mood := 5.0
	a := &Analysis{
		Mood:        &mood,
		Summary:     "ok",
		ActionItems: []ActionItem{{Task: "rest", Priority: "Low"}},
		Raw:         map[string]any{"model": "haiku", "summary": "stale"},
	}

	m := a.ToMap()
	assert.Equal(t, "haiku", m["model"])
	assert.Equal(t, "ok", m["summary"])
	assert.Equal(t, 5.0, m["mood"])
	assert.Equal(t, []any{map[string]any{"task": "rest", "priority": "Low", "context": ""}}, m["action_items"])

	var nilAnalysis *Analysis
	assert.Nil(t, nilAnalysis.ToMap())
}

func TestFailedAnalysis(t *testing.T) {
	a := FailedAnalysis()
	assert.Equal(t, "AI Parse Error", a.Summary)
	assert.Empty(t, a.ActionItems)
	assert.Nil(t, a.Mood)
}

func TestAsFloat(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  *float64
	}{
		{name: "float64", input: 4.5, want: ptr(4.5)},
		{name: "int", input: 3, want: ptr(3)},
		{name: "uint64", input: uint64(8), want: ptr(8)},
		{name: "numeric string", input: " 6 ", want: ptr(6)},
		{name: "bad string", input: "calm", want: nil},
		{name: "nil", input: nil, want: nil},
		{name: "bool", input: true, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AsFloat(tt.input))
		})
	}
}

func ptr(f float64) *float64 { return &f }
