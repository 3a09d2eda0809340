package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lifeos-cli/internal/adapters/driven/llm"
	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
)

type testPrompts struct{}

func (testPrompts) Load(string) (string, error) { return "Entry: %s", nil }
func (testPrompts) Reload()                     {}

func TestNewAnalyzer(t *testing.T) {
	_, err := NewAnalyzer(Config{}, testPrompts{})
	assert.ErrorIs(t, err, domain.ErrAnalyzerUnavailable)

	_, err = NewAnalyzer(Config{APIKey: "k"}, nil)
	assert.ErrorIs(t, err, llm.ErrNoPromptStore)

	a, err := NewAnalyzer(Config{APIKey: "k"}, testPrompts{})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, a.ModelName())
	assert.Equal(t, DefaultBaseURL, a.baseURL)
}

func TestAnalyzer_Analyze(t *testing.T) {
	var got chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		resp := map[string]any{
			"choices": []any{
				map[string]any{
					"message":       map[string]any{"content": `{"mood": 4, "tags": ["work"], "summary": "long day",}`},
					"finish_reason": "stop",
				},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	a, err := NewAnalyzer(Config{APIKey: "secret", BaseURL: server.URL}, testPrompts{})
	require.NoError(t, err)

	analysis, err := a.Analyze(context.Background(), "meetings")
	require.NoError(t, err)

	require.Len(t, got.Messages, 1)
	assert.Equal(t, "Entry: meetings", got.Messages[0].Content)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)

	require.NotNil(t, analysis.Mood)
	assert.Equal(t, 4.0, *analysis.Mood)
	assert.Equal(t, []string{"work"}, analysis.Tags)
	assert.Equal(t, "long day", analysis.Summary)
}

func TestAnalyzer_Analyze_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"api error", http.StatusTooManyRequests, `{"error":{"message":"slow down","type":"rate_limit"}}`},
		{"bad status", http.StatusInternalServerError, `{}`},
		{"no choices", http.StatusOK, `{"choices":[]}`},
		{"answer not json", http.StatusOK, `{"choices":[{"message":{"content":"sorry"}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			a, err := NewAnalyzer(Config{APIKey: "k", BaseURL: server.URL}, testPrompts{})
			require.NoError(t, err)

			_, err = a.Analyze(context.Background(), "x")
			assert.Error(t, err)
		})
	}
}
