package anthropic

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

func (testPrompts) Load(string) (string, error) { return "Analyse:\n%s", nil }
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
	assert.Equal(t, DefaultMaxTokens, a.maxTokens)
}

func TestAnalyzer_Analyze(t *testing.T) {
	var got messagesRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"` +
			"```json\\n{\\\"mood\\\": 8, \\\"summary\\\": \\\"calm\\\", \\\"action_items\\\": [\\\"stretch\\\"]}\\n```" +
			`"}],"stop_reason":"end_turn"}`))
	}))
	defer server.Close()

	a, err := NewAnalyzer(Config{APIKey: "secret", BaseURL: server.URL + "/", Model: "m"}, testPrompts{})
	require.NoError(t, err)

	analysis, err := a.Analyze(context.Background(), "today")
	require.NoError(t, err)

	assert.Equal(t, "m", got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "Analyse:\ntoday", got.Messages[0].Content)

	require.NotNil(t, analysis.Mood)
	assert.Equal(t, 8.0, *analysis.Mood)
	assert.Equal(t, "calm", analysis.Summary)
	assert.Equal(t, []domain.ActionItem{{Task: "stretch"}}, analysis.ActionItems)
}

func TestAnalyzer_Analyze_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"api error", http.StatusUnauthorized, `{"error":{"type":"authentication_error","message":"bad key"}}`},
		{"status without error body", http.StatusInternalServerError, `{}`},
		{"not json", http.StatusBadGateway, `<html>`},
		{"no text", http.StatusOK, `{"content":[]}`},
		{"answer not json", http.StatusOK, `{"content":[{"type":"text","text":"I cannot"}]}`},
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
