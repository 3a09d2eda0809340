package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
)

// ErrNoPromptStore is returned by analyzer constructors given a nil store.
var ErrNoPromptStore = errors.New("prompt store is required")

// RenderPrompt fills the analyze-entry template with the entry text.
func RenderPrompt(store driven.PromptStore, rawText string) (string, error) {
	template, err := store.Load(driven.PromptAnalyzeEntry)
	if err != nil {
		return "", fmt.Errorf("load prompt: %w", err)
	}
	return fmt.Sprintf(template, rawText), nil
}

// ParseAnalysis decodes a model answer into an Analysis.
// Markdown code fences, comments and trailing commas are tolerated.
func ParseAnalysis(text string) (*domain.Analysis, error) {
	clean := StripCodeFences(text)
	if clean == "" {
		return nil, errors.New("empty analysis")
	}

	var obj map[string]any
	if err := json.Unmarshal(jsonc.ToJSON([]byte(clean)), &obj); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}
	if obj == nil {
		return nil, errors.New("analysis is not a JSON object")
	}
	return domain.AnalysisFromMap(obj), nil
}

// StripCodeFences removes ```json and ``` markers around a model answer.
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```JSON", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
