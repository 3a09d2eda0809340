// Package ai builds the analyzer and embedding adapters from settings.
package ai

import (
	"fmt"

	openaiembed "github.com/custodia-labs/lifeos-cli/internal/adapters/driven/embedding/openai"
	anthropicllm "github.com/custodia-labs/lifeos-cli/internal/adapters/driven/llm/anthropic"
	openaillm "github.com/custodia-labs/lifeos-cli/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
)

// NewAnalyzer creates the analyzer selected by settings.
// Returns nil, nil when no provider is selected. A selected provider
// without an API key is an error wrapping domain.ErrAnalyzerUnavailable.
func NewAnalyzer(settings domain.AnalyzerSettings, prompts driven.PromptStore) (driven.Analyzer, error) {
	if settings.Provider == domain.AIProviderNone {
		return nil, nil
	}
	if !settings.Provider.IsValid() {
		return nil, fmt.Errorf("%w: unsupported provider %q", domain.ErrAnalyzerUnavailable, settings.Provider)
	}
	if !settings.IsConfigured() {
		return nil, fmt.Errorf("%w: %s API key not set (LIFEOS_ANALYZER_API_KEY)",
			domain.ErrAnalyzerUnavailable, settings.Provider)
	}

	switch settings.Provider {
	case domain.AIProviderAnthropic:
		a, err := anthropicllm.NewAnalyzer(anthropicllm.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		}, prompts)
		if err != nil {
			return nil, err
		}
		return a, nil

	case domain.AIProviderOpenAI:
		a, err := openaillm.NewAnalyzer(openaillm.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		}, prompts)
		if err != nil {
			return nil, err
		}
		return a, nil

	default:
		return nil, fmt.Errorf("%w: unsupported provider %q", domain.ErrAnalyzerUnavailable, settings.Provider)
	}
}

// NewEmbeddingService creates the embedding service selected by settings.
// Returns nil, nil when no provider is selected.
func NewEmbeddingService(settings domain.EmbeddingSettings) (driven.EmbeddingService, error) {
	switch settings.Provider {
	case domain.AIProviderNone:
		return nil, nil

	case domain.AIProviderAnthropic:
		// Anthropic does not offer embeddings.
		return nil, fmt.Errorf("%w: anthropic does not support embeddings, use openai",
			domain.ErrEmbeddingUnavailable)

	case domain.AIProviderOpenAI:
		if !settings.IsConfigured() {
			return nil, fmt.Errorf("%w: openai API key not set (LIFEOS_EMBEDDING_API_KEY)",
				domain.ErrEmbeddingUnavailable)
		}
		svc, err := openaiembed.NewEmbeddingService(openaiembed.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})
		if err != nil {
			return nil, err
		}
		return svc, nil

	default:
		return nil, fmt.Errorf("%w: unsupported provider %q", domain.ErrEmbeddingUnavailable, settings.Provider)
	}
}
