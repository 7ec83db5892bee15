package providers

import (
	"context"

	"github.com/commitpush/commitpush/internal/ai/gemini"
	"github.com/commitpush/commitpush/internal/ai/ollama"
	"github.com/commitpush/commitpush/internal/config"
	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/commitpush/commitpush/internal/ports"
)

// NewLanguageModel creates the language model selected in the configuration.
// It returns a nil model and no error when AI is disabled.
func NewLanguageModel(ctx context.Context, cfg *config.Config) (ports.LanguageModel, error) {
	ai, providerCfg := cfg.ActiveAI()

	switch ai {
	case config.AINone, "":
		return nil, nil
	case config.AIOllama:
		provider, err := ollama.NewOllamaProvider(providerCfg.BaseURL, providerCfg.Model, providerCfg.Temperature)
		if err != nil {
			return nil, err
		}
		return provider, nil
	case config.AIGemini:
		provider, err := gemini.NewGeminiProvider(ctx, providerCfg.APIKey, providerCfg.Model, providerCfg.Temperature)
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, domainErrors.ErrAIProviderUnsupported.WithContext("provider", string(ai))
	}
}
