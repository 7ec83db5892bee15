package gemini

import (
	"context"
	"strings"

	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/commitpush/commitpush/internal/logger"
	"github.com/commitpush/commitpush/internal/ports"
	"google.golang.org/genai"
)

var _ ports.LanguageModel = (*GeminiProvider)(nil)

// ModelsService is the part of *genai.Models used here.
type ModelsService interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiProvider struct {
	models      ModelsService
	model       string
	temperature float32
}

// NewGeminiProvider creates a Gemini API client for model.
func NewGeminiProvider(ctx context.Context, apiKey, model string, temperature float32) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, domainErrors.ErrAPIKeyMissing.WithContext("provider", "gemini")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		if isAuthError(err) {
			return nil, domainErrors.ErrAIKeyInvalid.WithError(err)
		}
		return nil, domainErrors.NewAppError(domainErrors.TypeAI, "error creating AI client", err)
	}
	return NewGeminiProviderWithService(client.Models, model, temperature), nil
}

// NewGeminiProviderWithService is used by tests to inject the models service.
func NewGeminiProviderWithService(models ModelsService, model string, temperature float32) *GeminiProvider {
	return &GeminiProvider{
		models:      models,
		model:       model,
		temperature: temperature,
	}
}

func (g *GeminiProvider) Name() string {
	return "gemini/" + g.model
}

func (g *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), GetGenerateConfig(g.temperature))
	if err != nil {
		log.Debug("gemini API call failed",
			"error", err,
			"model", g.model)

		errMsg := strings.ToLower(err.Error())
		switch {
		case strings.Contains(errMsg, "quota") ||
			strings.Contains(errMsg, "rate limit") ||
			strings.Contains(errMsg, "resource exhausted"):
			return "", domainErrors.ErrAIQuotaExceeded.WithError(err)
		case isAuthError(err):
			return "", domainErrors.ErrAIKeyInvalid.WithError(err)
		case strings.Contains(errMsg, "not found"):
			return "", domainErrors.ErrAIModelNotFound.WithError(err).
				WithContext("model", g.model).
				WithSuggestion("Pick a supported model: commitpush config set ai.model gemini-2.5-flash")
		}
		return "", domainErrors.ErrAIGeneration.WithError(err)
	}

	text := formatResponse(resp)
	if strings.TrimSpace(text) == "" {
		return "", domainErrors.ErrEmptyCompletion.WithContext("model", g.model)
	}

	if resp.UsageMetadata != nil {
		log.Debug("gemini usage",
			"input_tokens", resp.UsageMetadata.PromptTokenCount,
			"output_tokens", resp.UsageMetadata.CandidatesTokenCount)
	}

	return text, nil
}

func isAuthError(err error) bool {
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "api key") ||
		strings.Contains(errMsg, "unauthorized") ||
		strings.Contains(errMsg, "permission denied") ||
		strings.Contains(errMsg, "authentication")
}
