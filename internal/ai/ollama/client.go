package ollama

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/commitpush/commitpush/internal/logger"
	"github.com/commitpush/commitpush/internal/ports"
	"github.com/ollama/ollama/api"
)

var _ ports.LanguageModel = (*OllamaProvider)(nil)

const DefaultHost = "http://localhost:11434"

// Generator is the part of *api.Client used here.
type Generator interface {
	Generate(ctx context.Context, req *api.GenerateRequest, fn api.GenerateResponseFunc) error
}

type OllamaProvider struct {
	client      Generator
	model       string
	temperature float32
}

// NewOllamaProvider talks to the Ollama server at host (DefaultHost when empty).
func NewOllamaProvider(host, model string, temperature float32) (*OllamaProvider, error) {
	if host == "" {
		host = DefaultHost
	}
	// OLLAMA_HOST is often given as host:port
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}
	base, err := url.Parse(host)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, domainErrors.ErrConfigInvalid.
			WithError(err).
			WithContext("field", "ai_providers.ollama.base_url").
			WithContext("value", host)
	}
	// local generation can be slow on CPU; only guard against a stalled connection
	httpClient := &http.Client{Transport: &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		ResponseHeaderTimeout: 5 * time.Minute,
	}}
	return NewOllamaProviderWithClient(api.NewClient(base, httpClient), model, temperature), nil
}

func NewOllamaProviderWithClient(client Generator, model string, temperature float32) *OllamaProvider {
	return &OllamaProvider{
		client:      client,
		model:       model,
		temperature: temperature,
	}
}

func (o *OllamaProvider) Name() string {
	return "ollama/" + o.model
}

func (o *OllamaProvider) Complete(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &api.GenerateRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: &stream,
	}
	if o.temperature > 0 {
		req.Options = map[string]interface{}{"temperature": o.temperature}
	}

	var out strings.Builder
	err := o.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		out.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		logger.Debug(ctx, "ollama request failed", "model", o.model, "error", err)
		return "", o.classify(err)
	}

	text := out.String()
	if strings.TrimSpace(text) == "" {
		return "", domainErrors.ErrEmptyCompletion.WithContext("model", o.model)
	}
	return text, nil
}

func (o *OllamaProvider) classify(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var statusErr api.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode == http.StatusNotFound {
			return o.modelNotFound(err)
		}
		return domainErrors.ErrAIGeneration.WithError(err).WithContext("status", statusErr.StatusCode)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return domainErrors.ErrAIUnavailable.WithError(err)
	}

	// the client turns a JSON {"error": ...} body into a plain error, dropping the status
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "not found") || strings.Contains(errMsg, "try pulling") {
		return o.modelNotFound(err)
	}
	return domainErrors.ErrAIGeneration.WithError(err)
}

func (o *OllamaProvider) modelNotFound(err error) error {
	return domainErrors.ErrAIModelNotFound.WithError(err).
		WithContext("model", o.model).
		WithSuggestion("Pull the model first: ollama pull " + o.model)
}
