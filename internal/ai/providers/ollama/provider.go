package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yildizm/randy/internal/ai"
	"github.com/yildizm/randy/internal/game"
)

// maxMessageTokens keeps local generations to a short reaction
const maxMessageTokens = 120

// Provider implements the AI provider interface for Ollama
type Provider struct {
	config  *Config
	client  *http.Client
	baseURL *url.URL
}

// New creates a new Ollama provider instance
func New(config *Config) (*Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, ai.NewConfigurationError(ProviderName, "base_url", "invalid base URL: "+err.Error())
	}

	client := &http.Client{
		Timeout: config.Timeout,
	}

	return &Provider{
		config:  config,
		client:  client,
		baseURL: baseURL,
	}, nil
}

// Name returns the provider name
func (p *Provider) Name() string {
	return ProviderName
}

// ValidateConfig validates the provider configuration
func (p *Provider) ValidateConfig() error {
	return p.config.Validate()
}

// Close releases idle connections
func (p *Provider) Close() error {
	p.client.CloseIdleConnections()
	return nil
}

// Message asks a local model for a reaction to outcome. Empty generations are
// requested again up to EmptyResponseRetries times.
func (p *Provider) Message(ctx context.Context, outcome game.Outcome, model string) (string, error) {
	if model == "" {
		model = p.config.DefaultModel
	}

	prompt := ai.NewOutcomePattern(p.config.Persona).WithOutcome(outcome).Build()
	req := &GenerateRequest{
		Model:  model,
		Prompt: ai.UserTurn(prompt),
		System: prompt.SystemPrompt,
		Stream: false,
		Options: &Options{
			Temperature: p.config.Temperature,
			NumPredict:  maxMessageTokens,
		},
	}

	for attempt := 0; attempt <= p.config.EmptyResponseRetries; attempt++ {
		resp, err := p.generate(ctx, req)
		if err != nil {
			return "", err
		}

		if content := ai.ExtractMessage(resp.Response); content != "" {
			return content, nil
		}
	}

	return "", ai.NewProviderError(ai.ErrTypeTimedOut, "timed out after multiple requests", ProviderName)
}

// Models returns the installed models. The implicit ":latest" tag is dropped so the
// names match what users type.
func (p *Provider) Models(ctx context.Context) ([]string, error) {
	endpoint := p.baseURL.JoinPath("/api/tags")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), http.NoBody)
	if err != nil {
		return nil, ai.NewProviderErrorWithCause(ai.ErrTypeCatalogUnreachable, "", ProviderName, err)
	}

	resp, err := p.do(req, nil)
	if err != nil {
		if ai.TypeOf(err) == ai.ErrTypeUnknown {
			return nil, ai.NewProviderErrorWithCause(ai.ErrTypeCatalogUnreachable, "", ProviderName, err)
		}
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, handleErrorResponse(resp)
	}

	var tagsResp TagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tagsResp); err != nil {
		return nil, ai.NewProviderErrorWithCause(ai.ErrTypeCatalogUnreachable, "failed to decode response", ProviderName, err)
	}

	models := make([]string, 0, len(tagsResp.Models))
	for _, m := range tagsResp.Models {
		if m.Name != "" {
			models = append(models, strings.TrimSuffix(m.Name, ":latest"))
		}
	}
	return models, nil
}

// generate performs a single non-streaming generation
func (p *Provider) generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	endpoint := p.baseURL.JoinPath("/api/generate")

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, ai.NewProviderErrorWithCause(ai.ErrTypeUnknown, "failed to marshal request", ProviderName, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), http.NoBody)
	if err != nil {
		return nil, ai.NewProviderErrorWithCause(ai.ErrTypeUnknown, "failed to create request", ProviderName, err)
	}

	resp, err := p.do(httpReq, jsonData)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, handleErrorResponse(resp)
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, ai.NewProviderErrorWithCause(ai.ErrTypeServiceUnavailable, "failed to decode response", ProviderName, err)
	}

	return &result, nil
}

// do sends req with body, retrying only when the server could not be reached
func (p *Provider) do(req *http.Request, body []byte) (*http.Response, error) {
	ctx := req.Context()

	var lastErr error
	for attempt := 0; attempt < p.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			if err := p.sleep(ctx, time.Duration(attempt)*p.config.RetryDelay); err != nil {
				return nil, err
			}
		}

		attemptReq := req.Clone(ctx)
		if body != nil {
			attemptReq.Body = io.NopCloser(bytes.NewReader(body))
			attemptReq.ContentLength = int64(len(body))
			attemptReq.Header.Set("Content-Type", "application/json")
		}

		resp, err := p.client.Do(attemptReq)
		if err == nil {
			return resp, nil
		}

		if pe := ai.FromContext(err, ProviderName); pe != nil {
			return nil, pe
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, ai.NewProviderErrorWithCause(ai.ErrTypeTimedOut, "", ProviderName, err)
		}
		lastErr = err
	}

	return nil, ai.NewProviderErrorWithCause(ai.ErrTypeUnknown, "request failed after retries, is ollama running?", ProviderName, lastErr)
}

func (p *Provider) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ai.FromContext(ctx.Err(), ProviderName)
	}
}

// handleErrorResponse classifies a failed response by status, keeping the server's
// error text as detail
func handleErrorResponse(resp *http.Response) error {
	pe := ai.NewStatusError(resp.StatusCode, ProviderName)

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var errorResp ErrorResponse
	if json.Unmarshal(body, &errorResp) == nil && errorResp.Error != "" {
		pe.Message = fmt.Sprintf("%s (%s)", pe.Message, errorResp.Error)
	}
	return pe
}
