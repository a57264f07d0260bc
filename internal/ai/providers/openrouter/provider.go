package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yildizm/randy/internal/ai"
	"github.com/yildizm/randy/internal/game"
)

type Provider struct {
	config  *Config
	client  *http.Client
	baseURL *url.URL
}

func New(config *Config) (*Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, ai.NewConfigurationError(ProviderName, "base_url", fmt.Sprintf("invalid base URL: %v", err))
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

func (p *Provider) Name() string {
	return ProviderName
}

func (p *Provider) ValidateConfig() error {
	return p.config.Validate()
}

func (p *Provider) Close() error {
	p.client.CloseIdleConnections()
	return nil
}

// Message asks model for a reaction to outcome. An empty completion means the model is
// warming up, so the request is repeated up to EmptyResponseRetries more times before
// giving up with a timed out error.
func (p *Provider) Message(ctx context.Context, outcome game.Outcome, model string) (string, error) {
	if model == "" {
		model = p.config.DefaultModel
	}

	prompt := ai.NewOutcomePattern(p.config.Persona).WithOutcome(outcome).Build()
	chatReq := NewChatRequest(model, prompt.SystemPrompt, ai.UserTurn(prompt))

	for attempt := 0; attempt <= p.config.EmptyResponseRetries; attempt++ {
		resp, err := p.sendChatRequest(ctx, chatReq)
		if err != nil {
			return "", err
		}

		if content := ai.ExtractMessage(resp.Content()); content != "" {
			return content, nil
		}
	}

	return "", ai.NewProviderError(ai.ErrTypeTimedOut, "timed out after multiple requests", ProviderName)
}

// Models returns the ids of every model in the catalog, in catalog order
func (p *Provider) Models(ctx context.Context) ([]string, error) {
	endpoint := p.baseURL.JoinPath("/v1/models")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), http.NoBody)
	if err != nil {
		return nil, ai.NewProviderErrorWithCause(ai.ErrTypeCatalogUnreachable, "", ProviderName, err)
	}

	p.setHeaders(req)

	resp, err := p.doRequestWithRetry(req)
	if err != nil {
		if ai.TypeOf(err) == ai.ErrTypeUnknown {
			return nil, ai.NewProviderErrorWithCause(ai.ErrTypeCatalogUnreachable, "", ProviderName, err)
		}
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, p.handleErrorResponse(resp)
	}

	var modelResp ModelListResponse
	if err := json.NewDecoder(resp.Body).Decode(&modelResp); err != nil {
		return nil, ai.NewProviderErrorWithCause(ai.ErrTypeCatalogUnreachable, "failed to decode models response", ProviderName, err)
	}

	models := make([]string, 0, len(modelResp.Data))
	for _, model := range modelResp.Data {
		if model.ID != "" {
			models = append(models, model.ID)
		}
	}

	return models, nil
}

func (p *Provider) sendChatRequest(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	endpoint := p.baseURL.JoinPath("/v1/chat/completions")

	body, err := json.Marshal(req)
	if err != nil {
		return nil, ai.NewProviderErrorWithCause(ai.ErrTypeUnknown, "failed to marshal request", ProviderName, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, ai.NewProviderErrorWithCause(ai.ErrTypeUnknown, "failed to create request", ProviderName, err)
	}

	p.setHeaders(httpReq)

	resp, err := p.doRequestWithRetry(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, p.handleErrorResponse(resp)
	}

	var chatResp ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, ai.NewProviderErrorWithCause(ai.ErrTypeServiceUnavailable, "failed to decode response", ProviderName, err)
	}

	return &chatResp, nil
}

func (p *Provider) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey)
	if req.Method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	for key, value := range p.config.Headers {
		req.Header.Set(key, value)
	}
}

func (p *Provider) doRequestWithRetry(originalReq *http.Request) (*http.Response, error) {
	ctx := originalReq.Context()
	maxRetries := p.config.MaxRetries

	var body []byte
	if originalReq.Body != nil && originalReq.Body != http.NoBody {
		var err error
		body, err = io.ReadAll(originalReq.Body)
		if err != nil {
			return nil, ai.NewProviderErrorWithCause(ai.ErrTypeUnknown, "failed to read request body", ProviderName, err)
		}
		_ = originalReq.Body.Close()
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		var reqBody io.Reader
		if body != nil {
			reqBody = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, originalReq.Method, originalReq.URL.String(), reqBody)
		if err != nil {
			return nil, ai.NewProviderErrorWithCause(ai.ErrTypeUnknown, "failed to create retry request", ProviderName, err)
		}
		req.Header = originalReq.Header.Clone()

		resp, err := p.client.Do(req)
		if err != nil {
			if pe := ai.FromContext(err, ProviderName); pe != nil {
				return nil, pe
			}
			if isTimeout(err) {
				return nil, ai.NewProviderErrorWithCause(ai.ErrTypeTimedOut, "", ProviderName, err)
			}
			if attempt == maxRetries-1 {
				return nil, ai.NewProviderErrorWithCause(ai.ErrTypeUnknown, "request failed after retries", ProviderName, err)
			}
			if err := p.sleep(ctx, time.Duration(math.Pow(2, float64(attempt)))*p.config.RetryDelay); err != nil {
				return nil, err
			}
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			if attempt == maxRetries-1 {
				return resp, nil
			}
			_ = resp.Body.Close()

			delay := p.config.RetryDelay
			if retryHeader := resp.Header.Get("Retry-After"); retryHeader != "" {
				if seconds, err := strconv.Atoi(retryHeader); err == nil {
					delay = time.Duration(seconds) * time.Second
				}
			}

			if err := p.sleep(ctx, delay); err != nil {
				return nil, err
			}
			continue
		}

		return resp, nil
	}

	return nil, ai.NewProviderError(ai.ErrTypeUnknown, "max retries exceeded", ProviderName)
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

func (p *Provider) handleErrorResponse(resp *http.Response) error {
	pe := ai.NewStatusError(resp.StatusCode, ProviderName)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return pe
	}

	var errorResp ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return pe
	}

	if detail := strings.TrimSpace(errorResp.Error.Message); detail != "" {
		pe.Message = pe.Type.Message() + " (" + detail + ")"
	}

	return pe
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
