package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/yildizm/randy/internal/ai"
	"github.com/yildizm/randy/internal/game"
)

const testAPIKey = "test-api-key"

func testConfig(baseURL string) *Config {
	return &Config{
		APIKey:               testAPIKey,
		BaseURL:              baseURL,
		DefaultModel:         DefaultModel,
		Persona:              ai.DefaultPersona,
		Timeout:              5 * time.Second,
		MaxRetries:           1,
		EmptyResponseRetries: DefaultEmptyResponseRetries,
	}
}

func newTestProvider(t *testing.T, handler http.HandlerFunc) (*Provider, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	provider, err := New(testConfig(server.URL))
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}
	t.Cleanup(func() { _ = provider.Close() })

	return provider, server
}

func writeCompletion(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ChatCompletionResponse{
		ID:      "gen-test",
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   DefaultModel,
		Choices: []ChatCompletionChoice{
			{FinishReason: "stop", Message: ChatMessage{Role: "assistant", Content: content}},
		},
	})
}

func TestProvider_New(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "nil config uses defaults",
			config:  nil,
			wantErr: true, // no API key
		},
		{
			name:    "valid config",
			config:  testConfig(DefaultBaseURL),
			wantErr: false,
		},
		{
			name: "invalid base URL",
			config: func() *Config {
				c := testConfig("http://[::1]:namedport")
				return c
			}(),
			wantErr: true,
		},
		{
			name: "zero attempts",
			config: func() *Config {
				c := testConfig(DefaultBaseURL)
				c.MaxRetries = 0
				return c
			}(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := New(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && provider == nil {
				t.Error("New() returned nil provider without error")
			}
		})
	}
}

func TestProvider_Message(t *testing.T) {
	provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("Expected /v1/chat/completions, got %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer "+testAPIKey {
			t.Errorf("Expected Bearer %s, got %s", testAPIKey, auth)
		}

		var req ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		if req.Model != "meta/llama:free" {
			t.Errorf("Expected requested model, got %s", req.Model)
		}
		if len(req.Messages) != 2 {
			t.Fatalf("Expected system and user messages, got %d", len(req.Messages))
		}
		if req.Messages[0].Role != "system" || req.Messages[0].Content != ai.DefaultPersona {
			t.Errorf("Expected persona system message, got %+v", req.Messages[0])
		}
		if req.Messages[1].Role != "user" || req.Messages[1].Content != game.Correct.String() {
			t.Errorf("Expected outcome user message, got %+v", req.Messages[1])
		}

		writeCompletion(w, "Yeehaw! You got it, partner.")
	})

	msg, err := provider.Message(context.Background(), game.Correct, "meta/llama:free")
	if err != nil {
		t.Fatalf("Message failed: %v", err)
	}
	if msg != "Yeehaw! You got it, partner." {
		t.Errorf("Unexpected message: %q", msg)
	}
}

func TestProvider_MessageCustomPersona(t *testing.T) {
	persona := "Answer like a cowboy, 100% of the time."

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		if len(req.Messages) != 2 {
			t.Fatalf("Expected system and user messages, got %d", len(req.Messages))
		}
		if req.Messages[0].Content != persona {
			t.Errorf("Expected system message %q, got %q", persona, req.Messages[0].Content)
		}
		if req.Messages[1].Content != "Incorrect" {
			t.Errorf("Expected user message %q, got %q", "Incorrect", req.Messages[1].Content)
		}

		writeCompletion(w, "Shucks.")
	}))
	defer server.Close()

	config := testConfig(server.URL)
	config.Persona = persona
	provider, err := New(config)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}
	defer func() { _ = provider.Close() }()

	if _, err := provider.Message(context.Background(), game.Incorrect, ""); err != nil {
		t.Fatalf("Message failed: %v", err)
	}
}

func TestProvider_MessageDefaultModel(t *testing.T) {
	provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		var req ChatCompletionRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Model != DefaultModel {
			t.Errorf("Expected default model, got %s", req.Model)
		}
		writeCompletion(w, "Shucks.")
	})

	if _, err := provider.Message(context.Background(), game.Incorrect, ""); err != nil {
		t.Fatalf("Message failed: %v", err)
	}
}

func TestProvider_EmptyResponseRetried(t *testing.T) {
	var calls atomic.Int32
	provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 4 {
			writeCompletion(w, "")
			return
		}
		writeCompletion(w, "Finally awake, partner.")
	})

	msg, err := provider.Message(context.Background(), game.Incorrect, "")
	if err != nil {
		t.Fatalf("Message failed: %v", err)
	}
	if msg != "Finally awake, partner." {
		t.Errorf("Unexpected message: %q", msg)
	}
	if calls.Load() != 4 {
		t.Errorf("Expected 4 requests, got %d", calls.Load())
	}
}

func TestProvider_EmptyResponseGivesUp(t *testing.T) {
	var calls atomic.Int32
	provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeCompletion(w, "   ")
	})

	_, err := provider.Message(context.Background(), game.Correct, "")
	if ai.TypeOf(err) != ai.ErrTypeTimedOut {
		t.Errorf("Expected timed_out, got %v", err)
	}
	if want := int32(DefaultEmptyResponseRetries + 1); calls.Load() != want {
		t.Errorf("Expected %d requests, got %d", want, calls.Load())
	}
}

func TestProvider_StatusClassification(t *testing.T) {
	tests := []struct {
		status   int
		expected ai.ErrorType
	}{
		{http.StatusBadRequest, ai.ErrTypeBadRequest},
		{http.StatusUnauthorized, ai.ErrTypeInvalidCredentials},
		{http.StatusPaymentRequired, ai.ErrTypeInsufficientCredits},
		{http.StatusForbidden, ai.ErrTypeFlaggedInput},
		{http.StatusRequestTimeout, ai.ErrTypeTimedOut},
		{http.StatusTooManyRequests, ai.ErrTypeRateLimited},
		{http.StatusBadGateway, ai.ErrTypeServiceUnavailable},
		{http.StatusServiceUnavailable, ai.ErrTypeNoProviders},
		{http.StatusInternalServerError, ai.ErrTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":{"message":"nope","code":` + fmt.Sprint(tt.status) + `}}`))
			})

			_, err := provider.Message(context.Background(), game.Correct, "")
			if err == nil {
				t.Fatal("Expected an error")
			}
			if ai.TypeOf(err) != tt.expected {
				t.Errorf("Expected %s, got %s (%v)", tt.expected, ai.TypeOf(err), err)
			}
			if !strings.Contains(err.Error(), "nope") {
				t.Errorf("Expected server detail in error, got %q", err.Error())
			}
		})
	}
}

func TestProvider_RateLimitRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		writeCompletion(w, "Patience pays off.")
	}))
	defer server.Close()

	config := testConfig(server.URL)
	config.MaxRetries = 3
	provider, err := New(config)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	msg, err := provider.Message(context.Background(), game.Correct, "")
	if err != nil {
		t.Fatalf("Message failed: %v", err)
	}
	if msg != "Patience pays off." || calls.Load() != 2 {
		t.Errorf("Expected success on second attempt, got %q after %d calls", msg, calls.Load())
	}
}

func TestProvider_ContextDeadline(t *testing.T) {
	provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := provider.Message(ctx, game.Correct, "")
	if ai.TypeOf(err) != ai.ErrTypeTimedOut {
		t.Errorf("Expected timed_out, got %v", err)
	}
}

func TestProvider_Models(t *testing.T) {
	provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v1/models" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"data":[
			{"id":"featherless/qwerky-72b:free","name":"Qwerky"},
			{"id":"meta/llama:free"},
			{"id":""},
			{"id":"openai/gpt-4o"}
		]}`))
	})

	models, err := provider.Models(context.Background())
	if err != nil {
		t.Fatalf("Models failed: %v", err)
	}

	expected := []string{"featherless/qwerky-72b:free", "meta/llama:free", "openai/gpt-4o"}
	if len(models) != len(expected) {
		t.Fatalf("Expected %d models, got %d", len(expected), len(models))
	}
	for i := range expected {
		if models[i] != expected[i] {
			t.Errorf("Expected model %d to be %s, got %s", i, expected[i], models[i])
		}
	}
}

func TestProvider_ModelsFailures(t *testing.T) {
	t.Run("bad json", func(t *testing.T) {
		provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		})
		_, err := provider.Models(context.Background())
		if ai.TypeOf(err) != ai.ErrTypeCatalogUnreachable {
			t.Errorf("Expected catalog_unreachable, got %v", err)
		}
	})

	t.Run("status", func(t *testing.T) {
		provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		_, err := provider.Models(context.Background())
		if ai.TypeOf(err) != ai.ErrTypeInvalidCredentials {
			t.Errorf("Expected invalid_credentials, got %v", err)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		provider, err := New(testConfig(url))
		if err != nil {
			t.Fatalf("Failed to create provider: %v", err)
		}
		_, err = provider.Models(context.Background())
		if ai.TypeOf(err) != ai.ErrTypeCatalogUnreachable {
			t.Errorf("Expected catalog_unreachable, got %v", err)
		}
	})
}

func TestFactory(t *testing.T) {
	if err := Register(); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := Register(); err != nil {
		t.Errorf("Expected repeated Register to be a no-op, got %v", err)
	}

	if _, err := ai.CreateProvider(ProviderName, &ai.ProviderConfig{}); !ai.IsConfigurationError(err) {
		t.Errorf("Expected missing api key to be a configuration error, got %v", err)
	}

	p, err := ai.CreateProvider(ProviderName, &ai.ProviderConfig{APIKey: testAPIKey, DefaultModel: "meta/llama:free"})
	if err != nil {
		t.Fatalf("CreateProvider failed: %v", err)
	}
	op := p.(*Provider)
	if op.config.DefaultModel != "meta/llama:free" {
		t.Errorf("Expected override model, got %s", op.config.DefaultModel)
	}
	if op.config.EmptyResponseRetries != DefaultEmptyResponseRetries {
		t.Errorf("Expected default empty response retries, got %d", op.config.EmptyResponseRetries)
	}
	if op.config.BaseURL != DefaultBaseURL {
		t.Errorf("Expected default base URL, got %s", op.config.BaseURL)
	}
}
