package ai

import (
	"time"
)

// ProviderConfig contains configuration for a provider
type ProviderConfig struct {
	// Name is the provider identifier
	Name string `json:"name"`

	// Type is the provider type (openrouter)
	Type string `json:"type"`

	// APIKey for authentication
	APIKey string `json:"api_key,omitempty"`

	// BaseURL for the API endpoint
	BaseURL string `json:"base_url,omitempty"`

	// DefaultModel is used when a request names no model
	DefaultModel string `json:"default_model,omitempty"`

	// Persona is the system prompt that sets the tone of every message
	Persona string `json:"persona,omitempty"`

	// Timeout for requests
	Timeout time.Duration `json:"timeout,omitempty"`

	// RetryConfig for handling failures
	RetryConfig *RetryConfig `json:"retry_config,omitempty"`

	// Custom headers for requests
	Headers map[string]string `json:"headers,omitempty"`
}

// RetryConfig defines retry behavior
type RetryConfig struct {
	// MaxRetries is the maximum number of transport attempts
	MaxRetries int `json:"max_retries"`

	// InitialDelay is the initial delay between retries
	InitialDelay time.Duration `json:"initial_delay"`

	// EmptyResponseRetries bounds how often an empty completion is re-requested
	EmptyResponseRetries int `json:"empty_response_retries"`
}

// validateProviderConfig checks the fields every provider relies on
func validateProviderConfig(config *ProviderConfig) error {
	if config.Name == "" {
		return NewValidationError("name", "", "provider name is required")
	}
	if config.Type == "" {
		return NewValidationError("type", "", "provider type is required")
	}
	if config.Timeout < 0 {
		return NewValidationError("timeout", config.Timeout.String(), "timeout cannot be negative")
	}
	if rc := config.RetryConfig; rc != nil {
		if rc.MaxRetries < 0 {
			return NewValidationError("max_retries", "", "max retries cannot be negative")
		}
		if rc.EmptyResponseRetries < 0 {
			return NewValidationError("empty_response_retries", "", "empty response retries cannot be negative")
		}
	}
	return nil
}
