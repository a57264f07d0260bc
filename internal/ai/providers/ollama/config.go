package ollama

import (
	"time"

	"github.com/yildizm/randy/internal/ai"
)

const (
	ProviderName = "ollama"

	DefaultBaseURL              = "http://localhost:11434"
	DefaultModel                = "llama3.2"
	DefaultTimeout              = 60 * time.Second
	DefaultRetryAttempts        = 3
	DefaultRetryDelay           = 1 * time.Second
	DefaultEmptyResponseRetries = 3
	DefaultTemperature          = 0.8
)

// Config holds Ollama-specific configuration
type Config struct {
	// BaseURL is the Ollama API endpoint
	BaseURL string `json:"base_url"`

	// DefaultModel is used when a request names no model
	DefaultModel string `json:"default_model"`

	// Persona is the system prompt of every message
	Persona string `json:"persona"`

	// Timeout for HTTP requests. Local models can be slow to load.
	Timeout time.Duration `json:"timeout"`

	// RetryAttempts for requests that never reached the server
	RetryAttempts int `json:"retry_attempts"`

	// RetryDelay between retry attempts
	RetryDelay time.Duration `json:"retry_delay"`

	// EmptyResponseRetries bounds how often an empty generation is re-requested
	EmptyResponseRetries int `json:"empty_response_retries"`

	// Temperature for generation
	Temperature float64 `json:"temperature"`
}

// DefaultConfig returns a default Ollama configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:              DefaultBaseURL,
		DefaultModel:         DefaultModel,
		Persona:              ai.DefaultPersona,
		Timeout:              DefaultTimeout,
		RetryAttempts:        DefaultRetryAttempts,
		RetryDelay:           DefaultRetryDelay,
		EmptyResponseRetries: DefaultEmptyResponseRetries,
		Temperature:          DefaultTemperature,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ai.NewConfigurationError(ProviderName, "base_url", "base URL is required")
	}

	if c.DefaultModel == "" {
		return ai.NewConfigurationError(ProviderName, "default_model", "default model is required")
	}

	if c.Timeout <= 0 {
		return ai.NewConfigurationError(ProviderName, "timeout", "timeout must be positive")
	}

	if c.RetryAttempts < 1 {
		return ai.NewConfigurationError(ProviderName, "retry_attempts", "at least one attempt is required")
	}

	if c.EmptyResponseRetries < 0 {
		return ai.NewConfigurationError(ProviderName, "empty_response_retries", "empty response retries cannot be negative")
	}

	if c.Temperature < 0 || c.Temperature > 2 {
		return ai.NewConfigurationError(ProviderName, "temperature", "temperature must be between 0 and 2")
	}

	return nil
}

// ToProviderConfig converts Ollama config to generic provider config
func (c *Config) ToProviderConfig() *ai.ProviderConfig {
	return &ai.ProviderConfig{
		Name:         ProviderName,
		Type:         ProviderName,
		BaseURL:      c.BaseURL,
		DefaultModel: c.DefaultModel,
		Persona:      c.Persona,
		Timeout:      c.Timeout,
		RetryConfig: &ai.RetryConfig{
			MaxRetries:           c.RetryAttempts,
			InitialDelay:         c.RetryDelay,
			EmptyResponseRetries: c.EmptyResponseRetries,
		},
	}
}

// FromProviderConfig creates Ollama config from generic provider config
func FromProviderConfig(pc *ai.ProviderConfig) *Config {
	config := DefaultConfig()
	if pc == nil {
		return config
	}

	if pc.BaseURL != "" {
		config.BaseURL = pc.BaseURL
	}

	if pc.DefaultModel != "" {
		config.DefaultModel = pc.DefaultModel
	}

	if pc.Persona != "" {
		config.Persona = pc.Persona
	}

	if pc.Timeout > 0 {
		config.Timeout = pc.Timeout
	}

	if rc := pc.RetryConfig; rc != nil {
		if rc.MaxRetries > 0 {
			config.RetryAttempts = rc.MaxRetries
		}
		if rc.InitialDelay > 0 {
			config.RetryDelay = rc.InitialDelay
		}
		config.EmptyResponseRetries = rc.EmptyResponseRetries
	}

	return config
}
