package openrouter

import (
	"fmt"
	"net/url"
	"time"

	"github.com/yildizm/randy/internal/ai"
)

const (
	ProviderName                = "openrouter"
	DefaultBaseURL              = "https://openrouter.ai/api"
	DefaultModel                = "featherless/qwerky-72b:free"
	DefaultTimeout              = 30 * time.Second
	DefaultMaxRetries           = 3
	DefaultRetryDelay           = time.Second
	DefaultEmptyResponseRetries = 10
)

type Config struct {
	APIKey               string            `json:"api_key"`
	BaseURL              string            `json:"base_url"`
	DefaultModel         string            `json:"default_model"`
	Persona              string            `json:"persona,omitempty"`
	Timeout              time.Duration     `json:"timeout"`
	MaxRetries           int               `json:"max_retries"`
	RetryDelay           time.Duration     `json:"retry_delay"`
	EmptyResponseRetries int               `json:"empty_response_retries"`
	Headers              map[string]string `json:"headers,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:              DefaultBaseURL,
		DefaultModel:         DefaultModel,
		Persona:              ai.DefaultPersona,
		Timeout:              DefaultTimeout,
		MaxRetries:           DefaultMaxRetries,
		RetryDelay:           DefaultRetryDelay,
		EmptyResponseRetries: DefaultEmptyResponseRetries,
	}
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ai.NewConfigurationError(ProviderName, "api_key", "API key is required")
	}

	if c.BaseURL == "" {
		return ai.NewConfigurationError(ProviderName, "base_url", "base URL is required")
	}

	if _, err := url.Parse(c.BaseURL); err != nil {
		return ai.NewConfigurationError(ProviderName, "base_url", fmt.Sprintf("invalid base URL: %v", err))
	}

	if c.DefaultModel == "" {
		return ai.NewConfigurationError(ProviderName, "default_model", "default model is required")
	}

	if c.Timeout <= 0 {
		return ai.NewConfigurationError(ProviderName, "timeout", "timeout must be positive")
	}

	if c.MaxRetries < 1 {
		return ai.NewConfigurationError(ProviderName, "max_retries", "at least one attempt is required")
	}

	if c.RetryDelay < 0 {
		return ai.NewConfigurationError(ProviderName, "retry_delay", "retry delay cannot be negative")
	}

	if c.EmptyResponseRetries < 0 {
		return ai.NewConfigurationError(ProviderName, "empty_response_retries", "empty response retries cannot be negative")
	}

	return nil
}

func (c *Config) ToProviderConfig() *ai.ProviderConfig {
	return &ai.ProviderConfig{
		Name:         ProviderName,
		Type:         ProviderName,
		APIKey:       c.APIKey,
		BaseURL:      c.BaseURL,
		DefaultModel: c.DefaultModel,
		Persona:      c.Persona,
		Timeout:      c.Timeout,
		RetryConfig: &ai.RetryConfig{
			MaxRetries:           c.MaxRetries,
			InitialDelay:         c.RetryDelay,
			EmptyResponseRetries: c.EmptyResponseRetries,
		},
		Headers: c.Headers,
	}
}

func FromProviderConfig(config *ai.ProviderConfig) *Config {
	if config == nil {
		return DefaultConfig()
	}

	c := &Config{
		APIKey:       config.APIKey,
		BaseURL:      config.BaseURL,
		DefaultModel: config.DefaultModel,
		Persona:      config.Persona,
		Timeout:      config.Timeout,
		Headers:      config.Headers,
	}

	if rc := config.RetryConfig; rc != nil {
		c.MaxRetries = rc.MaxRetries
		c.RetryDelay = rc.InitialDelay
		c.EmptyResponseRetries = rc.EmptyResponseRetries
	} else {
		c.RetryDelay = DefaultRetryDelay
		c.EmptyResponseRetries = DefaultEmptyResponseRetries
	}

	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.DefaultModel == "" {
		c.DefaultModel = DefaultModel
	}
	if c.Persona == "" {
		c.Persona = ai.DefaultPersona
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = DefaultMaxRetries
	}

	return c
}
