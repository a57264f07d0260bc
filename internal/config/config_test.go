package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", cfg.Version)
	}
	if cfg.AI.Provider != "openrouter" {
		t.Errorf("Expected AI provider openrouter, got %s", cfg.AI.Provider)
	}
	if cfg.AI.Model != "featherless/qwerky-72b:free" {
		t.Errorf("Expected default free model, got %s", cfg.AI.Model)
	}
	if cfg.AI.EmptyResponseRetries != 10 {
		t.Errorf("Expected 10 empty response retries, got %d", cfg.AI.EmptyResponseRetries)
	}
	if cfg.AI.Timeout != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %v", cfg.AI.Timeout)
	}
	if !cfg.Game.AskReplay {
		t.Error("Expected replay prompt enabled by default")
	}
	if cfg.UI.Theme != "default" {
		t.Errorf("Expected default theme, got %s", cfg.UI.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "invalid AI provider",
			mutate:  func(c *Config) { c.AI.Provider = "invalid" },
			wantErr: true,
			errMsg:  "invalid AI provider: invalid (must be one of: openrouter, ollama)",
		},
		{
			name:    "zero max retries",
			mutate:  func(c *Config) { c.AI.MaxRetries = 0 },
			wantErr: true,
			errMsg:  "max_retries must be greater than 0",
		},
		{
			name:    "negative empty response retries",
			mutate:  func(c *Config) { c.AI.EmptyResponseRetries = -1 },
			wantErr: true,
			errMsg:  "empty_response_retries must be non-negative",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.AI.Timeout = -time.Second },
			wantErr: true,
			errMsg:  "timeout must be non-negative",
		},
		{
			name:    "invalid theme",
			mutate:  func(c *Config) { c.UI.Theme = "neon" },
			wantErr: true,
			errMsg:  "invalid theme: neon (must be one of: default, high-contrast, minimal)",
		},
		{
			name:    "invalid color mode",
			mutate:  func(c *Config) { c.UI.ColorMode = "sometimes" },
			wantErr: true,
			errMsg:  "invalid color mode: sometimes (must be one of: auto, always, never)",
		},
		{
			name:    "ollama provider",
			mutate:  func(c *Config) { c.AI.Provider = "ollama" },
			wantErr: false,
		},
		{
			name:    "zero retries for empty responses",
			mutate:  func(c *Config) { c.AI.EmptyResponseRetries = 0 },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got none")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Expected error message '%s', got '%s'", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestApplyProviderDefaults(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*Config)
		wantEndpoint string
		wantModel    string
	}{
		{
			name:         "openrouter keeps its defaults",
			mutate:       func(*Config) {},
			wantEndpoint: "https://openrouter.ai/api",
			wantModel:    "featherless/qwerky-72b:free",
		},
		{
			name:         "switching provider switches defaults",
			mutate:       func(c *Config) { c.AI.Provider = "ollama" },
			wantEndpoint: "http://localhost:11434",
			wantModel:    "llama3.2",
		},
		{
			name: "explicit values survive a switch",
			mutate: func(c *Config) {
				c.AI.Provider = "ollama"
				c.AI.Endpoint = "http://gpu-box:11434"
				c.AI.Model = "mistral"
			},
			wantEndpoint: "http://gpu-box:11434",
			wantModel:    "mistral",
		},
		{
			name: "empty values are filled",
			mutate: func(c *Config) {
				c.AI.Endpoint = ""
				c.AI.Model = ""
			},
			wantEndpoint: "https://openrouter.ai/api",
			wantModel:    "featherless/qwerky-72b:free",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			cfg.applyProviderDefaults()

			if cfg.AI.Endpoint != tt.wantEndpoint {
				t.Errorf("Expected endpoint %s, got %s", tt.wantEndpoint, cfg.AI.Endpoint)
			}
			if cfg.AI.Model != tt.wantModel {
				t.Errorf("Expected model %s, got %s", tt.wantModel, cfg.AI.Model)
			}
		})
	}
}
