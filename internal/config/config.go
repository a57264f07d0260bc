package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/yildizm/randy/internal/render"
)

// Config holds the complete application configuration
type Config struct {
	Version string     `yaml:"version" json:"version"`
	AI      AIConfig   `yaml:"ai" json:"ai"`
	Game    GameConfig `yaml:"game" json:"game"`
	UI      UIConfig   `yaml:"ui" json:"ui"`
	Log     LogConfig  `yaml:"log" json:"log"`
}

// AIConfig configures the remote message service
type AIConfig struct {
	Provider             string        `yaml:"provider" json:"provider"`                             // openrouter|ollama
	Model                string        `yaml:"model" json:"model"`                                   // starting model id
	Endpoint             string        `yaml:"endpoint" json:"endpoint"`                             // API base URL
	APIKey               string        `yaml:"api_key" json:"api_key"`                               // bearer credential
	Timeout              time.Duration `yaml:"timeout" json:"timeout"`                               // per request
	MaxRetries           int           `yaml:"max_retries" json:"max_retries"`                       // transport attempts
	EmptyResponseRetries int           `yaml:"empty_response_retries" json:"empty_response_retries"` // re-asks on empty completions
	Persona              string        `yaml:"persona" json:"persona"`                               // system prompt
}

// GameConfig configures the round flow
type GameConfig struct {
	AskReplay bool `yaml:"ask_replay" json:"ask_replay"` // show "Play another round?" after a result
}

// UIConfig configures the terminal presentation
type UIConfig struct {
	Theme      string `yaml:"theme" json:"theme"`             // default|high-contrast|minimal
	ColorMode  string `yaml:"color_mode" json:"color_mode"`   // auto|always|never
	Emoji      bool   `yaml:"emoji" json:"emoji"`             // decorate screens with emoji
	AutoReload bool   `yaml:"auto_reload" json:"auto_reload"` // watch the config file for theme changes
}

// LogConfig configures diagnostics
type LogConfig struct {
	File    string `yaml:"file" json:"file"`       // empty discards logs while the game runs
	Verbose bool   `yaml:"verbose" json:"verbose"` // include debug and info records
}

// ProviderDefault is the endpoint and starting model used with a provider
type ProviderDefault struct {
	Endpoint string
	Model    string
}

// ProviderDefaults lists the supported providers
var ProviderDefaults = map[string]ProviderDefault{
	"openrouter": {Endpoint: "https://openrouter.ai/api", Model: "featherless/qwerky-72b:free"},
	"ollama":     {Endpoint: "http://localhost:11434", Model: "llama3.2"},
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		AI: AIConfig{
			Provider:             "openrouter",
			Model:                ProviderDefaults["openrouter"].Model,
			Endpoint:             ProviderDefaults["openrouter"].Endpoint,
			APIKey:               "",
			Timeout:              30 * time.Second,
			MaxRetries:           3,
			EmptyResponseRetries: 10,
		},
		Game: GameConfig{
			AskReplay: true,
		},
		UI: UIConfig{
			Theme:      "default",
			ColorMode:  "auto",
			Emoji:      true,
			AutoReload: false,
		},
		Log: LogConfig{
			File:    "",
			Verbose: false,
		},
	}
}

// applyProviderDefaults fills an empty endpoint or model with the selected provider's
// defaults. Values still at another provider's defaults are replaced too, so setting
// only the provider is enough to switch.
func (c *Config) applyProviderDefaults() {
	own, ok := ProviderDefaults[c.AI.Provider]
	if !ok {
		return
	}

	for name, other := range ProviderDefaults {
		if name == c.AI.Provider {
			continue
		}
		if c.AI.Endpoint == other.Endpoint {
			c.AI.Endpoint = ""
		}
		if c.AI.Model == other.Model {
			c.AI.Model = ""
		}
	}

	if c.AI.Endpoint == "" {
		c.AI.Endpoint = own.Endpoint
	}
	if c.AI.Model == "" {
		c.AI.Model = own.Model
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateAIConfig(); err != nil {
		return err
	}
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	return nil
}

// validateAIConfig validates AI-related configuration
func (c *Config) validateAIConfig() error {
	if c.AI.Provider != "" {
		if _, ok := ProviderDefaults[c.AI.Provider]; !ok {
			return fmt.Errorf("invalid AI provider: %s (must be one of: openrouter, ollama)", c.AI.Provider)
		}
	}
	if c.AI.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	if c.AI.MaxRetries < 1 {
		return fmt.Errorf("max_retries must be greater than 0")
	}
	if c.AI.EmptyResponseRetries < 0 {
		return fmt.Errorf("empty_response_retries must be non-negative")
	}
	return nil
}

// validateUIConfig validates presentation-related configuration
func (c *Config) validateUIConfig() error {
	if c.UI.Theme != "" {
		themes := render.GetAvailableThemes()
		if !slices.Contains(themes, c.UI.Theme) {
			return fmt.Errorf("invalid theme: %s (must be one of: %s)", c.UI.Theme, strings.Join(themes, ", "))
		}
	}
	if c.UI.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.UI.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.UI.ColorMode)
		}
	}
	return nil
}
