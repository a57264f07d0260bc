package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.randy.yaml",               // Project-specific config (highest priority)
	"~/.config/randy/config.yaml", // User config
	"/etc/randy/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	sources     []string
	warn        func(format string, args ...any)
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return NewLoaderWithPaths(ConfigPaths)
}

// NewLoaderWithPaths creates a loader that searches the given paths instead of ConfigPaths
func NewLoaderWithPaths(paths []string) *Loader {
	return &Loader{
		configPaths: paths,
		warn: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
		},
	}
}

// Sources returns the files that contributed to the last LoadConfig call, lowest priority first
func (l *Loader) Sources() []string {
	return append([]string(nil), l.sources...)
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables (RANDY_* over OPENROUTER_*)
// 3. ./.randy.yaml
// 4. ~/.config/randy/config.yaml
// 5. /etc/randy/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()
	l.sources = nil

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// lowest priority first so later files win
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if !fileExists(expandedPath) {
				continue
			}
			if err := l.loadFromFile(config, expandedPath); err != nil {
				l.warn("failed to load config from %s: %v", expandedPath, err)
			}
		}
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	config.applyProviderDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile decodes a YAML file on top of config. Keys absent from the file keep
// their current value, so explicit false booleans are honored.
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated or comes from the fixed search list
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	merged := *config
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	*config = merged
	l.sources = append(l.sources, path)
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	// the service's own variables are the weakest override
	if v := os.Getenv("OPENROUTER_API_KEY"); v != "" {
		config.AI.APIKey = v
	}
	if v := os.Getenv("OPENROUTER_MODEL"); v != "" {
		config.AI.Model = v
	}

	envMappings := map[string]func(string) error{
		// AI Config
		"RANDY_AI_PROVIDER":               func(v string) error { config.AI.Provider = v; return nil },
		"RANDY_AI_MODEL":                  func(v string) error { config.AI.Model = v; return nil },
		"RANDY_AI_ENDPOINT":               func(v string) error { config.AI.Endpoint = v; return nil },
		"RANDY_AI_API_KEY":                func(v string) error { config.AI.APIKey = v; return nil },
		"RANDY_AI_TIMEOUT":                func(v string) error { return parseDuration(v, &config.AI.Timeout) },
		"RANDY_AI_MAX_RETRIES":            func(v string) error { return parseInt(v, &config.AI.MaxRetries) },
		"RANDY_AI_EMPTY_RESPONSE_RETRIES": func(v string) error { return parseInt(v, &config.AI.EmptyResponseRetries) },
		"RANDY_AI_PERSONA":                func(v string) error { config.AI.Persona = v; return nil },

		// Game Config
		"RANDY_GAME_ASK_REPLAY": func(v string) error { return parseBool(v, &config.Game.AskReplay) },

		// UI Config
		"RANDY_UI_THEME":       func(v string) error { config.UI.Theme = v; return nil },
		"RANDY_UI_COLOR_MODE":  func(v string) error { config.UI.ColorMode = v; return nil },
		"RANDY_UI_EMOJI":       func(v string) error { return parseBool(v, &config.UI.Emoji) },
		"RANDY_UI_AUTO_RELOAD": func(v string) error { return parseBool(v, &config.UI.AutoReload) },

		// Log Config
		"RANDY_LOG_FILE":    func(v string) error { config.Log.File = v; return nil },
		"RANDY_LOG_VERBOSE": func(v string) error { return parseBool(v, &config.Log.Verbose) },
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// Helper functions

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/proc/") || strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Type conversion helpers

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseDuration(s string, dst *time.Duration) error {
	val, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
