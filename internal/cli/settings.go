package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"

	"github.com/yildizm/randy/internal/ai"
	"github.com/yildizm/randy/internal/ai/providers/ollama"
	"github.com/yildizm/randy/internal/ai/providers/openrouter"
	"github.com/yildizm/randy/internal/config"
	"github.com/yildizm/randy/internal/emoji"
	"github.com/yildizm/randy/internal/logger"
	"github.com/yildizm/randy/internal/render"
)

var errMissingAPIKey = errors.New("an OpenRouter API key is required (use --api-key, OPENROUTER_API_KEY or ai.api_key in the config file)")

// loadDotEnv reads .env from the working directory. Variables already present in the
// environment are left alone.
func loadDotEnv(log *logger.Logger) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("Failed to load .env: %v", err)
	}
}

// resolveConfig loads the configuration files and environment, then applies the
// command line flags reported as changed.
func resolveConfig(loader *config.Loader, changed func(name string) bool) (*config.Config, error) {
	cfg, err := loader.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	applyFlags(cfg, changed)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config, changed func(name string) bool) {
	if changed("api-key") {
		cfg.AI.APIKey = apiKey
	}
	if changed("model") {
		cfg.AI.Model = modelName
	}
	if changed("theme") {
		cfg.UI.Theme = themeName
	}
	if changed("log-file") {
		cfg.Log.File = logFile
	}
	if isVerbose() {
		cfg.Log.Verbose = true
	}
	if noColor {
		cfg.UI.ColorMode = "never"
	}
	if noEmoji {
		cfg.UI.Emoji = false
	}
}

// applyPresentation pushes the ui settings into the render and emoji packages
func applyPresentation(cfg *config.Config) {
	if cfg.UI.Theme != "" {
		render.SetThemeByName(cfg.UI.Theme)
	}

	switch cfg.UI.ColorMode {
	case "never":
		render.DisableColor(true)
		lipgloss.SetColorProfile(termenv.Ascii)
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	}

	if !cfg.UI.Emoji {
		emoji.SetEmojiDisabled(true)
	}
}

// openLogOutput routes every logger to the configured file, or discards output when
// none is set, so records never land on the game screen.
func openLogOutput(cfg *config.Config) (func(), error) {
	if cfg.Log.File == "" {
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(os.Stderr) }, nil
	}

	// #nosec G304 - path comes from the user's own flags or config
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", cfg.Log.File, err)
	}
	logger.SetOutput(f)

	return func() {
		logger.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

// newProvider creates the message service described by cfg. Only OpenRouter needs
// an API key; a local Ollama server is used without one.
func newProvider(cfg *config.Config) (ai.Provider, error) {
	if cfg.AI.Provider == openrouter.ProviderName && cfg.AI.APIKey == "" {
		return nil, errMissingAPIKey
	}

	if err := openrouter.Register(); err != nil {
		return nil, fmt.Errorf("failed to register provider: %w", err)
	}
	if err := ollama.Register(); err != nil {
		return nil, fmt.Errorf("failed to register provider: %w", err)
	}

	retryDelay := openrouter.DefaultRetryDelay
	if cfg.AI.Provider == ollama.ProviderName {
		retryDelay = ollama.DefaultRetryDelay
	}

	provider, err := ai.CreateProvider(cfg.AI.Provider, &ai.ProviderConfig{
		Name:         cfg.AI.Provider,
		Type:         cfg.AI.Provider,
		APIKey:       cfg.AI.APIKey,
		BaseURL:      cfg.AI.Endpoint,
		DefaultModel: cfg.AI.Model,
		Persona:      cfg.AI.Persona,
		Timeout:      cfg.AI.Timeout,
		RetryConfig: &ai.RetryConfig{
			MaxRetries:           cfg.AI.MaxRetries,
			InitialDelay:         retryDelay,
			EmptyResponseRetries: cfg.AI.EmptyResponseRetries,
		},
	})
	if err != nil {
		if ai.IsValidationError(err) || ai.IsConfigurationError(err) {
			return nil, fmt.Errorf("invalid %s settings: %w", cfg.AI.Provider, err)
		}
		return nil, fmt.Errorf("failed to create %s provider: %w", cfg.AI.Provider, err)
	}
	return provider, nil
}

// requestBudget bounds one remote call made from the game, retries included
func requestBudget(cfg *config.Config) time.Duration {
	perAttempt := cfg.AI.Timeout
	if perAttempt <= 0 {
		perAttempt = openrouter.DefaultTimeout
	}
	return perAttempt * time.Duration(max(cfg.AI.MaxRetries, 1)+1)
}
