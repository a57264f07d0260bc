package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/yildizm/randy/internal/config"
	"github.com/yildizm/randy/internal/logger"
	"github.com/yildizm/randy/internal/ui"
)

// runGame resolves the settings, connects to the message service and runs the game
// until the player leaves. A score summary is printed once the terminal is restored.
func runGame(cmd *cobra.Command) error {
	ctx := cmd.Context()
	log := logger.NewWithCallback("cli", isVerbose)

	loadDotEnv(log)

	loader := config.NewLoader()
	cfg, err := resolveConfig(loader, cmd.Flags().Changed)
	if err != nil {
		return err
	}
	applyPresentation(cfg)

	report, err := getFormatter(summaryFormat)
	if err != nil {
		return err
	}

	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = provider.Close() }()

	if cmd.Flags().Changed("model") {
		verifyCtx, cancel := context.WithTimeout(ctx, requestBudget(cfg))
		err := verifyModel(verifyCtx, provider, cfg.AI.Model)
		cancel()
		if err != nil {
			return err
		}
	}

	restoreLog, err := openLogOutput(cfg)
	if err != nil {
		return err
	}
	defer restoreLog()

	verboseFn := func() bool { return cfg.Log.Verbose }
	log = logger.NewWithCallback("cli", verboseFn)
	log.InfoWithFields("Starting game", []logger.Field{
		logger.F("model", cfg.AI.Model),
		logger.F("sources", loader.Sources()),
	})

	app := ui.NewApp(ui.Options{
		Messenger:      provider,
		Catalog:        provider,
		Model:          cfg.AI.Model,
		AskReplay:      cfg.Game.AskReplay,
		RequestTimeout: requestBudget(cfg),
		Logger:         logger.NewWithCallback("ui", verboseFn),
	})

	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	if cfg.UI.AutoReload {
		stop := watchTheme(ctx, loader, program, log)
		defer stop()
	}

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("game terminated: %w", err)
	}

	if finished, ok := final.(*ui.App); ok {
		return writeSummary(cmd.OutOrStdout(), report, finished.Session(), cfg.AI.Provider, finished.Model())
	}
	return nil
}

// watchTheme reloads the config file on change and forwards its theme to the game.
// The returned function stops watching.
func watchTheme(ctx context.Context, loader *config.Loader, program *tea.Program, log *logger.Logger) func() {
	path := cfgFile
	if path == "" {
		sources := loader.Sources()
		if len(sources) == 0 {
			log.Debug("No config file to watch")
			return func() {}
		}
		path = sources[len(sources)-1]
	}

	watcher, err := config.NewWatcher(loader, path)
	if err != nil {
		log.Warn("Config auto reload disabled: %v", err)
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		onChange := func(cfg *config.Config) {
			if cfg.UI.Theme != "" {
				program.Send(ui.ThemeMsg{Theme: cfg.UI.Theme})
			}
		}
		onError := func(err error) {
			log.WarnWithFields("Config reload failed", []logger.Field{logger.Error(err)})
		}
		if err := watcher.Run(ctx, onChange, onError); err != nil {
			log.Error("Config watcher stopped: %v", err)
		}
	}()

	log.Info("Watching %s for theme changes", watcher.Path())
	return cancel
}
