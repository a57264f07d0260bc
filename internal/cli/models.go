package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yildizm/randy/internal/config"
	"github.com/yildizm/randy/internal/logger"
)

// newModelsCommand creates the models command
func newModelsCommand() *cobra.Command {
	var search string

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "List the models the message service offers",
		Long: `List the ids of the models the message service offers, in catalog order.

Any of these ids can be passed to --model or picked in the game's options.`,
		Example: `  # List every model
  randy models

  # List the free models
  randy models --search :free`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewWithCallback("cli", isVerbose)
			loadDotEnv(log)

			cfg, err := resolveConfig(config.NewLoader(), cmd.Flags().Changed)
			if err != nil {
				return err
			}

			provider, err := newProvider(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = provider.Close() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), requestBudget(cfg))
			defer cancel()

			models, err := provider.Models(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch models: %w", err)
			}

			matched := filterModels(models, search)
			out := cmd.OutOrStdout()
			for _, m := range matched {
				fmt.Fprintln(out, m)
			}
			log.Info("Listed %d of %d models", len(matched), len(models))
			return nil
		},
	}

	modelsCmd.Flags().StringVarP(&search, "search", "s", "", "only list models whose id contains this text")

	return modelsCmd
}
