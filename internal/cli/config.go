package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yildizm/randy/internal/config"
	"github.com/yildizm/randy/internal/emoji"
)

const redacted = "********"

// newConfigCommand creates the config command with subcommands
func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect Randy configuration",
		Long: `Inspect Randy configuration files and settings.

The config command provides subcommands for viewing, validating and locating
configuration files.`,
	}

	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigValidateCommand())
	configCmd.AddCommand(newConfigPathCommand())

	return configCmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	var format string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long: `Display the current effective configuration after loading from all sources.

Shows the merged configuration from defaults, config files, environment
variables and flags. The API key is masked.`,
		Example: `  # Show config in YAML format
  randy config show

  # Show config in JSON format
  randy config show --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(config.NewLoader(), cmd.Flags().Changed)
			if err != nil {
				return err
			}

			out, err := renderConfig(cfg, format)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	showCmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml, json)")

	return showCmd
}

// renderConfig formats cfg with its credential masked
func renderConfig(cfg *config.Config, format string) (string, error) {
	masked := *cfg
	if masked.AI.APIKey != "" {
		masked.AI.APIKey = redacted
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(masked, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal config to JSON: %w", err)
		}
		return string(data) + "\n", nil
	case "yaml":
		data, err := yaml.Marshal(masked)
		if err != nil {
			return "", fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use json or yaml)", format)
	}
}

// newConfigValidateCommand creates the config validate subcommand
func newConfigValidateCommand() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validate the Randy configuration for syntax and semantic errors.

Checks the configuration for:
- Valid YAML syntax
- A supported provider
- Valid values for theme and color mode
- Non-negative retry counts and timeouts`,
		Example: `  # Validate current config
  randy config validate

  # Validate specific config file
  randy config validate --config /path/to/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			loader := config.NewLoader()
			cfg, err := resolveConfig(loader, cmd.Flags().Changed)
			if err != nil {
				fmt.Fprintf(out, "%s Configuration validation failed:\n", emoji.GetEmoji("error"))
				fmt.Fprintf(out, "   %v\n", err)
				return err
			}

			fmt.Fprintf(out, "%s Configuration is valid\n", emoji.GetEmoji("trophy"))
			fmt.Fprintf(out, "%s Configuration summary:\n", emoji.GetEmoji("score"))
			fmt.Fprintf(out, "   Version: %s\n", cfg.Version)
			fmt.Fprintf(out, "   AI Provider: %s\n", cfg.AI.Provider)
			fmt.Fprintf(out, "   Model: %s\n", cfg.AI.Model)
			fmt.Fprintf(out, "   API key set: %t\n", cfg.AI.APIKey != "")
			fmt.Fprintf(out, "   Theme: %s\n", cfg.UI.Theme)
			fmt.Fprintf(out, "   Files: %d loaded\n", len(loader.Sources()))

			return nil
		},
	}

	return validateCmd
}

// newConfigPathCommand creates the config path subcommand
func newConfigPathCommand() *cobra.Command {
	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Show configuration file search paths",
		Long: `Display the list of paths Randy searches for configuration files.

Shows the search order and indicates which files exist.`,
		Example: `  # Show config search paths
  randy config path`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Configuration file search paths (in priority order):")
			fmt.Fprintln(out)

			priority := []string{"Highest", "Medium", "Lowest"}
			for i, path := range config.GetConfigPaths() {
				exists := " (not found)"
				if fileExists(path) {
					exists = " (exists)"
				}

				fmt.Fprintf(out, "  %d. %s%s\n", i+1, path, exists)
				if i < len(priority) {
					fmt.Fprintf(out, "     Priority: %s\n", priority[i])
				}
				fmt.Fprintln(out)
			}

			if currentConfig, found := config.FindConfigFile(); found {
				fmt.Fprintf(out, "Current config file: %s\n", currentConfig)
			} else {
				fmt.Fprintln(out, "No config file found, using defaults")
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Environment variables with the RANDY_ prefix, OPENROUTER_API_KEY and OPENROUTER_MODEL override file settings")
		},
	}

	return pathCmd
}

// Helper function to check if file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}
