package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yildizm/randy/internal/emoji"
	"github.com/yildizm/randy/internal/render"
)

var (
	cfgFile   string
	apiKey    string
	modelName string
	themeName string
	logFile   string
	verbose   bool
	noColor   bool
	noEmoji   bool

	summaryFormat string
)

// NewRootCommand creates the root command. Running it without a subcommand starts
// the game.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "randy",
		Short: "Guess the number, hear what the cowboy thinks",
		Long: `Randy is a terminal number-guessing game.

Pick a range like 1..10 and a guess. Randy draws a number from the range and
asks a language model on OpenRouter to congratulate or console you.

An OpenRouter API key is required, either with --api-key, the
OPENROUTER_API_KEY environment variable, a .env file or the config file.
Set ai.provider (or RANDY_AI_PROVIDER) to ollama to use a local Ollama
server instead; no key is needed then.`,
		Example: `  # Play with the default model
  randy --api-key sk-or-...

  # Play with a specific model
  randy --model mistralai/mistral-7b-instruct:free

  # List the models whose name contains "llama"
  randy models --search llama

  # Print the session as JSON when leaving
  randy --summary json`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}
			emoji.SetEmojiDisabled(noEmoji)
			render.DisableColor(noColor)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "OpenRouter API key")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file while the game runs")

	// Game flags
	rootCmd.Flags().StringVarP(&modelName, "model", "m", "", "model used for the end-of-round message")
	rootCmd.Flags().StringVarP(&themeName, "theme", "t", "", "color theme ("+strings.Join(render.GetAvailableThemes(), ", ")+")")
	rootCmd.Flags().StringVar(&summaryFormat, "summary", "text", "session summary printed on exit (text, json, markdown, csv, none)")

	// Add subcommands
	rootCmd.AddCommand(newModelsCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Randy %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// Global helpers
func isVerbose() bool {
	return verbose
}
