// ABOUTME: CLI command for viewing and editing tool configuration.
// ABOUTME: Covers storage backend, data directory, and the Gemini API key.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/irontrack/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long: `Show the configuration file and its effective settings.

SETTINGS:

  backend          Storage backend: charm (default), badger, or sqlite
  data_dir         Directory for local backends
  gemini_api_key   API key for AI suggestions (GEMINI_API_KEY env wins)

Examples:
  irontrack config
  irontrack config set backend sqlite
  irontrack config set gemini_api_key AIza...`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		fmt.Printf("Config file: %s\n\n", config.GetConfigPath())
		fmt.Printf("  backend:        %s\n", cfg.GetBackend())
		fmt.Printf("  data_dir:       %s\n", cfg.GetDataDir())
		if cfg.GetGeminiAPIKey() != "" {
			fmt.Printf("  gemini_api_key: %s\n", faint.Sprint("(set)"))
		} else {
			fmt.Printf("  gemini_api_key: %s\n", faint.Sprint("(not set)"))
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		switch key {
		case "backend":
			if value != "charm" && value != "badger" && value != "sqlite" {
				return fmt.Errorf("invalid backend %q (charm, badger, sqlite)", value)
			}
			cfg.Backend = value
		case "data_dir":
			cfg.DataDir = value
		case "gemini_api_key":
			cfg.GeminiAPIKey = value
		default:
			return fmt.Errorf("unknown setting %q", key)
		}

		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		color.Green("✓ Set %s", key)
		if key == "backend" || key == "data_dir" {
			fmt.Println("  Takes effect on the next run.")
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
