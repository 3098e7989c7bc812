// ABOUTME: Root Cobra command for irontrack CLI.
// ABOUTME: Opens storage, runs legacy migration, resumes the last profile.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/irontrack/internal/config"
	"github.com/harperreed/irontrack/internal/kv"
	"github.com/harperreed/irontrack/internal/store"
)

var (
	cfg       *config.Config
	backend   kv.Backend
	dataStore *kv.Store
	session   *store.Session
)

var rootCmd = &cobra.Command{
	Use:   "irontrack",
	Short: "Personal workout tracker",
	Long: `IronTrack is a CLI tool for logging workouts, organizing templates,
and tracking progress over time. Multiple local profiles share one store.

QUICK START:

  $ irontrack profile create "Alice"        # Create a profile
  $ irontrack workout start "Upper Body Power"
  $ irontrack workout set "Bench Press (Barbell)" 135 8
  $ irontrack workout finish
  $ irontrack history                       # Review past workouts
  $ irontrack progress "Bench Press (Barbell)"

PROFILES:

  Data is namespaced per profile. The last used profile is resumed
  automatically; switch with 'irontrack profile switch <name>'.

TEMPLATES:

  Templates are reusable exercise lists that seed new workouts:

  $ irontrack template
  $ irontrack template create "Leg Day" "Squat (Barbell)" "Leg Press Machine"
  $ irontrack workout start "Leg Day"

AI SUGGESTIONS (OPTIONAL):

  With GEMINI_API_KEY set, irontrack can classify exercises and suggest
  workouts:

  $ irontrack exercises info "Nordic Curl" --save
  $ irontrack suggest workout --goals "hypertrophy" --duration "45 min"

DATA STORAGE:

  The default backend is Charm KV (E2E encrypted, synced via Charm Cloud).
  Local-only Badger and SQLite backends can be selected in
  ~/.config/irontrack/config.json. Keys are namespaced per profile.

MCP INTEGRATION:

  Run 'irontrack mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		backend, err = cfg.OpenBackend()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		dataStore = kv.NewStore(backend)
		session = store.NewSession(dataStore)

		// One-time migration of pre-profile data; logs the new user in.
		if sum := store.MigrateLegacy(dataStore); sum != nil {
			color.Green("✓ Migrated existing data to profile %q (%d workouts, %d templates)",
				sum.Name, sum.Workouts, sum.Templates)
			return session.Login(sum.UserID)
		}

		// Resume the last logged-in profile.
		if id := session.Directory().LastUserID(); id != "" {
			if err := session.Login(id); err != nil {
				color.Yellow("⚠ Could not resume last profile: %v", err)
			}
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if dataStore != nil {
			return dataStore.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// requireUser fails commands that need a logged-in profile.
func requireUser() error {
	if session == nil || !session.LoggedIn() {
		return fmt.Errorf("no active profile; run 'irontrack profile create <name>' or 'irontrack profile switch <name>'")
	}
	return nil
}
