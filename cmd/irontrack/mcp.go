// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/irontrack/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout and operates on the
current profile.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "irontrack": {
        "command": "irontrack",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  start_workout        Start a workout, optionally from a template
  log_set              Log a completed set for an exercise
  get_active_workout   Get the in-progress workout
  finish_workout       Complete the workout and move it to history
  cancel_workout       Discard the in-progress workout
  list_history         List recent finished workouts
  list_templates       List workout templates
  save_template        Create a template from catalog exercise names
  list_exercises       List the exercise catalog
  add_custom_exercise  Add or update a custom exercise

AVAILABLE RESOURCES:

  irontrack://active           The in-progress workout
  irontrack://history/recent   Recent finished workouts
  irontrack://templates        Workout templates`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		server, err := mcp.NewServer(session)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
