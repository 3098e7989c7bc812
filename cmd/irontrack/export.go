// ABOUTME: CLI commands for data export and import.
// ABOUTME: JSON round-trips a profile's data; YAML is a readable report.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:       "export [json|yaml]",
	Short:     "Export the current profile's data",
	ValidArgs: []string{"json", "yaml"},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	Long: `Export the current profile's data. JSON exports can be re-imported
with 'irontrack import'; YAML is a human-readable report.

Examples:
  irontrack export                      # JSON to stdout
  irontrack export -o backup.json
  irontrack export yaml -o workouts.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		format := "json"
		if len(args) == 1 {
			format = args[0]
		}

		var data []byte
		var err error
		if format == "yaml" {
			data, err = session.ExportYAML()
		} else {
			data, err = session.ExportData()
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data into the current profile",
	Long: `Import a JSON export into the current profile, replacing the fields
the file contains. Invalid files are rejected before anything is written.

Example:
  irontrack import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		if err := session.ImportData(data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %s", args[0])
		fmt.Printf("  %d workout(s), %d template(s)\n",
			len(session.Workouts()), len(session.Templates()))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
