// ABOUTME: CLI command printing the irontrack version.
// ABOUTME: Runs without touching storage.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the irontrack version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("irontrack %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
