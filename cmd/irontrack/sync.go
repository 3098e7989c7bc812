// ABOUTME: CLI commands for Charm-based sync.
// ABOUTME: Supports link, unlink, status, now, and reset operations.
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/irontrack/internal/kv"
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync workout data across devices",
	Long: `Sync workout data across devices using Charm Cloud.

Your data is E2E encrypted with your SSH key before upload. The server
never sees your unencrypted workout data. Sync requires the default
Charm storage backend.

GETTING STARTED:

  1. Link your device (creates/uses SSH key automatically):
     irontrack sync link

  2. On other devices, link with the same Charm account:
     irontrack sync link

  3. Check sync status:
     irontrack sync status

COMMANDS:

  link      Link this device to your Charm account
  unlink    Disconnect this device from Charm
  status    Show sync status and account info
  now       Push and pull changes immediately
  reset     Reset local data and restore from cloud (destructive)

Data syncs automatically after each write.`,
}

// charmBackend returns the Charm backend, or an error when a local-only
// backend is configured.
func charmBackend() (*kv.CharmBackend, error) {
	cb, ok := backend.(*kv.CharmBackend)
	if !ok {
		return nil, fmt.Errorf("sync requires the charm backend; current backend is %q", cfg.Backend)
	}
	return cb, nil
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to Charm",
	Long: `Link this device to your Charm account.

If you don't have a Charm account, one will be created using your SSH key.
If you already have an account, you'll be prompted to link via charm.sh.

Example:
  irontrack sync link`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cb, err := charmBackend()
		if err != nil {
			return err
		}

		// Use charm CLI to link
		charmCmd := exec.Command("charm", "link")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}

		color.Green("\n✓ Device linked to Charm")
		fmt.Println("Your workout data will now sync automatically across devices.")

		// Sync immediately after linking
		if err := cb.Sync(); err != nil {
			color.Yellow("⚠ Initial sync failed: %v", err)
		} else {
			color.Green("✓ Initial sync complete")
		}
		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Disconnect from Charm",
	Long: `Disconnect this device from Charm.

This does not delete your local workout data.
You can link again later with 'irontrack sync link'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		charmCmd := exec.Command("charm", "unlink")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to unlink: %w", err)
		}

		color.Green("✓ Device unlinked from Charm")
		fmt.Println("Your local workout data is preserved.")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cb, err := charmBackend()
		if err != nil {
			return err
		}

		fmt.Println("Server: charm.2389.dev")
		if cb.IsReadOnly() {
			color.Yellow("⚠ Database locked by another process; opened read-only")
		} else {
			color.Green("✓ Connected to Charm")
		}

		fmt.Printf("  Profiles: %d\n", len(session.Directory().List()))
		if session.LoggedIn() {
			fmt.Printf("  Workouts: %d\n", len(session.Workouts()))
			fmt.Printf("  Templates: %d\n", len(session.Templates()))
		}
		return nil
	},
}

var syncNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Sync immediately",
	RunE: func(cmd *cobra.Command, args []string) error {
		cb, err := charmBackend()
		if err != nil {
			return err
		}
		if err := cb.Sync(); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		color.Green("✓ Sync complete")
		return nil
	},
}

var syncResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset local data and restore from cloud",
	Long: `Delete all local data and restore from Charm Cloud.

This is a destructive operation. All local data will be lost and restored
from cloud. Use this to:
- Fix sync conflicts
- Reset a device to cloud state`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cb, err := charmBackend()
		if err != nil {
			return err
		}

		fmt.Println("This will DELETE all local workout data and restore from cloud.")
		fmt.Print("Continue? [y/N]: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Canceled.")
			return nil
		}

		if err := cb.Reset(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		color.Green("✓ Local data reset and restored from cloud")
		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncUnlinkCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncNowCmd)
	syncCmd.AddCommand(syncResetCmd)
	rootCmd.AddCommand(syncCmd)
}
