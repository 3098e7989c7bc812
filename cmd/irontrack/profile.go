// ABOUTME: CLI commands for managing local profiles.
// ABOUTME: Supports create, list, switch, show, set, and logout.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/irontrack/internal/models"
)

var (
	profileEmail string
	setName      string
	setEmail     string
	setUnits     string
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Aliases: []string{"p"},
	Short:   "Manage local profiles",
	Long: `Manage local profiles. Each profile keeps its own workouts, templates,
and custom exercises under namespaced storage keys.

There is no credential check: any local profile can be switched into.

COMMANDS:

  create   Register a new profile and switch to it
  list     List known profiles
  switch   Switch to another profile
  show     Show the active profile
  set      Change name, email, or units
  logout   Leave the active profile`,
}

var profileCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Register a new profile",
	Long: `Register a new profile and switch to it. New profiles start with the
default template set.

Examples:
  irontrack profile create "Alice"
  irontrack profile create "Alice" --email a@x.com`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := session.Register(args[0], profileEmail)

		color.Green("✓ Created profile %q", profile.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(shortID(profile.ID)))
		fmt.Printf("  %d starter template(s) installed\n", len(session.Templates()))
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List known profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles := session.Directory().List()
		if len(profiles) == 0 {
			fmt.Println("No profiles yet. Run 'irontrack profile create <name>'.")
			return nil
		}

		faint := color.New(color.Faint)
		activeID := ""
		if session.LoggedIn() {
			activeID = session.User().ID
		}
		for _, p := range profiles {
			marker := " "
			if p.ID == activeID {
				marker = color.GreenString("*")
			}
			fmt.Printf("%s %s %s  last active %s\n",
				marker,
				faint.Sprint(shortID(p.ID)),
				padRight(p.Name, 20),
				faint.Sprint(p.LastActive.Format("2006-01-02 15:04")))
		}
		return nil
	},
}

var profileSwitchCmd = &cobra.Command{
	Use:   "switch <name-or-id>",
	Short: "Switch to another profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveProfile(args[0])
		if err != nil {
			return err
		}
		if err := session.Login(id); err != nil {
			return fmt.Errorf("failed to switch profile: %w", err)
		}
		color.Green("✓ Switched to %s", session.User().Name)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		p := session.User()
		fmt.Printf("Name:  %s\n", p.Name)
		if p.Email != "" {
			fmt.Printf("Email: %s\n", p.Email)
		}
		fmt.Printf("Units: %s\n", p.UnitSystem)
		fmt.Printf("ID:    %s\n", p.ID)
		fmt.Printf("Workouts logged: %d\n", len(session.Workouts()))
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change profile settings",
	Long: `Change the active profile's name, email, or unit system.

Examples:
  irontrack profile set --units metric
  irontrack profile set --name "Alice B" --email ab@x.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		p := *session.User()
		if setName != "" {
			p.Name = setName
		}
		if setEmail != "" {
			p.Email = setEmail
		}
		if setUnits != "" {
			if !models.IsValidUnitSystem(setUnits) {
				return fmt.Errorf("unknown unit system: %s (use imperial or metric)", setUnits)
			}
			p.UnitSystem = models.UnitSystem(setUnits)
		}
		if err := session.UpdateProfile(p); err != nil {
			return err
		}
		color.Green("✓ Profile updated")
		return nil
	},
}

var profileLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Leave the active profile",
	Long: `Leave the active profile. Persisted data is untouched; the next run
shows no active profile until you switch into one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		name := session.User().Name
		session.Logout()
		color.Green("✓ Logged out of %s", name)
		return nil
	},
}

// resolveProfile matches a directory entry by id prefix or
// case-insensitive name.
func resolveProfile(arg string) (string, error) {
	var matches []models.UserSummary
	for _, p := range session.Directory().List() {
		if strings.HasPrefix(p.ID, arg) || strings.EqualFold(p.Name, arg) {
			matches = append(matches, p)
		}
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no profile matches %q", arg)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("%q matches multiple profiles", arg)
	}
	return matches[0].ID, nil
}

func init() {
	profileCreateCmd.Flags().StringVar(&profileEmail, "email", "", "email address")

	profileSetCmd.Flags().StringVar(&setName, "name", "", "display name")
	profileSetCmd.Flags().StringVar(&setEmail, "email", "", "email address")
	profileSetCmd.Flags().StringVar(&setUnits, "units", "", "unit system (imperial or metric)")

	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileSwitchCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileLogoutCmd)
	rootCmd.AddCommand(profileCmd)
}
