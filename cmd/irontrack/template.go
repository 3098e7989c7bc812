// ABOUTME: CLI commands for workout templates.
// ABOUTME: Lists, shows, creates, and deletes reusable workout plans.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/irontrack/internal/models"
)

var templateCmd = &cobra.Command{
	Use:     "template",
	Aliases: []string{"t", "templates"},
	Short:   "Manage workout templates",
	Long: `Manage reusable workout templates. New profiles start with a sample
template; build your own from catalog exercises.

Examples:
  irontrack template
  irontrack template create "Leg Day" "Squat (Barbell)" "Leg Press Machine"
  irontrack template show "Leg Day"
  irontrack template delete "Leg Day"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		templates := session.Templates()
		if len(templates) == 0 {
			fmt.Println("No templates. Create one with 'irontrack template create'.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, t := range templates {
			lastUsed := "never used"
			if t.LastUsed != nil {
				lastUsed = "last used " + t.LastUsed.Format("2006-01-02")
			}
			fmt.Printf("%s  %s %s\n",
				faint.Sprint(shortID(t.ID)),
				padRight(truncate(t.Name, 28), 28),
				faint.Sprintf("%d exercise(s), %s", len(t.Exercises), lastUsed))
		}
		return nil
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show <template>",
	Short: "Show a template's exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		t, err := resolveTemplate(args[0])
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s\n%s\n", t.Name, faint.Sprint(t.ID))
		for _, e := range t.Exercises {
			fmt.Printf("  %s %s\n", padRight(e.Name, 30), faint.Sprintf("%s, %s", e.Type, e.Mode()))
		}
		return nil
	},
}

var templateCreateCmd = &cobra.Command{
	Use:   "create <name> [exercise...]",
	Short: "Create a template",
	Long: `Create a template from catalog exercises. Names must match the
catalog; list it with 'irontrack exercises'.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		name := args[0]
		for _, t := range session.Templates() {
			if strings.EqualFold(t.Name, name) {
				return fmt.Errorf("a template named %q already exists", t.Name)
			}
		}

		t := models.NewWorkoutTemplate(name)
		for _, exName := range args[1:] {
			def, ok := models.LookupExercise(session.CustomExercises(), exName)
			if !ok {
				return fmt.Errorf("%q is not in the catalog; add it with 'irontrack exercises add'", exName)
			}
			t.Exercises = append(t.Exercises, models.NewExercise(def))
		}

		if err := session.SaveTemplate(*t); err != nil {
			return err
		}
		color.Green("✓ Created %q with %d exercise(s)", t.Name, len(t.Exercises))
		return nil
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete <template>",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		t, err := resolveTemplate(args[0])
		if err != nil {
			return err
		}
		if err := session.DeleteTemplate(t.ID); err != nil {
			return err
		}
		color.Yellow("Deleted %q", t.Name)
		return nil
	},
}

func init() {
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateCreateCmd)
	templateCmd.AddCommand(templateDeleteCmd)
	rootCmd.AddCommand(templateCmd)
}
