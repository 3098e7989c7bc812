// ABOUTME: CLI commands for the exercise catalog.
// ABOUTME: Lists built-ins, manages custom exercises, and looks up new ones with AI.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/irontrack/internal/ai"
	"github.com/harperreed/irontrack/internal/models"
)

var (
	exerciseType string
	exerciseMode string
	exerciseSave bool
)

var exercisesCmd = &cobra.Command{
	Use:     "exercises",
	Aliases: []string{"e", "exercise"},
	Short:   "Browse the exercise catalog",
	Long: `Browse the exercise catalog: a built-in set of common exercises plus
any custom ones added to the current profile. A custom exercise with the
same name as a built-in replaces it.

Examples:
  irontrack exercises
  irontrack exercises add "Sled Push" --type "Weight Training"
  irontrack exercises info "Bulgarian Split Squat" --save`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		customs := map[string]bool{}
		for _, d := range session.CustomExercises() {
			customs[strings.ToLower(d.Name)] = true
		}

		faint := color.New(color.Faint)
		for _, d := range session.Catalog() {
			marker := " "
			if customs[strings.ToLower(d.Name)] {
				marker = color.CyanString("*")
			}
			fmt.Printf("%s %s %s\n", marker, padRight(d.Name, 34),
				faint.Sprintf("%s, %s", d.Type, d.Mode()))
		}
		if len(customs) > 0 {
			fmt.Printf("\n%s\n", faint.Sprint("* custom"))
		}
		return nil
	},
}

var exercisesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		def, err := buildDefinition(args[0])
		if err != nil {
			return err
		}
		if err := session.AddCustomExercise(def); err != nil {
			return err
		}
		color.Green("✓ Added %s (%s, %s)", def.Name, def.Type, def.Mode())
		return nil
	},
}

var exercisesUpdateCmd = &cobra.Command{
	Use:   "update <name>",
	Short: "Update or override an exercise",
	Long: `Update a custom exercise, or override a built-in's type and tracking
mode for this profile.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		def, err := buildDefinition(args[0])
		if err != nil {
			return err
		}
		if err := session.UpdateCustomExercise(def); err != nil {
			return err
		}
		color.Green("✓ Updated %s (%s, %s)", def.Name, def.Type, def.Mode())
		return nil
	},
}

var exercisesInfoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Look up an exercise with AI",
	Long: `Ask the AI to classify an exercise by type and tracking mode. With
--save the result is stored as a custom exercise. Requires a Gemini API
key (see 'irontrack config').`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		client := ai.NewClient(cfg.GetGeminiAPIKey())
		details, err := client.ExerciseDetails(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("lookup failed: %w", err)
		}

		fmt.Printf("%s\n  type: %s\n  tracking: %s\n", args[0], details.Type, details.TrackingMode)
		if !exerciseSave {
			return nil
		}

		def := models.ExerciseDefinition{
			Name:         args[0],
			Type:         details.Type,
			TrackingMode: details.TrackingMode,
		}
		if err := session.UpdateCustomExercise(def); err != nil {
			return err
		}
		color.Green("✓ Saved %s to the catalog", def.Name)
		return nil
	},
}

func buildDefinition(name string) (models.ExerciseDefinition, error) {
	def := models.ExerciseDefinition{Name: name}
	if !models.IsValidExerciseType(exerciseType) {
		return def, fmt.Errorf("invalid --type %q (Weight Training, Cardio, Bodyweight)", exerciseType)
	}
	def.Type = models.ExerciseType(exerciseType)
	if exerciseMode != "" {
		if !models.IsValidTrackingMode(exerciseMode) {
			return def, fmt.Errorf("invalid --tracking %q (weight_reps, reps_only, time_distance, time_only)", exerciseMode)
		}
		def.TrackingMode = models.TrackingMode(exerciseMode)
	}
	return def, nil
}

func init() {
	for _, c := range []*cobra.Command{exercisesAddCmd, exercisesUpdateCmd} {
		c.Flags().StringVar(&exerciseType, "type", string(models.ExerciseWeight), "exercise type")
		c.Flags().StringVar(&exerciseMode, "tracking", "", "tracking mode (defaults by type)")
	}
	exercisesInfoCmd.Flags().BoolVar(&exerciseSave, "save", false, "save the result as a custom exercise")

	exercisesCmd.AddCommand(exercisesAddCmd)
	exercisesCmd.AddCommand(exercisesUpdateCmd)
	exercisesCmd.AddCommand(exercisesInfoCmd)
	rootCmd.AddCommand(exercisesCmd)
}
