// ABOUTME: CLI commands for AI workout suggestions.
// ABOUTME: Generates workouts, recommends next exercises, and reviews templates.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/irontrack/internal/ai"
	"github.com/harperreed/irontrack/internal/models"
)

var (
	suggestGoals       string
	suggestLimitations string
	suggestDuration    string
	suggestSave        bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "AI workout suggestions",
	Long: `AI workout suggestions powered by Gemini. Requires GEMINI_API_KEY
in the environment or gemini_api_key in the config file.

COMMANDS:

  workout    Generate a full workout plan from your goals
  next       Recommend exercises to add to the in-progress workout
  analyze    Review a template against your goals

Examples:
  irontrack suggest workout --goals "hypertrophy" --duration "45 min"
  irontrack suggest next --goals "push day"
  irontrack suggest analyze "Upper Body Power" --goals "strength"`,
}

var suggestWorkoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Generate a workout plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		client := ai.NewClient(cfg.GetGeminiAPIKey())
		plan, err := client.GenerateWorkout(cmd.Context(), suggestGoals, suggestLimitations, suggestDuration)
		if err != nil {
			return fmt.Errorf("suggestion failed: %w", err)
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s\n", plan.WorkoutName)
		if plan.Rationale != "" {
			fmt.Printf("%s\n", faint.Sprint(plan.Rationale))
		}
		fmt.Println()
		for _, e := range plan.Exercises {
			detail := string(e.Type)
			if e.SuggestedSets > 0 && e.SuggestedReps > 0 {
				detail = fmt.Sprintf("%s, %d × %d", e.Type, e.SuggestedSets, e.SuggestedReps)
			}
			fmt.Printf("  %s %s\n", padRight(e.Name, 30), faint.Sprint(detail))
			if e.Description != "" {
				fmt.Printf("    %s\n", faint.Sprint(e.Description))
			}
		}

		if !suggestSave {
			fmt.Printf("\n%s\n", faint.Sprint("Pass --save to keep this as a template."))
			return nil
		}

		t := models.NewWorkoutTemplate(plan.WorkoutName)
		for _, e := range plan.Exercises {
			def, ok := models.LookupExercise(session.CustomExercises(), e.Name)
			if !ok {
				def = models.ExerciseDefinition{Name: e.Name, Type: e.Type}
			}
			t.Exercises = append(t.Exercises, models.NewExercise(def))
		}
		if err := session.SaveTemplate(*t); err != nil {
			return err
		}
		color.Green("\n✓ Saved template %q", t.Name)
		return nil
	},
}

var suggestNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Recommend next exercises",
	Long: `Recommend up to three exercises that complement the in-progress
workout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		w := session.ActiveWorkout()
		if w == nil {
			return fmt.Errorf("no workout in progress; run 'irontrack workout start' first")
		}

		client := ai.NewClient(cfg.GetGeminiAPIKey())
		recs, err := client.RecommendNext(cmd.Context(), w.Exercises, suggestGoals, suggestLimitations)
		if err != nil {
			return fmt.Errorf("suggestion failed: %w", err)
		}

		faint := color.New(color.Faint)
		for _, r := range recs {
			fmt.Printf("  %s %s\n", padRight(r.Name, 30),
				faint.Sprintf("%s, %s", r.Type, r.Target))
			if r.Rationale != "" {
				fmt.Printf("    %s\n", faint.Sprint(r.Rationale))
			}
		}
		return nil
	},
}

var suggestAnalyzeCmd = &cobra.Command{
	Use:   "analyze <template>",
	Short: "Review a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		t, err := resolveTemplate(args[0])
		if err != nil {
			return err
		}

		client := ai.NewClient(cfg.GetGeminiAPIKey())
		analysis, err := client.AnalyzeTemplate(cmd.Context(), t.Exercises, suggestGoals)
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}

		fmt.Printf("%s\n\n%s\n", t.Name, analysis)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{suggestWorkoutCmd, suggestNextCmd, suggestAnalyzeCmd} {
		c.Flags().StringVar(&suggestGoals, "goals", "", "training goals")
		c.Flags().StringVar(&suggestLimitations, "limitations", "", "injuries or equipment limits")
	}
	suggestWorkoutCmd.Flags().StringVar(&suggestDuration, "duration", "", "target workout length")
	suggestWorkoutCmd.Flags().BoolVar(&suggestSave, "save", false, "save the plan as a template")

	suggestCmd.AddCommand(suggestWorkoutCmd)
	suggestCmd.AddCommand(suggestNextCmd)
	suggestCmd.AddCommand(suggestAnalyzeCmd)
	rootCmd.AddCommand(suggestCmd)
}
