// ABOUTME: CLI command charting an exercise's progress over time.
// ABOUTME: Picks the tracked value and unit from the exercise's tracking mode.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/irontrack/internal/chart"
	"github.com/harperreed/irontrack/internal/models"
)

var progressWidth int

var progressCmd = &cobra.Command{
	Use:   "progress <exercise>",
	Short: "Chart an exercise's progress",
	Long: `Chart an exercise's progress across workout history, oldest first.
The plotted value depends on how the exercise is tracked: best set weight,
total reps, total distance, or total time per workout.

Example:
  irontrack progress "Bench Press (Barbell)"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		points, mode := chart.Series(session.Workouts(), args[0])
		if len(points) == 0 {
			fmt.Printf("No logged sets for %q yet.\n", args[0])
			return nil
		}

		user := session.User()
		var unit string
		switch mode {
		case models.TrackRepsOnly:
			unit = "reps"
		case models.TrackTimeDistance:
			unit = user.DistanceUnit()
		case models.TrackTimeOnly:
			unit = "min"
		default:
			unit = user.WeightUnit()
		}

		fmt.Printf("%s (%s)\n\n", args[0], mode)
		fmt.Print(chart.Render(points, unit, progressWidth))
		return nil
	},
}

func init() {
	progressCmd.Flags().IntVar(&progressWidth, "width", 40, "chart width in characters")
	rootCmd.AddCommand(progressCmd)
}
