// ABOUTME: CLI commands for the active workout lifecycle.
// ABOUTME: Supports start, status, add, set, finish, and cancel.
package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/irontrack/internal/models"
	"github.com/harperreed/irontrack/internal/store"
)

var (
	workoutReplace  bool
	workoutFromLog  string
	addExerciseType string
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Log a workout",
	Long: `Log a workout set by set. Only one workout can be in progress at a
time; it survives restarts until finished or cancelled.

WORKFLOW:

  1. Start from a template:   irontrack workout start "Upper Body Power"
     ... or from scratch:     irontrack workout start
  2. Log sets as you go:      irontrack workout set "Bench Press (Barbell)" 135 8
  3. Check where you are:     irontrack workout status
  4. Wrap up:                 irontrack workout finish

SET VALUES BY TRACKING MODE:

  weight_reps     set <exercise> <weight> <reps>
  reps_only       set <exercise> <reps>
  time_distance   set <exercise> <minutes> [distance]
  time_only       set <exercise> <minutes>

COMMANDS:

  start    Start a new workout (template, past log, or empty)
  status   Show the in-progress workout
  add      Add an exercise to the workout
  set      Log a set for an exercise
  finish   Complete the workout and move it to history
  cancel   Discard the workout`,
}

var workoutStartCmd = &cobra.Command{
	Use:   "start [template]",
	Short: "Start a new workout",
	Long: `Start a new workout, optionally seeded from a template or a past log.
Seeded exercises come over with their set lists emptied.

Examples:
  irontrack workout start                      # empty workout
  irontrack workout start "Upper Body Power"   # from a template
  irontrack workout start --from-log 1a2b3c4d  # repeat a past workout`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		var source *models.WorkoutSource
		switch {
		case len(args) == 1:
			t, err := resolveTemplate(args[0])
			if err != nil {
				return err
			}
			source = models.TemplateSource(t)
		case workoutFromLog != "":
			l, err := resolveLog(workoutFromLog)
			if err != nil {
				return err
			}
			source = models.LogSource(l)
		}

		w, err := session.StartWorkout(source, workoutReplace)
		if errors.Is(err, store.ErrWorkoutInProgress) {
			return fmt.Errorf("a workout is already in progress; finish it, cancel it, or pass --replace to discard it")
		}
		if err != nil {
			return err
		}

		color.Green("✓ Started %q", w.Name)
		if len(w.Exercises) > 0 {
			for _, e := range w.Exercises {
				fmt.Printf("  %s\n", e.Name)
			}
		} else {
			fmt.Println("  Add exercises with 'irontrack workout add <name>'")
		}
		return nil
	},
}

var workoutStatusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"check"},
	Short:   "Show the in-progress workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		w := session.ActiveWorkout()
		if w == nil {
			fmt.Println("No workout in progress.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s  %s\n", w.Name, faint.Sprintf("elapsed %s", w.Duration().Round(time.Second)))
		for _, e := range w.Exercises {
			fmt.Printf("  %s %s\n", padRight(e.Name, 30), faint.Sprintf("%d set(s)", len(e.Sets)))
			for i, set := range e.Sets {
				fmt.Printf("    %d. %s\n", i+1, formatSet(e, set))
			}
		}
		return nil
	},
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <exercise>",
	Short: "Add an exercise to the workout",
	Long: `Add a catalog exercise to the in-progress workout. Unknown names can
be added as ad hoc weight-training exercises with --type, or looked up
first with 'irontrack exercises info'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		w := session.ActiveWorkout()
		if w == nil {
			return fmt.Errorf("no workout in progress; run 'irontrack workout start' first")
		}

		name := args[0]
		for _, e := range w.Exercises {
			if strings.EqualFold(e.Name, name) {
				return fmt.Errorf("%q is already in the workout", e.Name)
			}
		}

		def, ok := models.LookupExercise(session.CustomExercises(), name)
		if !ok {
			if addExerciseType == "" {
				return fmt.Errorf("%q is not in the catalog; pass --type or add it with 'irontrack exercises add'", name)
			}
			if !models.IsValidExerciseType(addExerciseType) {
				return fmt.Errorf("unknown exercise type: %s", addExerciseType)
			}
			def = models.ExerciseDefinition{Name: name, Type: models.ExerciseType(addExerciseType)}
		}

		w.Exercises = append(w.Exercises, models.NewExercise(def))
		if err := session.UpdateActiveWorkout(w); err != nil {
			return err
		}
		color.Green("✓ Added %s", def.Name)
		return nil
	},
}

var workoutSetCmd = &cobra.Command{
	Use:   "set <exercise> <values...>",
	Short: "Log a set",
	Long: `Log a completed set for an exercise in the in-progress workout. The
exercise is added to the workout if it is not there yet.

Examples:
  irontrack workout set "Bench Press (Barbell)" 135 8   # weight reps
  irontrack workout set "Push-Up" 20                    # reps
  irontrack workout set "Rowing Machine" 20 5           # minutes distance
  irontrack workout set "Planks" 2                      # minutes`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		w := session.ActiveWorkout()
		if w == nil {
			return fmt.Errorf("no workout in progress; run 'irontrack workout start' first")
		}

		name := args[0]
		idx := -1
		for i := range w.Exercises {
			if strings.EqualFold(w.Exercises[i].Name, name) {
				idx = i
				break
			}
		}
		if idx < 0 {
			def, ok := models.LookupExercise(session.CustomExercises(), name)
			if !ok {
				def = models.ExerciseDefinition{Name: name, Type: models.ExerciseWeight}
			}
			w.Exercises = append(w.Exercises, models.NewExercise(def))
			idx = len(w.Exercises) - 1
		}

		e := &w.Exercises[idx]
		set, err := parseSet(e.Mode(), args[1:])
		if err != nil {
			return err
		}
		e.Sets = append(e.Sets, set)

		if err := session.UpdateActiveWorkout(w); err != nil {
			return err
		}
		color.Green("✓ %s", e.Name)
		fmt.Printf("  set %d: %s\n", len(e.Sets), formatSet(*e, set))
		return nil
	},
}

var workoutFinishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Complete the workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		w, err := session.FinishWorkout(nil)
		if errors.Is(err, store.ErrNoActiveWorkout) {
			return fmt.Errorf("no workout in progress")
		}
		if err != nil {
			return err
		}

		sets := 0
		for _, e := range w.Exercises {
			sets += len(e.Sets)
		}
		color.Green("✓ Finished %q", w.Name)
		fmt.Printf("  %s, %d exercise(s), %d set(s)\n",
			w.Duration().Round(time.Second), len(w.Exercises), sets)
		return nil
	},
}

var workoutCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the workout",
	Long:  `Discard the in-progress workout. Logged sets are lost.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		if err := session.CancelWorkout(); err != nil {
			if errors.Is(err, store.ErrNoActiveWorkout) {
				return fmt.Errorf("no workout in progress")
			}
			return err
		}
		color.Yellow("Workout discarded.")
		return nil
	},
}

// parseSet builds a completed set from positional values according to the
// exercise's tracking mode.
func parseSet(mode models.TrackingMode, args []string) (models.SetData, error) {
	set := models.NewSet()
	set.Completed = true

	parse := func(s, what string) (float64, error) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", what, s)
		}
		return v, nil
	}

	switch mode {
	case models.TrackRepsOnly:
		reps, err := strconv.Atoi(args[0])
		if err != nil {
			return set, fmt.Errorf("invalid reps: %s", args[0])
		}
		return set.WithReps(reps), nil

	case models.TrackTimeOnly:
		t, err := parse(args[0], "time")
		if err != nil {
			return set, err
		}
		return set.WithTime(t), nil

	case models.TrackTimeDistance:
		t, err := parse(args[0], "time")
		if err != nil {
			return set, err
		}
		set = set.WithTime(t)
		if len(args) > 1 {
			d, err := parse(args[1], "distance")
			if err != nil {
				return set, err
			}
			set = set.WithDistance(d)
		}
		return set, nil

	default: // weight_reps
		if len(args) < 2 {
			return set, fmt.Errorf("weight exercises need <weight> <reps>")
		}
		weight, err := parse(args[0], "weight")
		if err != nil {
			return set, err
		}
		reps, err := strconv.Atoi(args[1])
		if err != nil {
			return set, fmt.Errorf("invalid reps: %s", args[1])
		}
		return set.WithWeight(weight).WithReps(reps), nil
	}
}

// formatSet renders a set in the profile's units.
func formatSet(e models.Exercise, set models.SetData) string {
	user := session.User()
	var parts []string
	if set.Weight != nil {
		parts = append(parts, fmt.Sprintf("%.1f %s", *set.Weight, user.WeightUnit()))
	}
	if set.Reps != nil {
		parts = append(parts, fmt.Sprintf("%d reps", *set.Reps))
	}
	if set.Time != nil {
		parts = append(parts, fmt.Sprintf("%.1f min", *set.Time))
	}
	if set.Distance != nil {
		parts = append(parts, fmt.Sprintf("%.2f %s", *set.Distance, user.DistanceUnit()))
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, " × ")
}

// resolveTemplate matches a template by id prefix or case-insensitive name.
func resolveTemplate(arg string) (*models.WorkoutTemplate, error) {
	var matches []*models.WorkoutTemplate
	templates := session.Templates()
	for i := range templates {
		t := &templates[i]
		if strings.HasPrefix(t.ID, arg) || strings.EqualFold(t.Name, arg) {
			matches = append(matches, t)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no template matches %q", arg)
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("%q matches multiple templates", arg)
	}
	return matches[0], nil
}

// resolveLog matches a history entry by id prefix.
func resolveLog(arg string) (*models.WorkoutLog, error) {
	var matches []*models.WorkoutLog
	workouts := session.Workouts()
	for i := range workouts {
		w := &workouts[i]
		if strings.HasPrefix(w.ID, arg) {
			matches = append(matches, w)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no workout matches %q", arg)
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("%q matches multiple workouts", arg)
	}
	return matches[0], nil
}

func init() {
	workoutStartCmd.Flags().BoolVar(&workoutReplace, "replace", false, "discard any in-progress workout")
	workoutStartCmd.Flags().StringVar(&workoutFromLog, "from-log", "", "seed from a past workout id")

	workoutAddCmd.Flags().StringVar(&addExerciseType, "type", "", "exercise type for ad hoc exercises")

	workoutCmd.AddCommand(workoutStartCmd)
	workoutCmd.AddCommand(workoutStatusCmd)
	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutSetCmd)
	workoutCmd.AddCommand(workoutFinishCmd)
	workoutCmd.AddCommand(workoutCancelCmd)
	rootCmd.AddCommand(workoutCmd)
}
