// ABOUTME: CLI commands for browsing finished workouts.
// ABOUTME: Lists history and shows individual entries set by set.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h"},
	Short:   "Browse finished workouts",
	Long: `Browse the workout history for the current profile, newest first.

Examples:
  irontrack history
  irontrack history --limit 50
  irontrack history show 1a2b3c4d`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		workouts := session.Workouts()
		if len(workouts) == 0 {
			fmt.Println("No workouts yet. Start one with 'irontrack workout start'.")
			return nil
		}
		if historyLimit > 0 && len(workouts) > historyLimit {
			workouts = workouts[:historyLimit]
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			sets := 0
			for _, e := range w.Exercises {
				sets += len(e.Sets)
			}
			fmt.Printf("%s  %s %s\n",
				faint.Sprint(shortID(w.ID)),
				padRight(truncate(w.Name, 28), 28),
				faint.Sprintf("%s  %d exercise(s), %d set(s), %s",
					w.Date.Format("2006-01-02"),
					len(w.Exercises), sets,
					w.Duration().Round(time.Minute)))
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one workout in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		w, err := resolveLog(args[0])
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s\n", w.Name)
		fmt.Printf("%s\n", faint.Sprintf("%s  %s  %s",
			w.ID, w.Date.Format("2006-01-02 15:04"), w.Duration().Round(time.Second)))
		for _, e := range w.Exercises {
			fmt.Printf("\n  %s\n", e.Name)
			for i, set := range e.Sets {
				fmt.Printf("    %d. %s\n", i+1, formatSet(e, set))
			}
		}
		return nil
	},
}

// shortID abbreviates an id for display. Migrated and imported records can
// carry ids shorter than the usual uuid.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum entries to list")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}
