// ABOUTME: Per-exercise progress series and terminal bar-chart rendering.
// ABOUTME: The tracked value depends on the exercise's tracking mode.
package chart

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/harperreed/irontrack/internal/models"
)

// Point is one workout's tracked value for an exercise.
type Point struct {
	Date  time.Time
	Value float64
}

// Series extracts the progress series for an exercise from workout history,
// oldest first. The tracked value per workout follows the tracking mode:
// best set weight for weight_reps, total reps for reps_only, total distance
// for time_distance, total time for time_only. Workouts where the exercise
// has no sets contribute nothing.
func Series(history []models.WorkoutLog, exerciseName string) ([]Point, models.TrackingMode) {
	var points []Point
	mode := models.TrackWeightReps

	// History is stored most recent first; walk backwards for oldest first.
	for i := len(history) - 1; i >= 0; i-- {
		w := history[i]
		for _, e := range w.Exercises {
			if !strings.EqualFold(e.Name, exerciseName) || len(e.Sets) == 0 {
				continue
			}
			mode = e.Mode()
			value, ok := trackedValue(e)
			if ok {
				points = append(points, Point{Date: w.Date, Value: value})
			}
		}
	}

	return points, mode
}

func trackedValue(e models.Exercise) (float64, bool) {
	switch e.Mode() {
	case models.TrackRepsOnly:
		total := 0
		for _, s := range e.Sets {
			if s.Reps != nil {
				total += *s.Reps
			}
		}
		return float64(total), total > 0
	case models.TrackTimeDistance:
		total := 0.0
		for _, s := range e.Sets {
			if s.Distance != nil {
				total += *s.Distance
			}
		}
		return total, total > 0
	case models.TrackTimeOnly:
		total := 0.0
		for _, s := range e.Sets {
			if s.Time != nil {
				total += *s.Time
			}
		}
		return total, total > 0
	default:
		best := 0.0
		found := false
		for _, s := range e.Sets {
			if s.Weight != nil && *s.Weight > best {
				best = *s.Weight
				found = true
			}
		}
		return best, found
	}
}

// Render draws the series as a horizontal bar chart, one line per workout,
// scaled to width characters.
func Render(points []Point, unit string, width int) string {
	if len(points) == 0 {
		return "No data to chart.\n"
	}
	if width <= 0 {
		width = 40
	}

	max := points[0].Value
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}
	if max == 0 {
		max = 1
	}

	faint := color.New(color.Faint)
	bar := color.New(color.FgCyan)

	var b strings.Builder
	for _, p := range points {
		n := int(p.Value / max * float64(width))
		if n == 0 && p.Value > 0 {
			n = 1
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			faint.Sprint(p.Date.Format("2006-01-02")),
			bar.Sprint(strings.Repeat("█", n)),
			fmt.Sprintf("%.1f %s", p.Value, unit))
	}
	return b.String()
}
