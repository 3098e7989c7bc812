// ABOUTME: Tests for progress series extraction and chart rendering.
// ABOUTME: Covers per-mode tracked values and oldest-first ordering.
package chart

import (
	"strings"
	"testing"
	"time"

	"github.com/harperreed/irontrack/internal/models"
)

func day(n int) time.Time {
	return time.Date(2026, 1, n, 10, 0, 0, 0, time.UTC)
}

func weightWorkout(date time.Time, name string, weights ...float64) models.WorkoutLog {
	e := models.NewExercise(models.ExerciseDefinition{Name: name, Type: models.ExerciseWeight})
	for _, w := range weights {
		e.Sets = append(e.Sets, models.NewSet().WithWeight(w).WithReps(5))
	}
	return models.WorkoutLog{ID: name + date.String(), Date: date, Exercises: []models.Exercise{e}}
}

func TestSeriesBestWeightOldestFirst(t *testing.T) {
	// History is stored newest first.
	history := []models.WorkoutLog{
		weightWorkout(day(3), "Bench Press (Barbell)", 145, 150),
		weightWorkout(day(1), "Bench Press (Barbell)", 135, 140),
	}

	points, mode := Series(history, "bench press (barbell)")
	if mode != models.TrackWeightReps {
		t.Errorf("mode = %q", mode)
	}
	if len(points) != 2 {
		t.Fatalf("points = %d, want 2", len(points))
	}
	if !points[0].Date.Equal(day(1)) || !points[1].Date.Equal(day(3)) {
		t.Error("series should be oldest first")
	}
	if points[0].Value != 140 || points[1].Value != 150 {
		t.Errorf("values = %v, %v; want best set weight per workout", points[0].Value, points[1].Value)
	}
}

func TestSeriesRepsTotal(t *testing.T) {
	e := models.NewExercise(models.ExerciseDefinition{Name: "Push-Up", Type: models.ExerciseBodyweight})
	e.Sets = append(e.Sets, models.NewSet().WithReps(20), models.NewSet().WithReps(15))
	history := []models.WorkoutLog{{ID: "w", Date: day(1), Exercises: []models.Exercise{e}}}

	points, mode := Series(history, "Push-Up")
	if mode != models.TrackRepsOnly {
		t.Errorf("mode = %q", mode)
	}
	if len(points) != 1 || points[0].Value != 35 {
		t.Errorf("points = %+v, want one total of 35", points)
	}
}

func TestSeriesSkipsEmptyAndOtherExercises(t *testing.T) {
	empty := models.NewExercise(models.ExerciseDefinition{Name: "Squat (Barbell)", Type: models.ExerciseWeight})
	history := []models.WorkoutLog{
		weightWorkout(day(2), "Bench Press (Barbell)", 135),
		{ID: "e", Date: day(1), Exercises: []models.Exercise{empty}},
	}

	points, _ := Series(history, "Squat (Barbell)")
	if len(points) != 0 {
		t.Errorf("workouts with no sets should contribute nothing: %+v", points)
	}
}

func TestRender(t *testing.T) {
	points := []Point{
		{Date: day(1), Value: 135},
		{Date: day(3), Value: 150},
	}

	out := Render(points, "lbs", 20)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("output = %d lines, want 2:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "2026-01-01") || !strings.Contains(lines[0], "135.0 lbs") {
		t.Errorf("line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "█") {
		t.Errorf("bars missing: %q", lines[1])
	}
}

func TestRenderEmpty(t *testing.T) {
	if out := Render(nil, "lbs", 20); !strings.Contains(out, "No data") {
		t.Errorf("empty render = %q", out)
	}
}
