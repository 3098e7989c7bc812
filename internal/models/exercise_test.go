// ABOUTME: Tests for exercise definitions, tracking modes, and set builders.
// ABOUTME: Covers mode fallback by type and set value construction.
package models

import "testing"

func TestDefaultTrackingMode(t *testing.T) {
	tests := []struct {
		name string
		typ  ExerciseType
		want TrackingMode
	}{
		{"weight training", ExerciseWeight, TrackWeightReps},
		{"cardio", ExerciseCardio, TrackTimeDistance},
		{"bodyweight", ExerciseBodyweight, TrackRepsOnly},
		{"unknown type", ExerciseType("Yoga"), TrackWeightReps},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultTrackingMode(tt.typ); got != tt.want {
				t.Errorf("DefaultTrackingMode(%q) = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestDefinitionModeFallback(t *testing.T) {
	explicit := ExerciseDefinition{Name: "Planks", Type: ExerciseBodyweight, TrackingMode: TrackTimeOnly}
	if got := explicit.Mode(); got != TrackTimeOnly {
		t.Errorf("explicit mode = %q, want %q", got, TrackTimeOnly)
	}

	implicit := ExerciseDefinition{Name: "Push-Up", Type: ExerciseBodyweight}
	if got := implicit.Mode(); got != TrackRepsOnly {
		t.Errorf("implicit mode = %q, want %q", got, TrackRepsOnly)
	}
}

func TestIsValidTrackingMode(t *testing.T) {
	for _, valid := range []string{"weight_reps", "reps_only", "time_distance", "time_only"} {
		if !IsValidTrackingMode(valid) {
			t.Errorf("IsValidTrackingMode(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"", "weight", "WEIGHT_REPS"} {
		if IsValidTrackingMode(invalid) {
			t.Errorf("IsValidTrackingMode(%q) = true, want false", invalid)
		}
	}
}

func TestSetBuilders(t *testing.T) {
	set := NewSet().WithWeight(135).WithReps(8)
	if set.ID == "" {
		t.Error("NewSet should assign an id")
	}
	if set.Weight == nil || *set.Weight != 135 {
		t.Errorf("Weight = %v, want 135", set.Weight)
	}
	if set.Reps == nil || *set.Reps != 8 {
		t.Errorf("Reps = %v, want 8", set.Reps)
	}
	if set.Distance != nil || set.Time != nil {
		t.Error("unset fields should stay nil")
	}
	if set.Completed {
		t.Error("new sets should not be completed")
	}
}

func TestNewExercise(t *testing.T) {
	def := ExerciseDefinition{Name: "Rowing Machine", Type: ExerciseCardio}
	a := NewExercise(def)
	b := NewExercise(def)

	if a.ID == b.ID {
		t.Error("each instance should get a fresh id")
	}
	if a.Name != "Rowing Machine" || a.Type != ExerciseCardio {
		t.Errorf("instance did not carry definition: %+v", a)
	}
	if len(a.Sets) != 0 {
		t.Errorf("new instance should have no sets, got %d", len(a.Sets))
	}
	if a.Mode() != TrackTimeDistance {
		t.Errorf("Mode() = %q, want %q", a.Mode(), TrackTimeDistance)
	}
}
