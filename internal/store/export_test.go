// ABOUTME: Tests for backup export and import.
// ABOUTME: Covers round trips, field presence, and the customs omission.
package store

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/harperreed/irontrack/internal/kv"
	"github.com/harperreed/irontrack/internal/models"
)

func TestExportImportRoundTrip(t *testing.T) {
	s, _ := newTestSession(t)
	s.Register("Alice", "a@x.com")

	w, _ := s.StartWorkout(nil, false)
	w.Exercises = append(w.Exercises, models.NewExercise(models.ExerciseDefinition{
		Name: "Push-Up", Type: models.ExerciseBodyweight,
	}))
	w.Exercises[0].Sets = append(w.Exercises[0].Sets, models.NewSet().WithReps(20))
	s.UpdateActiveWorkout(w)
	s.FinishWorkout(nil)

	data, err := s.ExportData()
	if err != nil {
		t.Fatalf("ExportData: %v", err)
	}

	// Import into a brand-new profile on a fresh store.
	other := NewSession(kv.NewStore(kv.NewMemory()))
	target := other.Register("Restored", "")
	if err := other.ImportData(data); err != nil {
		t.Fatalf("ImportData: %v", err)
	}

	if other.User().ID != target.ID {
		t.Error("import must keep the importing profile's id")
	}
	if other.User().Name != "Alice" {
		t.Errorf("imported name = %q, want Alice", other.User().Name)
	}
	if len(other.Workouts()) != 1 {
		t.Fatalf("workouts = %d, want 1", len(other.Workouts()))
	}
	got := other.Workouts()[0]
	if len(got.Exercises) != 1 || len(got.Exercises[0].Sets) != 1 {
		t.Errorf("imported workout lost detail: %+v", got)
	}
}

func TestExportOmitsCustomExercises(t *testing.T) {
	s, _ := newTestSession(t)
	s.Register("Alice", "")
	s.AddCustomExercise(models.ExerciseDefinition{Name: "Sled Push", Type: models.ExerciseWeight})

	data, err := s.ExportData()
	if err != nil {
		t.Fatalf("ExportData: %v", err)
	}
	if strings.Contains(string(data), "Sled Push") {
		t.Error("custom exercises are not part of the backup document")
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	for _, key := range []string{"user", "workouts", "templates"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("export should contain %q", key)
		}
	}
	if _, ok := doc["customExercises"]; ok {
		t.Error("export should not contain customExercises")
	}
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	s, store := newTestSession(t)
	profile := s.Register("Alice", "")
	s.StartWorkout(nil, false)
	s.FinishWorkout(nil)

	if err := s.ImportData([]byte("{broken")); err == nil {
		t.Fatal("malformed import should be rejected")
	}

	// Nothing was written.
	var history []models.WorkoutLog
	if !store.Read("workouts_"+profile.ID, &history) || len(history) != 1 {
		t.Error("failed import must leave stored data untouched")
	}
	if len(s.Workouts()) != 1 {
		t.Error("failed import must leave in-memory state untouched")
	}
}

func TestImportPartialDocument(t *testing.T) {
	s, _ := newTestSession(t)
	s.Register("Alice", "")
	s.StartWorkout(nil, false)
	s.FinishWorkout(nil)
	baseTemplates := len(s.Templates())

	// Only workouts: profile and templates stay put.
	doc := `{"workouts": []}`
	if err := s.ImportData([]byte(doc)); err != nil {
		t.Fatalf("ImportData: %v", err)
	}
	if len(s.Workouts()) != 0 {
		t.Error("workouts should be replaced by the document")
	}
	if s.User().Name != "Alice" {
		t.Error("absent user field must leave the profile untouched")
	}
	if len(s.Templates()) != baseTemplates {
		t.Error("absent templates field must leave templates untouched")
	}
}

func TestExportYAML(t *testing.T) {
	s, _ := newTestSession(t)
	s.Register("Alice", "")

	w, _ := s.StartWorkout(nil, false)
	w.Exercises = append(w.Exercises, models.NewExercise(models.ExerciseDefinition{
		Name: "Bench Press (Barbell)", Type: models.ExerciseWeight,
	}))
	w.Exercises[0].Sets = append(w.Exercises[0].Sets, models.NewSet().WithWeight(135).WithReps(8))
	s.UpdateActiveWorkout(w)
	s.FinishWorkout(nil)

	data, err := s.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML: %v", err)
	}
	text := string(data)
	for _, want := range []string{"user: Alice", "units: imperial", "Bench Press (Barbell)", "weight: 135"} {
		if !strings.Contains(text, want) {
			t.Errorf("YAML export missing %q:\n%s", want, text)
		}
	}
}
