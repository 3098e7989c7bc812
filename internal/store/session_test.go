// ABOUTME: Tests for the session controller over the in-memory backend.
// ABOUTME: Covers registration, login, workout lifecycle, and catalog edits.
package store

import (
	"errors"
	"testing"

	"github.com/harperreed/irontrack/internal/kv"
	"github.com/harperreed/irontrack/internal/models"
)

func newTestSession(t *testing.T) (*Session, *kv.Store) {
	t.Helper()
	store := kv.NewStore(kv.NewMemory())
	return NewSession(store), store
}

func TestRegisterCreatesProfileWithStarters(t *testing.T) {
	s, store := newTestSession(t)

	profile := s.Register("Alice", "a@x.com")

	if !s.LoggedIn() {
		t.Fatal("Register should log the new profile in")
	}
	if profile.UnitSystem != models.UnitImperial {
		t.Errorf("UnitSystem = %q, want imperial", profile.UnitSystem)
	}
	if len(s.Templates()) == 0 {
		t.Error("new profiles should get starter templates")
	}
	if len(s.Workouts()) != 0 || s.ActiveWorkout() != nil {
		t.Error("new profiles should have no workouts")
	}

	// Persisted too, under namespaced keys.
	var stored models.UserProfile
	if !store.Read("user_"+profile.ID, &stored) {
		t.Fatal("profile should be persisted under its namespaced key")
	}
	if stored.Name != "Alice" {
		t.Errorf("stored name = %q", stored.Name)
	}

	dir := s.Directory()
	if len(dir.List()) != 1 {
		t.Errorf("directory = %d entries, want 1", len(dir.List()))
	}
	if dir.LastUserID() != profile.ID {
		t.Error("last user pointer should be set")
	}
}

func TestLoginUnknownProfile(t *testing.T) {
	s, _ := newTestSession(t)

	err := s.Login("nope")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("err = %v, want ErrProfileNotFound", err)
	}
	if s.LoggedIn() {
		t.Error("failed login should leave the session logged out")
	}
}

func TestLoginReloadsPersistedState(t *testing.T) {
	s, store := newTestSession(t)
	profile := s.Register("Alice", "")

	w, err := s.StartWorkout(nil, false)
	if err != nil {
		t.Fatalf("StartWorkout: %v", err)
	}
	if _, err := s.FinishWorkout(nil); err != nil {
		t.Fatalf("FinishWorkout: %v", err)
	}
	s.Logout()

	if s.Directory().LastUserID() != "" {
		t.Error("logout should clear the last user pointer")
	}

	// A fresh session over the same store sees everything.
	fresh := NewSession(store)
	if err := fresh.Login(profile.ID); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if len(fresh.Workouts()) != 1 || fresh.Workouts()[0].ID != w.ID {
		t.Errorf("history not reloaded: %+v", fresh.Workouts())
	}
	if fresh.ActiveWorkout() != nil {
		t.Error("finished workout should not reload as active")
	}
	if fresh.Directory().LastUserID() != profile.ID {
		t.Error("login should reset the last user pointer")
	}
}

func TestStartWorkoutGuard(t *testing.T) {
	s, _ := newTestSession(t)
	s.Register("Alice", "")

	if _, err := s.StartWorkout(nil, false); err != nil {
		t.Fatalf("first start: %v", err)
	}
	if _, err := s.StartWorkout(nil, false); !errors.Is(err, ErrWorkoutInProgress) {
		t.Fatalf("second start err = %v, want ErrWorkoutInProgress", err)
	}

	replaced, err := s.StartWorkout(nil, true)
	if err != nil {
		t.Fatalf("forced start: %v", err)
	}
	if s.ActiveWorkout().ID != replaced.ID {
		t.Error("forced start should replace the active workout")
	}
	if len(s.Workouts()) != 0 {
		t.Error("the replaced workout must not leak into history")
	}
}

func TestStartWorkoutFromTemplateStampsLastUsed(t *testing.T) {
	s, _ := newTestSession(t)
	s.Register("Alice", "")

	tmpl := s.Templates()[0]
	if tmpl.LastUsed != nil {
		t.Fatal("starter template should begin unused")
	}

	w, err := s.StartWorkout(models.TemplateSource(&tmpl), false)
	if err != nil {
		t.Fatalf("StartWorkout: %v", err)
	}
	if w.TemplateID != tmpl.ID {
		t.Errorf("TemplateID = %q, want %q", w.TemplateID, tmpl.ID)
	}

	stamped, ok := s.Template(tmpl.ID)
	if !ok || stamped.LastUsed == nil {
		t.Error("starting from a template should stamp lastUsed")
	}
}

func TestFinishWorkoutMovesToHistory(t *testing.T) {
	s, store := newTestSession(t)
	profile := s.Register("Alice", "")

	w, _ := s.StartWorkout(nil, false)
	w.Exercises = append(w.Exercises, models.NewExercise(models.ExerciseDefinition{
		Name: "Push-Up", Type: models.ExerciseBodyweight,
	}))
	if err := s.UpdateActiveWorkout(w); err != nil {
		t.Fatalf("UpdateActiveWorkout: %v", err)
	}

	finished, err := s.FinishWorkout(nil)
	if err != nil {
		t.Fatalf("FinishWorkout: %v", err)
	}
	if finished.EndTime == nil {
		t.Fatal("finished workout should have an end time")
	}
	if finished.EndTime.Before(finished.StartTime) {
		t.Errorf("endTime %v precedes startTime %v", finished.EndTime, finished.StartTime)
	}
	if s.ActiveWorkout() != nil {
		t.Error("active slot should be cleared")
	}
	if len(s.Workouts()) != 1 || s.Workouts()[0].ID != w.ID {
		t.Errorf("history = %+v", s.Workouts())
	}

	if store.Has("active_" + profile.ID) {
		t.Error("active key should be removed from storage")
	}
	var history []models.WorkoutLog
	if !store.Read("workouts_"+profile.ID, &history) || len(history) != 1 {
		t.Error("history should be persisted")
	}
}

func TestFinishWorkoutPrependsNewestFirst(t *testing.T) {
	s, _ := newTestSession(t)
	s.Register("Alice", "")

	first, _ := s.StartWorkout(nil, false)
	s.FinishWorkout(nil)
	second, _ := s.StartWorkout(nil, false)
	s.FinishWorkout(nil)

	got := s.Workouts()
	if len(got) != 2 || got[0].ID != second.ID || got[1].ID != first.ID {
		t.Errorf("history should be newest first: %v, %v", got[0].ID, got[1].ID)
	}
}

func TestCancelWorkout(t *testing.T) {
	s, _ := newTestSession(t)
	s.Register("Alice", "")

	if err := s.CancelWorkout(); !errors.Is(err, ErrNoActiveWorkout) {
		t.Fatalf("cancel without active err = %v, want ErrNoActiveWorkout", err)
	}

	s.StartWorkout(nil, false)
	if err := s.CancelWorkout(); err != nil {
		t.Fatalf("CancelWorkout: %v", err)
	}
	if s.ActiveWorkout() != nil {
		t.Error("cancel should clear the active workout")
	}
	if len(s.Workouts()) != 0 {
		t.Error("cancelled workouts must not reach history")
	}
}

func TestTemplateUpsertAndDelete(t *testing.T) {
	s, _ := newTestSession(t)
	s.Register("Alice", "")
	base := len(s.Templates())

	tmpl := *models.NewWorkoutTemplate("Leg Day")
	if err := s.SaveTemplate(tmpl); err != nil {
		t.Fatalf("SaveTemplate: %v", err)
	}
	if len(s.Templates()) != base+1 {
		t.Fatalf("templates = %d, want %d", len(s.Templates()), base+1)
	}

	tmpl.Name = "Leg Day v2"
	if err := s.SaveTemplate(tmpl); err != nil {
		t.Fatalf("SaveTemplate update: %v", err)
	}
	if len(s.Templates()) != base+1 {
		t.Error("saving the same id should replace, not append")
	}
	got, _ := s.Template(tmpl.ID)
	if got.Name != "Leg Day v2" {
		t.Errorf("Name = %q", got.Name)
	}

	if err := s.DeleteTemplate(tmpl.ID); err != nil {
		t.Fatalf("DeleteTemplate: %v", err)
	}
	if _, ok := s.Template(tmpl.ID); ok {
		t.Error("deleted template still present")
	}

	// Deleting an unknown id is a no-op.
	if err := s.DeleteTemplate("nope"); err != nil {
		t.Errorf("DeleteTemplate unknown: %v", err)
	}
}

func TestCustomExerciseAddAndUpdate(t *testing.T) {
	s, _ := newTestSession(t)
	s.Register("Alice", "")

	def := models.ExerciseDefinition{Name: "Sled Push", Type: models.ExerciseWeight}
	if err := s.AddCustomExercise(def); err != nil {
		t.Fatalf("AddCustomExercise: %v", err)
	}

	// Same name adds nothing, case-insensitively.
	dup := models.ExerciseDefinition{Name: "SLED PUSH", Type: models.ExerciseCardio}
	if err := s.AddCustomExercise(dup); err != nil {
		t.Fatalf("AddCustomExercise dup: %v", err)
	}
	if len(s.CustomExercises()) != 1 {
		t.Fatalf("customs = %d, want 1", len(s.CustomExercises()))
	}
	if s.CustomExercises()[0].Type != models.ExerciseWeight {
		t.Error("Add must not overwrite an existing entry")
	}

	// Update does overwrite.
	if err := s.UpdateCustomExercise(dup); err != nil {
		t.Fatalf("UpdateCustomExercise: %v", err)
	}
	if len(s.CustomExercises()) != 1 {
		t.Fatalf("customs = %d, want 1", len(s.CustomExercises()))
	}
	if s.CustomExercises()[0].Type != models.ExerciseCardio {
		t.Error("Update should overwrite by name")
	}

	// Customs shadow built-ins in the merged catalog.
	if err := s.UpdateCustomExercise(models.ExerciseDefinition{
		Name: "Push-Up", Type: models.ExerciseBodyweight, TrackingMode: models.TrackTimeOnly,
	}); err != nil {
		t.Fatal(err)
	}
	for _, d := range s.Catalog() {
		if d.Name == "Push-Up" && d.Mode() != models.TrackTimeOnly {
			t.Error("catalog should surface the custom override")
		}
	}
}

func TestUpdateProfileKeepsID(t *testing.T) {
	s, _ := newTestSession(t)
	profile := s.Register("Alice", "")

	edited := *profile
	edited.ID = "forged"
	edited.Name = "Alice B"
	edited.UnitSystem = models.UnitMetric

	if err := s.UpdateProfile(edited); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if s.User().ID != profile.ID {
		t.Error("profile id must not change")
	}
	if s.User().Name != "Alice B" || s.User().UnitSystem != models.UnitMetric {
		t.Errorf("edits lost: %+v", s.User())
	}
}

func TestOperationsRequireLogin(t *testing.T) {
	s, _ := newTestSession(t)

	if _, err := s.StartWorkout(nil, false); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("StartWorkout err = %v", err)
	}
	if _, err := s.FinishWorkout(nil); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("FinishWorkout err = %v", err)
	}
	if err := s.SaveTemplate(models.WorkoutTemplate{}); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("SaveTemplate err = %v", err)
	}
	if _, err := s.ExportData(); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("ExportData err = %v", err)
	}
}

func TestTwoProfilesAreIsolated(t *testing.T) {
	s, store := newTestSession(t)

	alice := s.Register("Alice", "")
	s.StartWorkout(nil, false)
	s.FinishWorkout(nil)

	bob := s.Register("Bob", "")
	if len(s.Workouts()) != 0 {
		t.Error("Bob should not see Alice's history")
	}

	fresh := NewSession(store)
	if err := fresh.Login(alice.ID); err != nil {
		t.Fatalf("Login alice: %v", err)
	}
	if len(fresh.Workouts()) != 1 {
		t.Error("Alice's history should survive Bob's registration")
	}

	if len(fresh.Directory().List()) != 2 {
		t.Errorf("directory = %d entries, want 2", len(fresh.Directory().List()))
	}
	_ = bob
}
