// ABOUTME: Session controller holding the active user's in-memory state.
// ABOUTME: Every mutation writes through to the store before returning.
package store

import (
	"strings"
	"time"

	"github.com/harperreed/irontrack/internal/kv"
	"github.com/harperreed/irontrack/internal/models"
)

// Session mediates all reads and writes between the application and the
// storage adapter for the currently logged-in user. A session is either
// logged out (no user bound, empty collections) or logged in, with every
// collection loaded from the user's namespaced keys.
//
// The store is injected at construction so tests can run against the
// in-memory backend.
type Session struct {
	store *kv.Store
	dir   *Directory

	user      *models.UserProfile
	workouts  []models.WorkoutLog
	templates []models.WorkoutTemplate
	custom    []models.ExerciseDefinition
	active    *models.WorkoutLog
}

// NewSession creates a logged-out session over the given store.
func NewSession(store *kv.Store) *Session {
	return &Session{
		store: store,
		dir:   NewDirectory(store),
	}
}

// Directory returns the profile directory.
func (s *Session) Directory() *Directory { return s.dir }

// LoggedIn reports whether a user is bound to the session.
func (s *Session) LoggedIn() bool { return s.user != nil }

// User returns the logged-in profile, or nil.
func (s *Session) User() *models.UserProfile { return s.user }

// Workouts returns the workout history, most recent first.
func (s *Session) Workouts() []models.WorkoutLog { return s.workouts }

// Templates returns the user's workout templates.
func (s *Session) Templates() []models.WorkoutTemplate { return s.templates }

// CustomExercises returns the user's custom exercise definitions.
func (s *Session) CustomExercises() []models.ExerciseDefinition { return s.custom }

// ActiveWorkout returns the in-progress workout, or nil.
func (s *Session) ActiveWorkout() *models.WorkoutLog { return s.active }

// Catalog returns the built-in exercises with the user's customs shadowing
// same-named entries.
func (s *Session) Catalog() []models.ExerciseDefinition {
	return models.MergedCatalog(s.custom)
}

// Template finds a template by id.
func (s *Session) Template(id string) (*models.WorkoutTemplate, bool) {
	for i := range s.templates {
		if s.templates[i].ID == id {
			return &s.templates[i], true
		}
	}
	return nil, false
}

// Workout finds a history log by id.
func (s *Session) Workout(id string) (*models.WorkoutLog, bool) {
	for i := range s.workouts {
		if s.workouts[i].ID == id {
			return &s.workouts[i], true
		}
	}
	return nil, false
}

// Register creates a fresh profile with the starter template set, records
// it in the directory, and logs it in. Id uniqueness comes from the
// generator's keyspace; no directory check is performed.
func (s *Session) Register(name, email string) *models.UserProfile {
	profile := models.NewUserProfile(name, email)
	starter := models.StarterTemplates()

	s.store.Write(userKey(profile.ID), profile)
	s.store.Write(templatesKey(profile.ID), starter)

	now := time.Now()
	s.dir.Upsert(profile.Summary(now))
	s.dir.SetLastUserID(profile.ID)

	s.user = profile
	s.workouts = []models.WorkoutLog{}
	s.templates = starter
	s.custom = []models.ExerciseDefinition{}
	s.active = nil

	return profile
}

// Login binds the session to an existing profile and loads its collections.
// When no profile exists at the id it returns ErrProfileNotFound and the
// session stays logged out.
func (s *Session) Login(userID string) error {
	var profile models.UserProfile
	if !s.store.Read(userKey(userID), &profile) {
		return ErrProfileNotFound
	}

	workouts := []models.WorkoutLog{}
	s.store.Read(workoutsKey(userID), &workouts)

	templates := []models.WorkoutTemplate{}
	s.store.Read(templatesKey(userID), &templates)

	custom := []models.ExerciseDefinition{}
	s.store.Read(customExercisesKey(userID), &custom)

	var active *models.WorkoutLog
	var loaded models.WorkoutLog
	if s.store.Read(activeKey(userID), &loaded) {
		active = &loaded
	}

	s.dir.Upsert(profile.Summary(time.Now()))
	s.dir.SetLastUserID(userID)

	s.user = &profile
	s.workouts = workouts
	s.templates = templates
	s.custom = custom
	s.active = active

	return nil
}

// Logout clears the in-memory state and the last-user pointer. Persisted
// data is untouched.
func (s *Session) Logout() {
	s.dir.ClearLastUserID()
	s.user = nil
	s.workouts = nil
	s.templates = nil
	s.custom = nil
	s.active = nil
}

// StartWorkout begins a new workout seeded from source (which may be nil
// for an empty workout). When an unfinished workout exists the call fails
// with ErrWorkoutInProgress unless force is set; force replaces it.
func (s *Session) StartWorkout(source *models.WorkoutSource, force bool) (*models.WorkoutLog, error) {
	if s.user == nil {
		return nil, ErrNotLoggedIn
	}
	if s.active != nil && !force {
		return nil, ErrWorkoutInProgress
	}

	now := time.Now()
	w := models.NewWorkoutFrom(source, now)

	if w.TemplateID != "" {
		s.touchTemplate(w.TemplateID, now)
	}

	s.active = w
	s.store.Write(activeKey(s.user.ID), w)
	return w, nil
}

// touchTemplate stamps a template's lastUsed and persists the list.
func (s *Session) touchTemplate(templateID string, now time.Time) {
	for i := range s.templates {
		if s.templates[i].ID == templateID {
			s.templates[i].LastUsed = &now
			s.store.Write(templatesKey(s.user.ID), s.templates)
			return
		}
	}
}

// UpdateActiveWorkout replaces the active workout wholesale.
func (s *Session) UpdateActiveWorkout(w *models.WorkoutLog) error {
	if s.user == nil {
		return ErrNotLoggedIn
	}
	if w == nil {
		return ErrNoActiveWorkout
	}
	s.active = w
	s.store.Write(activeKey(s.user.ID), w)
	return nil
}

// CancelWorkout discards the active workout and clears its storage slot.
func (s *Session) CancelWorkout() error {
	if s.user == nil {
		return ErrNotLoggedIn
	}
	if s.active == nil {
		return ErrNoActiveWorkout
	}
	s.active = nil
	s.store.Remove(activeKey(s.user.ID))
	return nil
}

// FinishWorkout stamps the end time on final (or the current active
// workout when final is nil), prepends it to history, and clears the
// active slot. The history write and slot clear happen before the
// in-memory update: this path also runs during teardown, and persisting
// first guarantees the finished workout survives even if the process ends
// right after.
func (s *Session) FinishWorkout(final *models.WorkoutLog) (*models.WorkoutLog, error) {
	if s.user == nil {
		return nil, ErrNotLoggedIn
	}
	target := final
	if target == nil {
		target = s.active
	}
	if target == nil {
		return nil, ErrNoActiveWorkout
	}

	now := time.Now()
	finished := *target
	finished.EndTime = &now

	updated := make([]models.WorkoutLog, 0, len(s.workouts)+1)
	updated = append(updated, finished)
	updated = append(updated, s.workouts...)

	s.store.Write(workoutsKey(s.user.ID), updated)
	s.store.Remove(activeKey(s.user.ID))

	s.workouts = updated
	s.active = nil
	return &finished, nil
}

// SaveTemplate upserts a template by id.
func (s *Session) SaveTemplate(t models.WorkoutTemplate) error {
	if s.user == nil {
		return ErrNotLoggedIn
	}
	replaced := false
	for i := range s.templates {
		if s.templates[i].ID == t.ID {
			s.templates[i] = t
			replaced = true
			break
		}
	}
	if !replaced {
		s.templates = append(s.templates, t)
	}
	s.store.Write(templatesKey(s.user.ID), s.templates)
	return nil
}

// DeleteTemplate removes a template by id. Unknown ids are a no-op.
func (s *Session) DeleteTemplate(id string) error {
	if s.user == nil {
		return ErrNotLoggedIn
	}
	kept := s.templates[:0]
	for _, t := range s.templates {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.templates = kept
	s.store.Write(templatesKey(s.user.ID), s.templates)
	return nil
}

// AddCustomExercise adds a custom definition. A same-named entry
// (case-insensitive) already existing makes this a no-op.
func (s *Session) AddCustomExercise(def models.ExerciseDefinition) error {
	if s.user == nil {
		return ErrNotLoggedIn
	}
	for _, c := range s.custom {
		if strings.EqualFold(c.Name, def.Name) {
			return nil
		}
	}
	s.custom = append(s.custom, def)
	s.store.Write(customExercisesKey(s.user.ID), s.custom)
	return nil
}

// UpdateCustomExercise upserts a custom definition by case-insensitive
// name, always overwriting an existing entry.
func (s *Session) UpdateCustomExercise(def models.ExerciseDefinition) error {
	if s.user == nil {
		return ErrNotLoggedIn
	}
	replaced := false
	for i := range s.custom {
		if strings.EqualFold(s.custom[i].Name, def.Name) {
			s.custom[i] = def
			replaced = true
			break
		}
	}
	if !replaced {
		s.custom = append(s.custom, def)
	}
	s.store.Write(customExercisesKey(s.user.ID), s.custom)
	return nil
}

// UpdateProfile replaces the logged-in user's profile. The id cannot
// change.
func (s *Session) UpdateProfile(p models.UserProfile) error {
	if s.user == nil {
		return ErrNotLoggedIn
	}
	p.ID = s.user.ID
	s.user = &p
	s.store.Write(userKey(p.ID), &p)
	return nil
}
