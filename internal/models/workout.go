// ABOUTME: WorkoutTemplate and WorkoutLog models plus the workout source.
// ABOUTME: A log without an end time is the single active workout.
package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutTemplate is a reusable, set-less exercise list used to seed new
// workouts.
type WorkoutTemplate struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
	LastUsed  *time.Time `json:"lastUsed,omitempty"`
}

// NewWorkoutTemplate creates an empty template with a generated id.
func NewWorkoutTemplate(name string) *WorkoutTemplate {
	return &WorkoutTemplate{
		ID:        uuid.NewString(),
		Name:      name,
		Exercises: []Exercise{},
	}
}

// WorkoutLog is a logged (or in-progress) workout session. EndTime absent
// means the log is the active workout; set, it is terminal history.
type WorkoutLog struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Date       time.Time  `json:"date"`
	StartTime  time.Time  `json:"startTime"`
	EndTime    *time.Time `json:"endTime,omitempty"`
	Exercises  []Exercise `json:"exercises"`
	TemplateID string     `json:"templateId,omitempty"`
}

// Finished reports whether the log has been completed.
func (w *WorkoutLog) Finished() bool {
	return w.EndTime != nil
}

// Duration returns the elapsed time of the workout, up to now for an
// unfinished one.
func (w *WorkoutLog) Duration() time.Duration {
	if w.EndTime != nil {
		return w.EndTime.Sub(w.StartTime)
	}
	return time.Since(w.StartTime)
}

// SourceKind tags what a new workout is seeded from.
type SourceKind string

const (
	SourceTemplate SourceKind = "template"
	SourceLog      SourceKind = "log"
)

// WorkoutSource is an explicit tagged seed for a new workout: either a
// template or a prior log.
type WorkoutSource struct {
	Kind     SourceKind
	Template *WorkoutTemplate
	Log      *WorkoutLog
}

// TemplateSource wraps a template as a workout source.
func TemplateSource(t *WorkoutTemplate) *WorkoutSource {
	return &WorkoutSource{Kind: SourceTemplate, Template: t}
}

// LogSource wraps a prior log as a workout source.
func LogSource(l *WorkoutLog) *WorkoutSource {
	return &WorkoutSource{Kind: SourceLog, Log: l}
}

// Name returns the seed's display name.
func (s *WorkoutSource) Name() string {
	if s == nil {
		return ""
	}
	if s.Kind == SourceTemplate && s.Template != nil {
		return s.Template.Name
	}
	if s.Log != nil {
		return s.Log.Name
	}
	return ""
}

// Exercises returns the seed's exercise list.
func (s *WorkoutSource) Exercises() []Exercise {
	if s == nil {
		return nil
	}
	if s.Kind == SourceTemplate && s.Template != nil {
		return s.Template.Exercises
	}
	if s.Log != nil {
		return s.Log.Exercises
	}
	return nil
}

// NewWorkoutFrom creates a fresh workout log seeded from source. Exercises
// are deep-copied with their sets cleared; TemplateID is recorded only for
// template sources. A nil source yields an empty "New Workout".
func NewWorkoutFrom(source *WorkoutSource, now time.Time) *WorkoutLog {
	name := "New Workout"
	if n := source.Name(); n != "" {
		name = n
	}

	w := &WorkoutLog{
		ID:        uuid.NewString(),
		Name:      name,
		Date:      now,
		StartTime: now,
		Exercises: copyExercisesWithoutSets(source.Exercises()),
	}
	if source != nil && source.Kind == SourceTemplate && source.Template != nil {
		w.TemplateID = source.Template.ID
	}
	return w
}

// copyExercisesWithoutSets deep-copies exercises, resetting every set list
// to empty. Instance ids are kept, matching the seed.
func copyExercisesWithoutSets(exercises []Exercise) []Exercise {
	out := make([]Exercise, 0, len(exercises))
	for _, e := range exercises {
		c := e
		c.Sets = []SetData{}
		out = append(out, c)
	}
	return out
}
