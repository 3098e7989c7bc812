// ABOUTME: Exercise definitions, exercise instances, and set data.
// ABOUTME: Tracking mode decides which set fields are meaningful.
package models

import "github.com/google/uuid"

// ExerciseType classifies how an exercise is performed.
type ExerciseType string

const (
	ExerciseWeight     ExerciseType = "Weight Training"
	ExerciseCardio     ExerciseType = "Cardio"
	ExerciseBodyweight ExerciseType = "Bodyweight"
)

// AllExerciseTypes returns all valid exercise types.
var AllExerciseTypes = []ExerciseType{ExerciseWeight, ExerciseCardio, ExerciseBodyweight}

// IsValidExerciseType checks if a string is a valid exercise type.
func IsValidExerciseType(s string) bool {
	for _, et := range AllExerciseTypes {
		if string(et) == s {
			return true
		}
	}
	return false
}

// TrackingMode selects which of weight/reps/time/distance a set records.
type TrackingMode string

const (
	TrackWeightReps   TrackingMode = "weight_reps"
	TrackRepsOnly     TrackingMode = "reps_only"
	TrackTimeDistance TrackingMode = "time_distance"
	TrackTimeOnly     TrackingMode = "time_only"
)

// IsValidTrackingMode checks if a string is a valid tracking mode.
func IsValidTrackingMode(s string) bool {
	switch TrackingMode(s) {
	case TrackWeightReps, TrackRepsOnly, TrackTimeDistance, TrackTimeOnly:
		return true
	}
	return false
}

// DefaultTrackingMode returns the tracking mode implied by an exercise type
// when a definition does not set one explicitly.
func DefaultTrackingMode(t ExerciseType) TrackingMode {
	switch t {
	case ExerciseCardio:
		return TrackTimeDistance
	case ExerciseBodyweight:
		return TrackRepsOnly
	default:
		return TrackWeightReps
	}
}

// ExerciseDefinition is a catalog entry: a built-in or a per-user custom
// exercise, keyed by case-insensitive name. Customs shadow built-ins of
// the same name.
type ExerciseDefinition struct {
	Name         string       `json:"name"`
	Type         ExerciseType `json:"type"`
	Target       string       `json:"target"`
	Description  string       `json:"description,omitempty"`
	TrackingMode TrackingMode `json:"trackingMode,omitempty"`
}

// Mode returns the definition's tracking mode, falling back to the default
// for its type.
func (d ExerciseDefinition) Mode() TrackingMode {
	if d.TrackingMode != "" {
		return d.TrackingMode
	}
	return DefaultTrackingMode(d.Type)
}

// SetData is a single logged set. Fields that do not apply to the owning
// exercise's tracking mode stay nil and are omitted when persisted.
type SetData struct {
	ID        string   `json:"id"`
	Weight    *float64 `json:"weight,omitempty"`
	Reps      *int     `json:"reps,omitempty"`
	Distance  *float64 `json:"distance,omitempty"`
	Time      *float64 `json:"time,omitempty"`
	Completed bool     `json:"completed"`
}

// NewSet creates an empty set with a generated id.
func NewSet() SetData {
	return SetData{ID: uuid.NewString()}
}

// WithWeight sets the weight field.
func (s SetData) WithWeight(w float64) SetData {
	s.Weight = &w
	return s
}

// WithReps sets the reps field.
func (s SetData) WithReps(r int) SetData {
	s.Reps = &r
	return s
}

// WithDistance sets the distance field.
func (s SetData) WithDistance(d float64) SetData {
	s.Distance = &d
	return s
}

// WithTime sets the time field (minutes).
func (s SetData) WithTime(t float64) SetData {
	s.Time = &t
	return s
}

// Exercise is an instance of a definition inside a template or log, with
// its own id and logged sets.
type Exercise struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         ExerciseType `json:"type"`
	Target       string       `json:"target"`
	Description  string       `json:"description,omitempty"`
	TrackingMode TrackingMode `json:"trackingMode,omitempty"`
	Sets         []SetData    `json:"sets"`
}

// NewExercise instantiates a definition with a fresh id and no sets.
func NewExercise(def ExerciseDefinition) Exercise {
	return Exercise{
		ID:           uuid.NewString(),
		Name:         def.Name,
		Type:         def.Type,
		Target:       def.Target,
		Description:  def.Description,
		TrackingMode: def.TrackingMode,
		Sets:         []SetData{},
	}
}

// Mode returns the instance's tracking mode, falling back to the default
// for its type.
func (e Exercise) Mode() TrackingMode {
	if e.TrackingMode != "" {
		return e.TrackingMode
	}
	return DefaultTrackingMode(e.Type)
}

// Definition projects the instance back to a catalog definition.
func (e Exercise) Definition() ExerciseDefinition {
	return ExerciseDefinition{
		Name:         e.Name,
		Type:         e.Type,
		Target:       e.Target,
		Description:  e.Description,
		TrackingMode: e.TrackingMode,
	}
}
