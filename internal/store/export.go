// ABOUTME: Backup and restore of the logged-in user's data.
// ABOUTME: JSON is the canonical round-trip format; YAML is for reading.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harperreed/irontrack/internal/models"
)

// ExportDocument is the backup document: the user's profile, workout
// history, and templates. Custom exercises are not included. On import,
// absent fields leave the corresponding stored data untouched.
type ExportDocument struct {
	User      *models.UserProfile      `json:"user,omitempty"`
	Workouts  []models.WorkoutLog      `json:"workouts,omitempty"`
	Templates []models.WorkoutTemplate `json:"templates,omitempty"`
}

// ExportData serializes the current user's data to an indented JSON
// document suitable for ImportData.
func (s *Session) ExportData() ([]byte, error) {
	if s.user == nil {
		return nil, ErrNotLoggedIn
	}
	doc := ExportDocument{
		User:      s.user,
		Workouts:  s.workouts,
		Templates: s.templates,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ImportData parses a backup document and overwrites the current user's
// stored profile, workouts, and templates by field presence, then reloads
// the in-memory state through the login path. The imported profile's id is
// forced to the current user. Malformed JSON is reported to the caller;
// nothing is written in that case.
func (s *Session) ImportData(data []byte) error {
	if s.user == nil {
		return ErrNotLoggedIn
	}

	var doc ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse import document: %w", err)
	}

	userID := s.user.ID
	if doc.User != nil {
		doc.User.ID = userID
		s.store.Write(userKey(userID), doc.User)
	}
	if doc.Workouts != nil {
		s.store.Write(workoutsKey(userID), doc.Workouts)
	}
	if doc.Templates != nil {
		s.store.Write(templatesKey(userID), doc.Templates)
	}

	return s.Login(userID)
}

// yamlSet is the human-readable projection of a logged set.
type yamlSet struct {
	Weight    *float64 `yaml:"weight,omitempty"`
	Reps      *int     `yaml:"reps,omitempty"`
	Distance  *float64 `yaml:"distance,omitempty"`
	Time      *float64 `yaml:"time,omitempty"`
	Completed bool     `yaml:"completed"`
}

type yamlExercise struct {
	Name   string    `yaml:"name"`
	Type   string    `yaml:"type"`
	Target string    `yaml:"target"`
	Sets   []yamlSet `yaml:"sets,omitempty"`
}

type yamlWorkout struct {
	Name      string         `yaml:"name"`
	Date      string         `yaml:"date"`
	Duration  string         `yaml:"duration,omitempty"`
	Exercises []yamlExercise `yaml:"exercises"`
}

type yamlTemplate struct {
	Name      string   `yaml:"name"`
	Exercises []string `yaml:"exercises"`
	LastUsed  string   `yaml:"last_used,omitempty"`
}

// ExportYAML renders the current user's data as human-readable YAML. This
// format is for reading and sharing; use ExportData for backups.
func (s *Session) ExportYAML() ([]byte, error) {
	if s.user == nil {
		return nil, ErrNotLoggedIn
	}

	out := struct {
		User      string         `yaml:"user"`
		Units     string         `yaml:"units"`
		Workouts  []yamlWorkout  `yaml:"workouts"`
		Templates []yamlTemplate `yaml:"templates"`
	}{
		User:  s.user.Name,
		Units: string(s.user.UnitSystem),
	}

	for _, w := range s.workouts {
		yw := yamlWorkout{
			Name: w.Name,
			Date: w.Date.Format("2006-01-02 15:04"),
		}
		if w.EndTime != nil {
			yw.Duration = w.EndTime.Sub(w.StartTime).Round(time.Minute).String()
		}
		for _, e := range w.Exercises {
			ye := yamlExercise{Name: e.Name, Type: string(e.Type), Target: e.Target}
			for _, set := range e.Sets {
				ye.Sets = append(ye.Sets, yamlSet{
					Weight:    set.Weight,
					Reps:      set.Reps,
					Distance:  set.Distance,
					Time:      set.Time,
					Completed: set.Completed,
				})
			}
			yw.Exercises = append(yw.Exercises, ye)
		}
		out.Workouts = append(out.Workouts, yw)
	}

	for _, t := range s.templates {
		yt := yamlTemplate{Name: t.Name}
		for _, e := range t.Exercises {
			yt.Exercises = append(yt.Exercises, e.Name)
		}
		if t.LastUsed != nil {
			yt.LastUsed = t.LastUsed.Format("2006-01-02")
		}
		out.Templates = append(out.Templates, yt)
	}

	return yaml.Marshal(out)
}
