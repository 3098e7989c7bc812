// ABOUTME: Tests for CLI helper functions.
// ABOUTME: Tests parseSet value parsing, truncate, and padRight.
package main

import (
	"testing"

	"github.com/harperreed/irontrack/internal/models"
)

func TestParseSet(t *testing.T) {
	tests := []struct {
		name    string
		mode    models.TrackingMode
		args    []string
		wantErr bool
		check   func(t *testing.T, s models.SetData)
	}{
		{
			name: "weight and reps",
			mode: models.TrackWeightReps,
			args: []string{"135", "8"},
			check: func(t *testing.T, s models.SetData) {
				if s.Weight == nil || *s.Weight != 135 {
					t.Errorf("Weight = %v", s.Weight)
				}
				if s.Reps == nil || *s.Reps != 8 {
					t.Errorf("Reps = %v", s.Reps)
				}
			},
		},
		{
			name:    "weight mode missing reps",
			mode:    models.TrackWeightReps,
			args:    []string{"135"},
			wantErr: true,
		},
		{
			name:    "weight mode bad number",
			mode:    models.TrackWeightReps,
			args:    []string{"heavy", "8"},
			wantErr: true,
		},
		{
			name: "reps only",
			mode: models.TrackRepsOnly,
			args: []string{"20"},
			check: func(t *testing.T, s models.SetData) {
				if s.Reps == nil || *s.Reps != 20 {
					t.Errorf("Reps = %v", s.Reps)
				}
				if s.Weight != nil {
					t.Error("reps-only sets should not carry weight")
				}
			},
		},
		{
			name:    "reps only fractional",
			mode:    models.TrackRepsOnly,
			args:    []string{"12.5"},
			wantErr: true,
		},
		{
			name: "time and distance",
			mode: models.TrackTimeDistance,
			args: []string{"20", "5"},
			check: func(t *testing.T, s models.SetData) {
				if s.Time == nil || *s.Time != 20 {
					t.Errorf("Time = %v", s.Time)
				}
				if s.Distance == nil || *s.Distance != 5 {
					t.Errorf("Distance = %v", s.Distance)
				}
			},
		},
		{
			name: "time distance without distance",
			mode: models.TrackTimeDistance,
			args: []string{"20"},
			check: func(t *testing.T, s models.SetData) {
				if s.Time == nil || *s.Time != 20 {
					t.Errorf("Time = %v", s.Time)
				}
				if s.Distance != nil {
					t.Error("distance should be omitted when not given")
				}
			},
		},
		{
			name: "time only",
			mode: models.TrackTimeOnly,
			args: []string{"2.5"},
			check: func(t *testing.T, s models.SetData) {
				if s.Time == nil || *s.Time != 2.5 {
					t.Errorf("Time = %v", s.Time)
				}
			},
		},
		{
			name:    "time only bad number",
			mode:    models.TrackTimeOnly,
			args:    []string{"forever"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := parseSet(tt.mode, tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSet: %v", err)
			}
			if !set.Completed {
				t.Error("parsed sets should be marked completed")
			}
			if tt.check != nil {
				tt.check(t, set)
			}
		})
	}
}

func TestShortID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"uuid", "5f2b9c1a-4f7e-4a31-9d6c-000000000000", "5f2b9c1a"},
		{"legacy seed id", "t1", "t1"},
		{"exactly eight", "abcdefgh", "abcdefgh"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shortID(tt.input); got != tt.want {
				t.Errorf("shortID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten!", 12, "exactly ten!"},
		{"this is too long", 10, "this is..."},
		{"abc", 2, "ab"},
	}
	for _, tt := range tests {
		if got := truncate(tt.input, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Errorf("padRight should not truncate, got %q", got)
	}
}
