// ABOUTME: UserProfile and UserSummary models for local profiles.
// ABOUTME: Profiles namespace all persisted data; summaries feed the picker.
package models

import (
	"time"

	"github.com/google/uuid"
)

// UnitSystem selects display units for weights and distances.
type UnitSystem string

const (
	UnitImperial UnitSystem = "imperial"
	UnitMetric   UnitSystem = "metric"
)

// IsValidUnitSystem checks if a string is a valid unit system.
func IsValidUnitSystem(s string) bool {
	return s == string(UnitImperial) || s == string(UnitMetric)
}

// UserProfile is a registered local profile. All persisted entities are
// scoped to exactly one profile id.
type UserProfile struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	UnitSystem UnitSystem `json:"unitSystem"`
}

// NewUserProfile creates a profile with a generated id and imperial units.
func NewUserProfile(name, email string) *UserProfile {
	return &UserProfile{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		UnitSystem: UnitImperial,
	}
}

// WeightUnit returns the display unit for weights.
func (p *UserProfile) WeightUnit() string {
	if p.UnitSystem == UnitMetric {
		return "kg"
	}
	return "lbs"
}

// DistanceUnit returns the display unit for distances.
func (p *UserProfile) DistanceUnit() string {
	if p.UnitSystem == UnitMetric {
		return "km"
	}
	return "mi"
}

// UserSummary is the denormalized projection of a profile shown on the
// profile picker. Updated on every registration and login.
type UserSummary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	LastActive time.Time `json:"lastActive"`
}

// Summary builds a UserSummary for the profile with the given activity time.
func (p *UserProfile) Summary(lastActive time.Time) UserSummary {
	return UserSummary{ID: p.ID, Name: p.Name, LastActive: lastActive}
}
