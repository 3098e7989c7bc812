// ABOUTME: Tests for user profiles and unit systems.
// ABOUTME: Covers defaults and unit labels per system.
package models

import (
	"testing"
	"time"
)

func TestNewUserProfileDefaults(t *testing.T) {
	p := NewUserProfile("Alice", "a@x.com")
	if p.ID == "" {
		t.Error("profile should get a generated id")
	}
	if p.Name != "Alice" || p.Email != "a@x.com" {
		t.Errorf("unexpected profile: %+v", p)
	}
	if p.UnitSystem != UnitImperial {
		t.Errorf("UnitSystem = %q, want %q", p.UnitSystem, UnitImperial)
	}
}

func TestUnitLabels(t *testing.T) {
	imperial := &UserProfile{UnitSystem: UnitImperial}
	metric := &UserProfile{UnitSystem: UnitMetric}

	if imperial.WeightUnit() != "lbs" || imperial.DistanceUnit() != "mi" {
		t.Errorf("imperial units = %q/%q", imperial.WeightUnit(), imperial.DistanceUnit())
	}
	if metric.WeightUnit() != "kg" || metric.DistanceUnit() != "km" {
		t.Errorf("metric units = %q/%q", metric.WeightUnit(), metric.DistanceUnit())
	}
}

func TestProfileSummary(t *testing.T) {
	p := NewUserProfile("Bob", "")
	at := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	s := p.Summary(at)
	if s.ID != p.ID || s.Name != "Bob" {
		t.Errorf("unexpected summary: %+v", s)
	}
	if !s.LastActive.Equal(at) {
		t.Errorf("LastActive = %v, want %v", s.LastActive, at)
	}
}
