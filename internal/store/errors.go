// ABOUTME: Sentinel errors returned by the session controller.
package store

import "errors"

var (
	// ErrNotLoggedIn is returned by mutations invoked without a bound user.
	ErrNotLoggedIn = errors.New("no user is logged in")

	// ErrProfileNotFound is returned by Login when no profile exists at the
	// given id. The session stays logged out.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrNoActiveWorkout is returned when cancel/finish find no workout in
	// progress.
	ErrNoActiveWorkout = errors.New("no active workout")

	// ErrWorkoutInProgress is returned by StartWorkout when an unfinished
	// workout exists and force was not set.
	ErrWorkoutInProgress = errors.New("a workout is already in progress")
)
