// ABOUTME: One-time migration of pre-multi-user data to a namespaced profile.
// ABOUTME: Detects the fixed legacy keys, rewrites, deletes, cannot run twice.
package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/irontrack/internal/kv"
	"github.com/harperreed/irontrack/internal/models"
)

// MigrateSummary reports what the legacy migration moved.
type MigrateSummary struct {
	UserID    string
	Name      string
	Workouts  int
	Templates int
}

// MigrateLegacy moves single-user data stored under the fixed legacy keys
// into a freshly generated profile's namespaced keys, overwrites the
// profile directory with that single profile, and deletes the legacy keys.
// It returns nil when no legacy data exists, which is also why a second
// run is a no-op. The caller is expected to log the new user in
// immediately.
//
// Legacy workouts or templates that were separately cleared migrate as
// empty collections; that is accepted, not an error.
func MigrateLegacy(store *kv.Store) *MigrateSummary {
	if !store.Has(legacyUserKey) {
		return nil
	}

	var profile models.UserProfile
	store.Read(legacyUserKey, &profile)

	workouts := []models.WorkoutLog{}
	store.Read(legacyWorkoutsKey, &workouts)

	templates := []models.WorkoutTemplate{}
	store.Read(legacyTemplatesKey, &templates)

	userID := uuid.NewString()
	profile.ID = userID
	if profile.UnitSystem == "" {
		profile.UnitSystem = models.UnitImperial
	}

	store.Write(userKey(userID), &profile)
	store.Write(workoutsKey(userID), workouts)
	store.Write(templatesKey(userID), templates)

	dir := NewDirectory(store)
	dir.Replace([]models.UserSummary{profile.Summary(time.Now())})

	store.Remove(legacyUserKey)
	store.Remove(legacyWorkoutsKey)
	store.Remove(legacyTemplatesKey)
	store.Remove(legacyActiveKey)

	return &MigrateSummary{
		UserID:    userID,
		Name:      profile.Name,
		Workouts:  len(workouts),
		Templates: len(templates),
	}
}
