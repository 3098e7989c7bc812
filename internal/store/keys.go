// ABOUTME: Storage key derivation for the per-profile namespacing scheme.
// ABOUTME: Two global keys plus five namespaced keys per user id.
package store

// Global keys, not namespaced.
const (
	keyProfiles = "profiles"
	keyLastUser = "last_user_id"
)

// Legacy pre-multi-user keys, consumed once by MigrateLegacy.
const (
	legacyUserKey      = "user"
	legacyWorkoutsKey  = "workouts"
	legacyTemplatesKey = "templates"
	legacyActiveKey    = "active_workout"
)

func userKey(userID string) string            { return "user_" + userID }
func workoutsKey(userID string) string        { return "workouts_" + userID }
func templatesKey(userID string) string       { return "templates_" + userID }
func customExercisesKey(userID string) string { return "custom_exercises_" + userID }
func activeKey(userID string) string          { return "active_" + userID }
