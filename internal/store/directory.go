// ABOUTME: Profile directory and last-user pointer over the global keys.
// ABOUTME: Backs the profile picker; expected to stay small, no indexing.
package store

import (
	"github.com/harperreed/irontrack/internal/kv"
	"github.com/harperreed/irontrack/internal/models"
)

// Directory is the global list of known profiles plus the pointer to the
// last logged-in user.
type Directory struct {
	store *kv.Store
}

// NewDirectory creates a Directory over the given store.
func NewDirectory(store *kv.Store) *Directory {
	return &Directory{store: store}
}

// List returns all profile summaries, in stored order.
func (d *Directory) List() []models.UserSummary {
	summaries := []models.UserSummary{}
	d.store.Read(keyProfiles, &summaries)
	return summaries
}

// Upsert replaces the entry matching the summary's id, or appends it.
func (d *Directory) Upsert(summary models.UserSummary) {
	summaries := d.List()
	replaced := false
	for i := range summaries {
		if summaries[i].ID == summary.ID {
			summaries[i] = summary
			replaced = true
			break
		}
	}
	if !replaced {
		summaries = append(summaries, summary)
	}
	d.store.Write(keyProfiles, summaries)
}

// Replace overwrites the whole directory. Used by the legacy migration.
func (d *Directory) Replace(summaries []models.UserSummary) {
	d.store.Write(keyProfiles, summaries)
}

// LastUserID returns the last logged-in user id, or "" when unset.
func (d *Directory) LastUserID() string {
	var id string
	d.store.Read(keyLastUser, &id)
	return id
}

// SetLastUserID records the last logged-in user id.
func (d *Directory) SetLastUserID(id string) {
	d.store.Write(keyLastUser, id)
}

// ClearLastUserID removes the last-user pointer.
func (d *Directory) ClearLastUserID() {
	d.store.Remove(keyLastUser)
}
