// ABOUTME: Tests for the profile directory.
// ABOUTME: Covers upsert semantics and the last-user pointer.
package store

import (
	"testing"
	"time"

	"github.com/harperreed/irontrack/internal/kv"
	"github.com/harperreed/irontrack/internal/models"
)

func TestDirectoryUpsert(t *testing.T) {
	dir := NewDirectory(kv.NewStore(kv.NewMemory()))

	if got := dir.List(); len(got) != 0 {
		t.Errorf("empty directory should list nothing, got %+v", got)
	}

	now := time.Now()
	dir.Upsert(models.UserSummary{ID: "u1", Name: "Alice", LastActive: now})
	dir.Upsert(models.UserSummary{ID: "u2", Name: "Bob", LastActive: now})
	if len(dir.List()) != 2 {
		t.Fatalf("directory = %d entries, want 2", len(dir.List()))
	}

	// Same id replaces in place.
	later := now.Add(time.Hour)
	dir.Upsert(models.UserSummary{ID: "u1", Name: "Alice B", LastActive: later})
	list := dir.List()
	if len(list) != 2 {
		t.Fatalf("upsert should not append a duplicate, got %d", len(list))
	}
	if list[0].Name != "Alice B" || !list[0].LastActive.Equal(later) {
		t.Errorf("entry not replaced: %+v", list[0])
	}
}

func TestDirectoryReplace(t *testing.T) {
	dir := NewDirectory(kv.NewStore(kv.NewMemory()))
	dir.Upsert(models.UserSummary{ID: "u1", Name: "Alice"})

	dir.Replace([]models.UserSummary{{ID: "u9", Name: "Solo"}})
	list := dir.List()
	if len(list) != 1 || list[0].ID != "u9" {
		t.Errorf("Replace should overwrite wholesale: %+v", list)
	}
}

func TestLastUserPointer(t *testing.T) {
	dir := NewDirectory(kv.NewStore(kv.NewMemory()))

	if dir.LastUserID() != "" {
		t.Error("pointer should start empty")
	}
	dir.SetLastUserID("u1")
	if dir.LastUserID() != "u1" {
		t.Error("pointer not set")
	}
	dir.ClearLastUserID()
	if dir.LastUserID() != "" {
		t.Error("pointer not cleared")
	}
}
