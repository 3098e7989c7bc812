// ABOUTME: Conformance tests run against every storage backend.
// ABOUTME: Badger and SQLite open under t.TempDir.
package kv

import (
	"path/filepath"
	"testing"
)

func testBackendConformance(t *testing.T, b Backend) {
	t.Helper()

	// Missing key
	_, found, err := b.Get("missing")
	if err != nil {
		t.Fatalf("Get missing: %v", err)
	}
	if found {
		t.Error("missing key reported found")
	}

	// Set and get
	if err := b.Set("alpha", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := b.Set("beta", []byte(`{"b":2}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, found, err := b.Get("alpha")
	if err != nil || !found {
		t.Fatalf("Get alpha: found=%v err=%v", found, err)
	}
	if string(val) != `{"a":1}` {
		t.Errorf("Get alpha = %q", val)
	}

	// Overwrite
	if err := b.Set("alpha", []byte(`{"a":9}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	val, _, _ = b.Get("alpha")
	if string(val) != `{"a":9}` {
		t.Errorf("after overwrite = %q", val)
	}

	// Keys
	keys, err := b.Keys()
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("Keys = %v, want 2 entries", keys)
	}

	// Delete
	if err := b.Delete("alpha"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found, _ := b.Get("alpha"); found {
		t.Error("deleted key still found")
	}
	if err := b.Delete("alpha"); err != nil {
		t.Errorf("deleting a missing key should not error: %v", err)
	}
}

func TestMemoryBackend(t *testing.T) {
	testBackendConformance(t, NewMemory())
}

func TestBadgerBackend(t *testing.T) {
	b, err := OpenBadger(t.TempDir())
	if err != nil {
		t.Fatalf("OpenBadger: %v", err)
	}
	defer b.Close()
	testBackendConformance(t, b)
}

func TestSQLiteBackend(t *testing.T) {
	b, err := OpenSQLite(filepath.Join(t.TempDir(), "irontrack.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer b.Close()
	testBackendConformance(t, b)
}

func TestSQLiteBackendPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "irontrack.db")

	b, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := b.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer b.Close()
	val, found, err := b.Get("k")
	if err != nil || !found || string(val) != "v" {
		t.Errorf("after reopen: val=%q found=%v err=%v", val, found, err)
	}
}
