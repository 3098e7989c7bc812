// ABOUTME: Charm KV backend with automatic cloud sync after writes.
// ABOUTME: Data is E2E encrypted with the user's SSH key.
package kv

import (
	"fmt"
	"os"
	"sync"

	charmkv "github.com/charmbracelet/charm/kv"
)

const (
	charmDBName = "irontrack"
	charmHost   = "charm.2389.dev"
)

// CharmBackend stores data in Charm KV, syncing to Charm Cloud after each
// write. When another process holds the database lock it opens read-only
// and rejects writes.
type CharmBackend struct {
	kv       *charmkv.KV
	autoSync bool
	mu       sync.RWMutex
}

// OpenCharm opens the Charm KV database, pulling remote data on startup.
func OpenCharm() (*CharmBackend, error) {
	if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
		return nil, err
	}

	db, err := charmkv.OpenWithDefaultsFallback(charmDBName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	b := &CharmBackend{kv: db, autoSync: true}

	// Pull remote data on startup (skip in read-only mode)
	if !db.IsReadOnly() {
		_ = db.Sync()
	}

	return b, nil
}

// IsReadOnly returns true if the database is open in read-only mode.
// This happens when another process (like an MCP server) holds the lock.
func (b *CharmBackend) IsReadOnly() bool {
	return b.kv.IsReadOnly()
}

// Sync synchronizes local state with Charm Cloud.
func (b *CharmBackend) Sync() error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.kv.IsReadOnly() {
		return nil
	}
	return b.kv.Sync()
}

// SetAutoSync enables or disables automatic sync after writes.
func (b *CharmBackend) SetAutoSync(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.autoSync = enabled
}

// Reset wipes local data and rebuilds from Charm Cloud.
func (b *CharmBackend) Reset() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.kv.Reset()
}

func (b *CharmBackend) syncIfEnabled() {
	if b.autoSync && !b.kv.IsReadOnly() {
		_ = b.kv.Sync()
	}
}

// Get returns the value at key.
func (b *CharmBackend) Get(key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys, err := b.kv.Keys()
	if err != nil {
		return nil, false, err
	}
	exists := false
	for _, k := range keys {
		if string(k) == key {
			exists = true
			break
		}
	}
	if !exists {
		return nil, false, nil
	}

	val, err := b.kv.Get([]byte(key))
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Set stores a value, syncing to the cloud if enabled.
func (b *CharmBackend) Set(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}
	if err := b.kv.Set([]byte(key), value); err != nil {
		return err
	}
	b.syncIfEnabled()
	return nil
}

// Delete removes a key, syncing to the cloud if enabled.
func (b *CharmBackend) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}
	if err := b.kv.Delete([]byte(key)); err != nil {
		return err
	}
	b.syncIfEnabled()
	return nil
}

// Keys returns all keys in the store.
func (b *CharmBackend) Keys() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	raw, err := b.kv.Keys()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		keys = append(keys, string(k))
	}
	return keys, nil
}

// Close closes the KV database connection.
func (b *CharmBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.kv != nil {
		return b.kv.Close()
	}
	return nil
}
