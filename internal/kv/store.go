// ABOUTME: Flat key-value storage adapter with JSON (de)serialization.
// ABOUTME: Reads fall back on any failure; writes are best-effort and logged.
package kv

import (
	"encoding/json"
	"log"
)

// Backend is a flat string-keyed byte store. Implementations: Charm KV,
// Badger, SQLite, and an in-memory double for tests.
type Backend interface {
	// Get returns the value at key; found is false when the key is absent.
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}

// Store wraps a Backend with JSON encoding and the best-effort contract the
// rest of the application relies on: Read never fails (the caller's
// fallback value survives), Write and Remove never report errors. Failures
// are logged and the operation otherwise proceeds.
type Store struct {
	backend Backend
}

// NewStore creates a Store over the given backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Read unmarshals the JSON value at key into out. It returns false and
// leaves out untouched when the key is absent, the value is unparseable,
// or the backend fails, so out keeps whatever fallback the caller put there.
func (s *Store) Read(key string, out any) bool {
	data, found, err := s.backend.Get(key)
	if err != nil {
		log.Printf("kv: read %s: %v", key, err)
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("kv: parse %s: %v", key, err)
		return false
	}
	return true
}

// Has reports whether a key is present, without decoding it.
func (s *Store) Has(key string) bool {
	_, found, err := s.backend.Get(key)
	if err != nil {
		log.Printf("kv: read %s: %v", key, err)
		return false
	}
	return found
}

// Write serializes v and stores it under key. Failures are logged and
// dropped; the caller treats persistence as best-effort.
func (s *Store) Write(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("kv: marshal %s: %v", key, err)
		return
	}
	if err := s.backend.Set(key, data); err != nil {
		log.Printf("kv: write %s: %v", key, err)
	}
}

// Remove deletes a key. Missing keys and backend failures are not errors.
func (s *Store) Remove(key string) {
	if err := s.backend.Delete(key); err != nil {
		log.Printf("kv: remove %s: %v", key, err)
	}
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
