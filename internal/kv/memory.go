// ABOUTME: In-memory backend used as a test double.
// ABOUTME: Err, when set, makes every operation fail to exercise fallbacks.
package kv

import "sort"

// MemoryBackend keeps all data in a map. The zero value is not usable;
// call NewMemory.
type MemoryBackend struct {
	data map[string][]byte

	// Err makes every operation return this error when non-nil.
	Err error
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

// Get returns the value at key.
func (b *MemoryBackend) Get(key string) ([]byte, bool, error) {
	if b.Err != nil {
		return nil, false, b.Err
	}
	v, ok := b.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set stores a value.
func (b *MemoryBackend) Set(key string, value []byte) error {
	if b.Err != nil {
		return b.Err
	}
	v := make([]byte, len(value))
	copy(v, value)
	b.data[key] = v
	return nil
}

// Delete removes a key.
func (b *MemoryBackend) Delete(key string) error {
	if b.Err != nil {
		return b.Err
	}
	delete(b.data, key)
	return nil
}

// Keys returns all keys in sorted order.
func (b *MemoryBackend) Keys() ([]string, error) {
	if b.Err != nil {
		return nil, b.Err
	}
	keys := make([]string, 0, len(b.data))
	for k := range b.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Close is a no-op.
func (b *MemoryBackend) Close() error {
	return nil
}
