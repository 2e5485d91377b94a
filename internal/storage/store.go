// Package storage provides the key/value persistence backing the session store.
//
// The contract mirrors browser-origin local storage: synchronous single-value
// reads and writes, durable across process runs. Values are opaque strings.
package storage

import (
	"sync"
)

// Store defines the key/value persistence interface.
//
// Implementations must be safe for concurrent use. Get reports whether the
// key was present; absent keys are not an error.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)

	// Set stores value under key, replacing any existing value.
	Set(key, value string) error

	// Remove deletes key. Removing an absent key is a no-op.
	Remove(key string) error
}

// MemoryStore implements in-memory key/value storage.
//
// This is suitable for tests and ephemeral sessions that should not
// survive the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
	}
}

// Get returns the value for key and whether it was present.
func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok
}

// Set stores value under key.
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Remove deletes key.
func (m *MemoryStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// Len returns the number of stored keys.
// This is useful for monitoring and testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.values)
}
