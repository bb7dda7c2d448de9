// Package credential persists the session token and cached user record over
// an injectable key/value storage, so production can bind a durable store
// while tests substitute an in-memory fake.
package credential

import "sync"

// Storage is the minimal key/value surface the credential store needs.
// Implementations are synchronous and never return errors: a backend that
// cannot answer must behave as a miss, which downstream code treats as
// "no token" (fail-closed).
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// MemoryStorage is a Storage held entirely in process memory. It is the
// test binding and also serves ephemeral sessions that should not outlive
// the process.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStorage returns an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStorage) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *MemoryStorage) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}
