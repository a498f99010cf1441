// Package prefs persists small string settings: the background effect and
// the music player's state.
package prefs

import "sync"

// Storage keys
const (
	KeyEffect         = "bgEffect"
	KeyPlayer         = "musicPlayer"
	KeyPlayerDisabled = "musicPlayerDisabled"
)

// Storage is a durable string key/value store. Backends absorb their own
// errors: a failed read is a miss and a failed write is dropped.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MemoryStorage is a map-backed Storage.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage creates an empty store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStorage) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}
