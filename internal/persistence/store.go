package persistence

import (
	"context"
	"sync"
)

// Storage keys for the persisted collections.
const (
	KeyUsers       = "users"
	KeyTodos       = "todos"
	KeyCurrentUser = "current_user"
)

// Store is the key-value storage adapter behind every collection. Values are
// whole JSON-encoded collections; there are no transactions and every write
// replaces the stored value (last write wins).
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set replaces the value under key.
	Set(ctx context.Context, key string, value []byte) error
	// Clear removes the given keys. Missing keys are not an error.
	Clear(ctx context.Context, keys ...string) error
}

// MemoryStore is an in-process Store used in tests and driverless runs.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, true, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

// Ping always succeeds; the store lives in-process.
func (m *MemoryStore) Ping(_ context.Context) error {
	return nil
}
