// Package localstore provides the string-keyed local key-value store that is
// the only persistence substrate of the job board, plus a typed JSON accessor
// over it.
//
// Each key's full value is written atomically; there are no multi-key
// transactions. Two processes writing the same store race and the last write
// to a key wins.
package localstore

import (
	"context"
	"fmt"
	"sync"
)

// Backend is a persistent map of string keys to string values.
type Backend interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set replaces the value for key.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open constructs the named backend. path is ignored for the memory backend.
func Open(ctx context.Context, name, path string) (Backend, error) {
	switch name {
	case BackendMemory:
		return NewMemoryBackend(), nil
	case BackendFile:
		return NewFileBackend(path), nil
	case BackendSQLite:
		return OpenSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("unknown store backend %q", name)
	}
}

// MemoryBackend keeps values in process memory.
type MemoryBackend struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]string)}
}

func (m *MemoryBackend) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryBackend) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryBackend) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *MemoryBackend) Close() error { return nil }
