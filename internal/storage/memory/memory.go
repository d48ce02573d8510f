// Package memory provides an in-memory implementation of the storage.Store
// interface, used by tests and selectable as a backend for throwaway runs.
package memory

import (
	"context"
	"sync"

	"github.com/azamanzizi-droid/ku2cash/internal/storage"
)

// Ensure MemoryStore implements storage.Store
var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore implements storage.Store with a map. Nothing survives process
// restart.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// New creates an empty MemoryStore.
func New() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]byte)}
}

// Get retrieves the snapshot stored under key.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.snapshots[key]
	if !ok {
		return nil, false, nil
	}
	// Copy so callers cannot mutate the stored snapshot.
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Set stores the snapshot under key.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.snapshots[key] = stored
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
