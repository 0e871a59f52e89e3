// Package preferences persists small per-device UI state: the dark mode
// flag, the liked project ids and the anonymous session token.
package preferences

import (
	"context"
	"sync"
)

// Keys of the persisted preferences.
const (
	KeyDarkMode = "projectvault-dark-mode"
	KeyLiked    = "projectvault-liked"
	KeySession  = "projectvault-session"
)

// Store is an opaque string key-value store.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// MemoryStore keeps preferences in process memory. Values do not survive a
// restart.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
