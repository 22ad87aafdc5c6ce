// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"sync"

	"github.com/finance-tracker/planner/internal/application/adapter"
)

// MemoryStateStore is a process-local StateStore. State is lost on restart.
type MemoryStateStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStateStore creates an empty in-memory state store.
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{
		data: make(map[string][]byte),
	}
}

// Load retrieves a copy of the document stored under key.
func (s *MemoryStateStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Save stores copies of all records under one lock.
func (s *MemoryStateStore) Save(_ context.Context, records ...adapter.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.data[r.Key] = append([]byte(nil), r.Value...)
	}
	return nil
}

// Keys returns the number of stored keys.
func (s *MemoryStateStore) Keys() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
