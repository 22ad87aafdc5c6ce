package ledger

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/finance-tracker/planner/internal/application/adapter"
)

// Sessions keeps one loaded Store per user id. Stores that go unused are dropped by
// EvictIdle and reloaded from storage on their next Get.
type Sessions struct {
	states adapter.StateStore
	clock  adapter.Clock
	prefix string

	mu     sync.RWMutex
	stores map[string]*session
	group  singleflight.Group
}

type session struct {
	store    *Store
	lastUsed time.Time
}

// NewSessions creates an empty session cache backed by states.
func NewSessions(states adapter.StateStore, clock adapter.Clock, prefix string) *Sessions {
	return &Sessions{
		states: states,
		clock:  clock,
		prefix: prefix,
		stores: make(map[string]*session),
	}
}

// Get returns the Store of userID, loading its records on first use.
// Concurrent first requests for the same user share a single load.
func (s *Sessions) Get(ctx context.Context, userID string) (*Store, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = PublicUserID
	}

	s.mu.Lock()
	if sess, ok := s.stores[userID]; ok {
		sess.lastUsed = s.clock.Now()
		s.mu.Unlock()
		return sess.store, nil
	}
	s.mu.Unlock()

	v, err, _ := s.group.Do(userID, func() (interface{}, error) {
		s.mu.RLock()
		existing, ok := s.stores[userID]
		s.mu.RUnlock()
		if ok {
			return existing.store, nil
		}

		store := NewStore(s.states, s.clock, s.prefix)
		if err := store.Reload(ctx, userID); err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.stores[userID] = &session{store: store, lastUsed: s.clock.Now()}
		s.mu.Unlock()
		return store, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Store), nil
}

// Evict drops the cached Store of userID; the next Get reloads it from storage.
func (s *Sessions) Evict(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.stores, strings.TrimSpace(userID))
}

// EvictIdle drops every Store not used for longer than maxIdle and returns how many
// were dropped. Every write is persisted as it happens, so nothing is lost.
func (s *Sessions) EvictIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.clock.Now().Add(-maxIdle)
	evicted := 0
	for userID, sess := range s.stores {
		if sess.lastUsed.Before(cutoff) {
			delete(s.stores, userID)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of loaded sessions.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stores)
}
