package ledger

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/finance-tracker/planner/internal/application/adapter"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type movingClock struct{ now time.Time }

func (c *movingClock) Now() time.Time { return c.now }

func clockAt(year int, month time.Month, day int) fixedClock {
	return fixedClock{now: time.Date(year, month, day, 9, 30, 0, 0, time.UTC)}
}

// memoryStates is an in-memory StateStore that can be told to fail.
type memoryStates struct {
	mu       sync.Mutex
	data     map[string][]byte
	saves    int
	loads    int
	failSave error
	failLoad error
}

func newMemoryStates() *memoryStates {
	return &memoryStates{data: map[string][]byte{}}
}

func (m *memoryStates) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	if m.failLoad != nil {
		return nil, false, m.failLoad
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryStates) Save(_ context.Context, records ...adapter.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSave != nil {
		return m.failSave
	}
	m.saves++
	for _, r := range records {
		m.data[r.Key] = r.Value
	}
	return nil
}

func (m *memoryStates) put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = []byte(value)
}

func (m *memoryStates) get(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.data[key])
}

var errBackend = errors.New("backend down")
