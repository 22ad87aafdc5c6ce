package adapters

import (
	"time"

	"github.com/finance-tracker/planner/internal/application/adapter"
)

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

var _ adapter.Clock = SystemClock{}
