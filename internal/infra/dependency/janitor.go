package dependency

import (
	"context"
	"log/slog"
	"time"

	"github.com/finance-tracker/planner/internal/application/ledger"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/middleware"
)

const (
	defaultSweepInterval  = 5 * time.Minute
	defaultSessionIdleTTL = 30 * time.Minute
)

// Janitor bounds the in-process caches: it drops user sessions left idle and the rate
// limiter windows that have expired.
type Janitor struct {
	sessions *ledger.Sessions
	limiters []*middleware.RateLimiter
	interval time.Duration
	maxIdle  time.Duration
}

// NewJanitor creates a janitor. Non-positive durations fall back to a 5 minute sweep
// and a 30 minute idle limit.
func NewJanitor(sessions *ledger.Sessions, interval, maxIdle time.Duration, limiters ...*middleware.RateLimiter) *Janitor {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	if maxIdle <= 0 {
		maxIdle = defaultSessionIdleTTL
	}
	return &Janitor{
		sessions: sessions,
		limiters: limiters,
		interval: interval,
		maxIdle:  maxIdle,
	}
}

// Start sweeps on every interval until ctx is done.
func (j *Janitor) Start(ctx context.Context) {
	slog.Info("Session janitor started", "interval", j.interval, "idle_ttl", j.maxIdle)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Session janitor shutting down")
			return
		case <-ticker.C:
			j.Sweep()
		}
	}
}

// Sweep runs one pass and returns the number of sessions and rate limit windows dropped.
func (j *Janitor) Sweep() (sessions, windows int) {
	sessions = j.sessions.EvictIdle(j.maxIdle)
	for _, l := range j.limiters {
		windows += l.Cleanup()
	}
	if sessions > 0 || windows > 0 {
		slog.Debug("Swept idle caches",
			"sessions_evicted", sessions,
			"sessions_loaded", j.sessions.Len(),
			"rate_limit_windows", windows,
		)
	}
	return sessions, windows
}
