package dependency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/internal/application/ledger"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/planner/internal/integration/persistence"
)

type movingClock struct{ now time.Time }

func (c *movingClock) Now() time.Time { return c.now }

func TestJanitorSweep(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	clock := &movingClock{now: time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)}
	sessions := ledger.NewSessions(persistence.NewMemoryStateStore(), clock, "compta:v1")
	limiter := middleware.NewRateLimiter(5, time.Minute, clock)
	janitor := NewJanitor(sessions, time.Minute, 30*time.Minute, limiter)

	r := gin.New()
	r.Use(limiter.Middleware())
	r.POST("/welcome", func(c *gin.Context) { c.Status(http.StatusAccepted) })
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/welcome", nil))

	idle, err := sessions.Get(ctx, "idle-user")
	require.NoError(t, err)
	_, err = sessions.Get(ctx, "busy-user")
	require.NoError(t, err)

	clock.now = clock.now.Add(20 * time.Minute)
	_, err = sessions.Get(ctx, "busy-user")
	require.NoError(t, err)

	clock.now = clock.now.Add(15 * time.Minute)
	evicted, windows := janitor.Sweep()
	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, windows)
	assert.Equal(t, 1, sessions.Len())

	reloaded, err := sessions.Get(ctx, "idle-user")
	require.NoError(t, err)
	assert.NotSame(t, idle, reloaded)

	evicted, windows = janitor.Sweep()
	assert.Zero(t, evicted)
	assert.Zero(t, windows)
}

func TestJanitorStartStopsWithContext(t *testing.T) {
	clock := &movingClock{now: time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)}
	sessions := ledger.NewSessions(persistence.NewMemoryStateStore(), clock, "compta:v1")
	janitor := NewJanitor(sessions, 0, 0)
	assert.Equal(t, defaultSweepInterval, janitor.interval)
	assert.Equal(t, defaultSessionIdleTTL, janitor.maxIdle)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		janitor.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
