package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "compta:v1", cfg.Storage.KeyPrefix)
	assert.Equal(t, StoreBackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, 30*time.Minute, cfg.Storage.SessionIdleTTL)
	assert.Equal(t, 5*time.Minute, cfg.Storage.SessionSweepInterval)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("STORAGE_KEY_PREFIX", "planner:test")
	t.Setenv("SESSION_IDLE_TTL", "10m")
	t.Setenv("SESSION_SWEEP_INTERVAL", "30s")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("EMAIL_WORKER_ENABLED", "false")
	t.Setenv("IDP_API_KEY", "key-123")

	cfg := Load()

	assert.Equal(t, StoreBackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "planner:test", cfg.Storage.KeyPrefix)
	assert.Equal(t, 10*time.Minute, cfg.Storage.SessionIdleTTL)
	assert.Equal(t, 30*time.Second, cfg.Storage.SessionSweepInterval)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.False(t, cfg.Email.WorkerEnabled)
	assert.Equal(t, "key-123", cfg.Identity.APIKey)
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "eighty")
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("EMAIL_WORKER_POLL_INTERVAL", "soon")
	t.Setenv("SESSION_IDLE_TTL", "forever")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.Email.PollInterval)
	assert.Equal(t, 30*time.Minute, cfg.Storage.SessionIdleTTL)
}
