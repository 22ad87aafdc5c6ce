package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/config"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
)

func TestSQLiteConnection(t *testing.T) {
	database, err := NewSQLiteConnection(&config.DatabaseConfig{
		SQLitePath:      filepath.Join(t.TempDir(), "planner.db"),
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	assert.Equal(t, "sqlite", database.Driver())
	require.NoError(t, database.AutoMigrate(&model.StateRecordModel{}, &model.EmailQueueModel{}))
	assert.True(t, database.HealthCheck(context.Background()))
}

func TestRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(&config.RedisConfig{URL: "redis://" + mr.Addr() + "/0"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.True(t, RedisHealthCheck(client)(context.Background()))

	mr.Close()
	assert.False(t, RedisHealthCheck(client)(context.Background()))
}

func TestRedisClientRejectsBadURL(t *testing.T) {
	_, err := NewRedisClient(&config.RedisConfig{URL: "not a url"})
	assert.Error(t, err)
}
