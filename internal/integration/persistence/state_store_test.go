package persistence

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/internal/application/adapter"
)

func runStateStoreContract(t *testing.T, store adapter.StateStore) {
	ctx := context.Background()

	t.Run("missing key is not an error", func(t *testing.T) {
		value, found, err := store.Load(ctx, "compta:v1:nobody")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, value)
	})

	t.Run("saves several records and overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx,
			adapter.Record{Key: "compta:v1:u1", Value: []byte(`{"version":1}`)},
			adapter.Record{Key: "compta:v1:u1:monthly", Value: []byte(`{"version":1,"buckets":{}}`)},
		))
		require.NoError(t, store.Save(ctx, adapter.Record{Key: "compta:v1:u1", Value: []byte(`{"version":1,"salary":"10"}`)}))

		value, found, err := store.Load(ctx, "compta:v1:u1")
		require.NoError(t, err)
		assert.True(t, found)
		assert.JSONEq(t, `{"version":1,"salary":"10"}`, string(value))

		value, found, err = store.Load(ctx, "compta:v1:u1:monthly")
		require.NoError(t, err)
		assert.True(t, found)
		assert.JSONEq(t, `{"version":1,"buckets":{}}`, string(value))
	})

	t.Run("empty save is a no-op", func(t *testing.T) {
		require.NoError(t, store.Save(ctx))
	})
}

func TestSQLStateStore(t *testing.T) {
	runStateStoreContract(t, NewSQLStateStore(newTestDB(t)))
}

func TestSQLStateStoreRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	store := NewSQLStateStore(db)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, adapter.Record{Key: "a", Value: []byte("old")}))

	ctx, cancel := context.WithCancel(ctx)
	cancel()
	err := store.Save(ctx,
		adapter.Record{Key: "a", Value: []byte("new")},
		adapter.Record{Key: "b", Value: []byte("new")},
	)
	require.Error(t, err)

	value, found, err := store.Load(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "old", string(value))

	_, found, err = store.Load(context.Background(), "b")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStateStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStateStore(client)
	runStateStoreContract(t, store)

	assert.True(t, mr.Exists("compta:v1:u1:monthly"))
}

func TestRedisStateStoreReportsConnectionErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedisStateStore(client)

	mr.Close()

	_, _, err := store.Load(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, store.Save(context.Background(), adapter.Record{Key: "k", Value: []byte("v")}))
}

func TestMemoryStateStore(t *testing.T) {
	store := NewMemoryStateStore()
	runStateStoreContract(t, store)
	assert.Equal(t, 2, store.Keys())

	t.Run("returned values are copies", func(t *testing.T) {
		ctx := context.Background()
		value, _, err := store.Load(ctx, "compta:v1:u1")
		require.NoError(t, err)
		value[0] = 'X'

		again, _, err := store.Load(ctx, "compta:v1:u1")
		require.NoError(t, err)
		assert.Equal(t, byte('{'), again[0])
	})
}
