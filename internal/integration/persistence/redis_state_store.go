// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/planner/internal/application/adapter"
)

// redisStateStore implements the adapter.StateStore interface on Redis strings.
type redisStateStore struct {
	client *redis.Client
}

// NewRedisStateStore creates a new state store backed by Redis.
func NewRedisStateStore(client *redis.Client) adapter.StateStore {
	return &redisStateStore{
		client: client,
	}
}

// Load retrieves the document stored under key.
func (s *redisStateStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

// Save writes all records in a MULTI/EXEC block.
func (s *redisStateStore) Save(ctx context.Context, records ...adapter.Record) error {
	if len(records) == 0 {
		return nil
	}
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, r := range records {
			pipe.Set(ctx, r.Key, r.Value, 0)
		}
		return nil
	})
	return err
}
