package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	redisOnce   sync.Once
	redisServer *miniredis.Miniredis
	redisClient *redis.Client
)

// NewRedis returns a client for the miniredis instance shared by every scenario.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		redisServer = miniredis.NewMiniRedis()
		if err := redisServer.Start(); err != nil {
			panic(err)
		}
		redisClient = redis.NewClient(&redis.Options{Addr: redisServer.Addr()})
	})
	return redisClient
}

// ClearRedis drops every key so that scenarios start from an empty store.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}

