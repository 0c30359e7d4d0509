package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis opens the client behind the job queues and the price-check cache.
// A ping at startup surfaces a bad REDIS_URL before the first request does.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
