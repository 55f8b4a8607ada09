package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "quick-notes:pref:"

// RedisPreferences keeps preferences in Redis, one string key per preference.
type RedisPreferences struct {
	client *redis.Client
}

func NewRedisPreferences(ctx context.Context, redisURL string) (*RedisPreferences, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		// Accept a bare host:port as well as a redis:// URL
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisPreferences{client: client}, nil
}

func (r *RedisPreferences) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *RedisPreferences) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, redisKeyPrefix+key, value, 0).Err()
}

func (r *RedisPreferences) Close() error {
	return r.client.Close()
}
