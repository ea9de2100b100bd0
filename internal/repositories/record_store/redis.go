package record_store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis, keeps records apart from live match keys
	recordKeyPrefix = "records:"
)

// Config holds configuration for the Redis record store
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisStore implements the Store interface using Redis
type redisStore struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed record store
func NewRedis(cfg *Config) (*redisStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisStore{
		client: cfg.RedisClient,
	}, nil
}

// Get retrieves the value stored under key
func (r *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, recordKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return value, nil
}

// Set stores value under key with no expiration
func (r *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, recordKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	return nil
}
