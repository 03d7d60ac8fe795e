package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dbagent-inc/schema-engine/pkg/config"
)

// NewRedisClient creates a Redis client for the schema cache.
// Returns nil if Redis is not configured (host is empty) or unreachable;
// callers treat a nil client as "caching disabled" rather than an error.
func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	if cfg.Host == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil
	}

	return client
}
