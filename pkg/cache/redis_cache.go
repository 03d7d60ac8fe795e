package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dbagent-inc/schema-engine/pkg/apperrors"
	"github.com/dbagent-inc/schema-engine/pkg/models"
)

// redisCache stores serialized schema contexts in Redis. All backend
// errors are logged at debug level and surfaced as misses or failed writes,
// never as errors.
type redisCache struct {
	client *redis.Client
	logger *zap.Logger
}

// New returns a Redis-backed SchemaCache, or the Unavailable variant when
// client is nil. If logger is nil, a no-op logger is used.
func New(client *redis.Client, logger *zap.Logger) SchemaCache {
	if client == nil {
		return Unavailable{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &redisCache{client: client, logger: logger}
}

func (c *redisCache) IsConnected() bool {
	return c.client.Ping(context.Background()).Err() == nil
}

func (c *redisCache) Get(ctx context.Context, key string) (*models.SchemaContext, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("schema cache read failed", zap.String("key", key), zap.Error(apperrors.Cache(err)))
		}
		return nil, false
	}

	var sc models.SchemaContext
	if err := json.Unmarshal(payload, &sc); err != nil {
		c.logger.Warn("discarding corrupt schema cache entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &sc, true
}

func (c *redisCache) Set(ctx context.Context, key string, sc *models.SchemaContext, ttl time.Duration) bool {
	payload, err := json.Marshal(sc)
	if err != nil {
		c.logger.Warn("failed to serialize schema context", zap.String("key", key), zap.Error(err))
		return false
	}

	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		c.logger.Debug("schema cache write failed", zap.String("key", key), zap.Error(apperrors.Cache(err)))
		return false
	}
	return true
}

func (c *redisCache) GenerateKey(tableNames []string, includeSamples bool) string {
	return GenerateKey(tableNames, includeSamples)
}
