package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/fixture-insights-service/internal/models"
)

// ErrCacheMiss is returned when a view is not cached
var ErrCacheMiss = errors.New("view not found in cache")

// RedisCache caches built views in Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// RedisCacheConfig holds Redis cache configuration
type RedisCacheConfig struct {
	Addr     string // e.g., "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration // e.g., 30 * time.Minute
}

// NewRedisCache creates a new Redis cache
func NewRedisCache(config RedisCacheConfig, logger zerolog.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &RedisCache{
		client: client,
		ttl:    config.TTL,
		logger: logger.With().Str("component", "redis_cache").Logger(),
	}
}

// ViewKey builds the Redis key view:{kind}:{key}
func ViewKey(kind, key string) string {
	return fmt.Sprintf("view:%s:%s", kind, key)
}

// SetView caches a built view
func (c *RedisCache) SetView(ctx context.Context, kind, key string, view any) error {
	redisKey := ViewKey(kind, key)

	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to marshal %s view: %w", kind, err)
	}

	if err := c.client.Set(ctx, redisKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	c.logger.Debug().
		Str("key", redisKey).
		Dur("ttl", c.ttl).
		Msg("cached view")

	return nil
}

// GetView decodes a cached view into dst
func (c *RedisCache) GetView(ctx context.Context, kind, key string, dst any) error {
	redisKey := ViewKey(kind, key)

	data, err := c.client.Get(ctx, redisKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	} else if err != nil {
		return fmt.Errorf("failed to get from Redis: %w", err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to unmarshal %s view: %w", kind, err)
	}

	return nil
}

// SetViews caches several views in one pipeline
func (c *RedisCache) SetViews(ctx context.Context, entries []models.ViewEntry) error {
	if len(entries) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()

	queued := 0
	for _, entry := range entries {
		data, err := json.Marshal(entry.View)
		if err != nil {
			c.logger.Error().Err(err).Str("kind", entry.Kind).Str("key", entry.Key).Msg("failed to marshal view")
			continue
		}
		pipe.Set(ctx, ViewKey(entry.Kind, entry.Key), data, c.ttl)
		queued++
	}

	if queued == 0 {
		return nil
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute pipeline: %w", err)
	}

	c.logger.Info().
		Int("count", queued).
		Msg("cached batch of views")

	return nil
}

// ListKeys returns the cached keys of one view kind, without the namespace prefix
func (c *RedisCache) ListKeys(ctx context.Context, kind string) ([]string, error) {
	prefix := ViewKey(kind, "")
	pattern := prefix + "*"

	var cursor uint64
	var keys []string

	for {
		var scanKeys []string
		var err error
		scanKeys, cursor, err = c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys: %w", err)
		}

		for _, k := range scanKeys {
			keys = append(keys, k[len(prefix):])
		}

		if cursor == 0 {
			break
		}
	}

	return keys, nil
}

// Ping checks Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
