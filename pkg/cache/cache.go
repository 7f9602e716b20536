// Package cache wraps Redis for caching expensive aggregations such as the
// dashboard stats. Every method is nil-safe so the application runs unchanged
// when Redis is disabled.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/g2rism/backoffice-api/internal/config"
	"github.com/go-redis/redis/v8"
)

// Cache is a thin JSON cache on top of Redis
type Cache struct {
	client *redis.Client
}

// New connects to Redis when enabled; returns a disabled cache otherwise.
// A failed ping also yields a disabled cache rather than an error.
func New(cfg *config.RedisConfig) *Cache {
	if !cfg.Enabled {
		return &Cache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return &Cache{}
	}

	return &Cache{client: client}
}

// Enabled reports whether a Redis connection is available
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// Get unmarshals the cached value into dest, returning false on miss
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if !c.Enabled() {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// Set stores the value as JSON with a TTL. Errors are swallowed; a cache
// write failure must never fail the request.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if !c.Enabled() {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, data, ttl)
}

// Delete removes one or more keys
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}

// Close releases the Redis connection
func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}
