package products

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"fitcheck-backend/internal/shared/util"
)

// Cache stores successful extraction responses.
type Cache interface {
	Get(ctx context.Context, key string) (ExtractionResponse, bool, error)
	Set(ctx context.Context, key string, resp ExtractionResponse, ttl time.Duration) error
}

// kv is the part of the redis client the cache uses.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisCache implements Cache on Redis.
type RedisCache struct {
	client kv
	closer func() error
	ping   func(ctx context.Context) error
	prefix string
}

// NewRedisCache connects to rawURL (redis://...) and verifies it with PING.
func NewRedisCache(ctx context.Context, rawURL string) (*RedisCache, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	c := newRedisCache(client)
	c.closer = client.Close
	c.ping = func(ctx context.Context) error { return client.Ping(ctx).Err() }
	return c, nil
}

// PingContext checks the Redis connection.
func (c *RedisCache) PingContext(ctx context.Context) error {
	if c.ping == nil {
		return nil
	}
	return c.ping(ctx)
}

// Close releases the underlying connection pool.
func (c *RedisCache) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

func newRedisCache(client kv) *RedisCache {
	return &RedisCache{client: client, prefix: "fitcheck:product:"}
}

// Get returns a cached response when present.
func (c *RedisCache) Get(ctx context.Context, key string) (ExtractionResponse, bool, error) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ExtractionResponse{}, false, nil
		}
		return ExtractionResponse{}, false, err
	}
	var resp ExtractionResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return ExtractionResponse{}, false, fmt.Errorf("decode cached product: %w", err)
	}
	return resp, true, nil
}

// Set stores resp for ttl.
func (c *RedisCache) Set(ctx context.Context, key string, resp ExtractionResponse, ttl time.Duration) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.prefix+key, raw, ttl).Err()
}

// CacheKey derives a stable key from a product URL.
func CacheKey(productURL string) string {
	return "url:" + util.HashKey(strings.ToLower(strings.TrimSpace(productURL)))
}
