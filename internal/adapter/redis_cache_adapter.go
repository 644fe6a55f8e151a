package adapter

import (
	"context"
	"errors"
	"time"

	"rangeiq/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCacheAdapter implements the domain.Cache interface using a Redis client.
type RedisCacheAdapter struct {
	client *redis.Client
}

// NewRedisCacheAdapter expects a connected *redis.Client.
func NewRedisCacheAdapter(client *redis.Client) domain.Cache {
	return &RedisCacheAdapter{client: client}
}

// Get translates redis.Nil to domain.ErrCacheMiss.
func (r *RedisCacheAdapter) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrCacheMiss
		}
		return "", err
	}
	return val, nil
}

func (r *RedisCacheAdapter) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

func (r *RedisCacheAdapter) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *RedisCacheAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// NoopCache satisfies domain.Cache when Redis is not configured. Every Get misses.
type NoopCache struct{}

func NewNoopCache() domain.Cache {
	return NoopCache{}
}

func (NoopCache) Get(context.Context, string) (string, error) {
	return "", domain.ErrCacheMiss
}

func (NoopCache) Set(context.Context, string, string, time.Duration) error { return nil }

func (NoopCache) Delete(context.Context, string) error { return nil }

// Ping reports the cache as unavailable so health checks can tell it apart from Redis.
func (NoopCache) Ping(context.Context) error {
	return ErrCacheDisabled
}

// ErrCacheDisabled is returned by NoopCache.Ping.
var ErrCacheDisabled = errors.New("cache disabled")
