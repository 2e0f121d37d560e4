package analytics

import (
	"context"
	"time"
)

// Cache stores rendered chart bytes by key.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// NoopCache never hits.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NoopCache) Set(context.Context, string, []byte) error { return nil }

type bytesStore interface {
	GetBytes(ctx context.Context, key string) ([]byte, bool, error)
	SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration) error
	RenderKey(chart, digest string) string
}

// RedisCache namespaces keys under the render prefix and applies a fixed TTL.
type RedisCache struct {
	store bytesStore
	ttl   time.Duration
}

func NewRedisCache(store bytesStore, ttl time.Duration) *RedisCache {
	return &RedisCache{store: store, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.store.GetBytes(ctx, c.store.RenderKey("png", key))
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	return c.store.SetBytes(ctx, c.store.RenderKey("png", key), value, c.ttl)
}
