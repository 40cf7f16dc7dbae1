package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 5 * time.Minute

// ProductCache is a read cache for rendered product responses. A nil
// *ProductCache is valid and disables caching, so callers never have to
// branch on whether Redis is configured.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(addr string) (*ProductCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &ProductCache{client: client, ttl: defaultTTL}, nil
}

func (c *ProductCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil || len(payload) == 0 {
		return nil, false
	}
	return payload, true
}

func (c *ProductCache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil {
		return
	}
	c.client.Set(ctx, key, payload, c.ttl)
}

// Invalidate drops every cached product response. Mutations are rare on an
// admin surface, so flushing beats tracking individual keys.
func (c *ProductCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	c.client.FlushDB(ctx)
}
