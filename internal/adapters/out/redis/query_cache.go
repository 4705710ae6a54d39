// Package redis implements the query cache port on a Redis backend.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// QueryCache stores serialized query results in Redis. A missing key is a
// plain miss; only backend failures surface as errors, and callers degrade to
// the authoritative store on both.
type QueryCache struct {
	client *redis.Client
}

// NewQueryCache creates a cache over an established Redis client.
func NewQueryCache(client *redis.Client) *QueryCache {
	return &QueryCache{client: client}
}

// Get returns the payload stored under key and whether it was present.
func (c *QueryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return payload, true, nil
}

// Set stores payload under key for ttl.
func (c *QueryCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, payload, ttl).Err()
}

// Invalidate drops the given keys. Dropping a key that does not exist is not
// an error.
func (c *QueryCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return c.client.Del(ctx, keys...).Err()
}
