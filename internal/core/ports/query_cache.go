package ports

import (
	"context"
	"time"
)

// QueryCache is a read-through cache for query results. It is advisory only:
// a miss or a cache failure falls back to the authoritative store, and
// mutations never read from it. Writers invalidate explicit keys after a
// successful mutation so the cache can never silently diverge from the
// authoritative state.
type QueryCache interface {
	// Get returns the cached payload for key and whether it was present.
	// A cache backend failure is returned as-is; callers treat it as a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a payload under key with the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// Invalidate drops the given keys.
	Invalidate(ctx context.Context, keys ...string) error
}
