// Package cache provides response caching for the contextpack
// adapters.
//
// The engine is a pure function, so a pack response can be memoized
// safely: an identical request always produces an identical response.
// Callers hash the request body with [RequestKey] and store the
// serialized response under it.
//
// Backends:
//   - [NullCache]: no-op, the default
//   - [MemoryCache]: in-process LRU for single-instance servers
//   - [FileCache]: directory-backed, for CLI reuse across runs
//   - [RedisCache]: shared cache for multi-instance deployments
package cache

import (
	"context"
	"time"
)

// Cache stores serialized responses under opaque string keys.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the
	// key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
