// Package cache stores rendered wireframe artifacts between runs.
//
// A page's SVG depends only on the page content, the navigation labels, the
// layout configuration, the style and the overlay flag, so identical inputs
// can skip rendering entirely. Keys are derived by a [Keyer]; values are the
// raw SVG bytes.
//
// Three backends implement [Cache]:
//
//   - [FileCache] keeps entries as JSON files under a directory (CLI default).
//   - [RedisCache] shares entries between processes through Redis.
//   - [NullCache] never stores anything (--no-cache).
//
// Backends treat undecodable or expired entries as misses. Errors are only
// returned for backend failures; callers are expected to log them and render
// anyway.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered pages stay cached.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
