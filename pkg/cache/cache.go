// Package cache stores converted ontologies keyed by the hash of their input.
//
// Converting a large OBO file (GO, ChEBI, Uberon) takes seconds; re-running the
// CLI on an unchanged file, or posting the same document to the HTTP server,
// returns the stored output instead. Three backends are provided:
//
//   - [FileCache] under the XDG cache directory, used by the CLI
//   - [RedisCache] shared between server replicas
//   - [NullCache] when caching is disabled
//
// Keys are produced by a [Keyer] so that every component builds them the same
// way; [ScopedKeyer] prefixes keys for multi-tenant deployments.
package cache

import (
	"context"
	"time"
)

// Default time-to-live values for cached entries.
const (
	// TTLConversion is how long a converted ontology is kept.
	TTLConversion = 7 * 24 * time.Hour

	// TTLHierarchy is how long a rendered class hierarchy is kept.
	TTLHierarchy = 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiration.
type Cache interface {
	// Get returns the stored value and true, or false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
