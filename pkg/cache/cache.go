// Package cache stores rendered roadmap images so that re-running an
// unchanged roadmap skips Graphviz.
//
// Keys are derived from the styled graph, not the input file, so two
// inputs that build the same graph share an entry and any change to a
// topic, level, prerequisite or theme setting produces a new key.
//
//	c, _ := cache.NewFileCache(dir)
//	key := cache.ArtifactKey(graphJSON, "png")
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    // reuse data
//	}
package cache

import (
	"context"
	"time"
)

// ArtifactTTL is how long a rendered image stays valid.
const ArtifactTTL = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored value. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactKey returns the key for source rendered in format.
func ArtifactKey(source []byte, format string) string {
	return hashKey("artifact", Hash(source), format)
}
