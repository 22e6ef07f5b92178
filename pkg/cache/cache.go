// Package cache provides a byte-oriented artifact cache used to skip
// re-rendering previews of unchanged documents.
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts keyed by document content.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKeyOpts scope an artifact key to the rendering parameters
// that affect the output.
type ArtifactKeyOpts struct {
	Format string
	Width  int
}

// Keyer generates cache keys for documents and rendered artifacts.
type Keyer interface {
	// DocumentKey generates a key for a document's serialized content.
	DocumentKey(docHash string) string

	// ArtifactKey generates a key for a rendered artifact, scoped by
	// format and width so the same document can cache multiple outputs.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DocumentKey generates a key for document content.
func (k *DefaultKeyer) DocumentKey(docHash string) string {
	return hashKey("doc", docHash)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", docHash, opts.Format, opts.Width)
}
