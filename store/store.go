// Package store defines the read-only view of the key-value store backing
// the cache-link service, used for the client's direct-read path.
package store

import "context"

// Store is a batched-capable byte reader. Implementations must be safe for
// concurrent use; connection pooling is theirs to manage.
type Store interface {
	// Get returns the raw bytes stored at key. ok=false means no value.
	Get(ctx context.Context, key string) (raw []byte, ok bool, err error)

	// MGet performs one batched lookup. The reply is positional: reply[i]
	// belongs to keys[i] and is nil when that key has no value.
	MGet(ctx context.Context, keys []string) ([][]byte, error)

	Close(ctx context.Context) error
}
