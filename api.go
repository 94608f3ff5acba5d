package linkcache

import (
	"context"
	"time"

	c "github.com/unkn0wn-root/linkcache/codec"
	st "github.com/unkn0wn-root/linkcache/store"
)

// ClearLevel controls how far the service cascades an invalidation.
type ClearLevel string

const (
	// ClearAll cascades the clear to every key associated with the listed keys.
	ClearAll ClearLevel = "all"
	// ClearNone clears only the listed keys.
	ClearNone ClearLevel = "none"
)

// Result is one slot of a GetMany reply. Found=false marks "no value";
// Value is the zero value of V in that case.
type Result[V any] struct {
	Value V
	Found bool
}

// Client is the high-level cache-link API. V is the caller's value type.
// Serialization is handled by a pluggable codec.Codec[V].
//
// Reads go straight to the backing key-value store when a direct store is
// configured (unless FromService is passed); writes and invalidations always
// go through the cache-link service.
type Client[V any] interface {
	Enabled() bool
	Close(context.Context) error

	// Single
	Get(ctx context.Context, key string, opts ...CallOption) (v V, ok bool, err error)

	// Bulk. The reply has exactly one slot per input key, in input order,
	// duplicates included.
	GetMany(ctx context.Context, keys []string, opts ...CallOption) ([]Result[V], error)

	// Set stores value under key with the given TTL and declares the keys it
	// causally depends on. ttl is sent to the service in milliseconds.
	Set(ctx context.Context, key string, value V, ttl time.Duration, associations []string, opts ...CallOption) error

	// Clear invalidates the listed keys. An empty level means ClearAll.
	Clear(ctx context.Context, keys []string, level ClearLevel, opts ...CallOption) error

	// ClearLater queues the listed keys for deferred invalidation.
	ClearLater(ctx context.Context, keys []string, opts ...CallOption) error

	// TriggerClearNow flushes every deferred invalidation.
	TriggerClearNow(ctx context.Context, opts ...CallOption) error
}

// DirectStore attaches a read path straight against the key-value store
// backing the service. Values live under Prefix + "d:" + key.
type DirectStore struct {
	Store  st.Store
	Prefix string
	// CloseStore true only if this client exclusively owns the store.
	CloseStore bool
}

// Options tune the client. BaseURL and Codec are required; others have
// sensible defaults.
type Options[V any] struct {
	// Required
	BaseURL string // cache-link service endpoint, e.g. "http://cachelink:9001"
	Codec   c.Codec[V]

	HTTPClient     Doer          // if nil, a plain *http.Client is used
	RequestTimeout time.Duration // per request; 0 => 30s
	Logger         Logger        // if nil, NopLogger is used
	Hooks          Hooks         // if nil, NopHooks is used
	Direct         *DirectStore  // nil => every read goes through the service
	Disabled       bool          // default false (enabled)
}

func New[V any](opts Options[V]) (Client[V], error) {
	return newClient[V](opts)
}
