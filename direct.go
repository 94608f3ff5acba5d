package linkcache

import (
	"context"
	"fmt"
)

// Direct-read path: the service writes every cached value to the backing
// key-value store under {prefix}d:{key}; reading it there skips a network
// hop through the service. Store failures surface as StoreError - there is
// no fallback to the service path.

func (cl *client[V]) dataKey(key string) string {
	return cl.dataPrefix + key
}

func (cl *client[V]) directGet(ctx context.Context, key string) (V, bool, error) {
	var zero V
	raw, ok, err := cl.direct.Get(ctx, cl.dataKey(key))
	if err != nil {
		cl.hooks.StoreFault(1, err)
		cl.log.Warn("direct read failed", Fields{"key": key, "err": err})
		return zero, false, &StoreError{Keys: []string{key}, Err: err}
	}
	if !ok {
		return zero, false, nil
	}
	v, err := cl.decode("get", key, raw)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

func (cl *client[V]) directGetMany(ctx context.Context, keys []string) ([]Result[V], error) {
	storage := make([]string, len(keys))
	for i, k := range keys {
		storage[i] = cl.dataKey(k)
	}
	vals, err := cl.direct.MGet(ctx, storage)
	if err != nil {
		cl.hooks.StoreFault(len(keys), err)
		cl.log.Warn("direct multi-read failed", Fields{"keys": len(keys), "err": err})
		return nil, &StoreError{Keys: keys, Err: err}
	}
	if len(vals) != len(keys) {
		err := fmt.Errorf("short multi-get reply: %d values for %d keys", len(vals), len(keys))
		cl.hooks.StoreFault(len(keys), err)
		return nil, &StoreError{Keys: keys, Err: err}
	}

	out := make([]Result[V], len(keys))
	for i, raw := range vals {
		if raw == nil {
			continue
		}
		v, err := cl.decode("get_many", keys[i], raw)
		if err != nil {
			return nil, err
		}
		out[i] = Result[V]{Value: v, Found: true}
	}
	return out, nil
}
