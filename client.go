package linkcache

import (
	"context"
	"fmt"
	"net/http"
	"time"

	c "github.com/unkn0wn-root/linkcache/codec"
	"github.com/unkn0wn-root/linkcache/internal/proto"
	st "github.com/unkn0wn-root/linkcache/store"
)

const (
	defaultTimeout = 30 * time.Second
	dataNamespace  = "d:"
)

type client[V any] struct {
	codec   c.Codec[V]
	rest    *executor
	log     Logger
	hooks   Hooks
	timeout time.Duration
	enabled bool

	// direct-read path; nil when the client is service-only
	direct     st.Store
	dataPrefix string
	closeStore bool
}

func newClient[V any](opts Options[V]) (*client[V], error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("linkcache: base URL is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("linkcache: codec is required")
	}
	if opts.Direct != nil && opts.Direct.Store == nil {
		return nil, fmt.Errorf("linkcache: direct store config without a store")
	}

	cl := &client[V]{
		codec:   opts.Codec,
		enabled: !opts.Disabled,
	}

	// defaults
	cl.log = coalesce[Logger](opts.Logger, NopLogger{})
	cl.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	cl.timeout = coalesce[time.Duration](opts.RequestTimeout, defaultTimeout)

	doer := opts.HTTPClient
	if doer == nil {
		doer = &http.Client{}
	}

	rest, err := newExecutor(opts.BaseURL, doer, cl.log, cl.hooks)
	if err != nil {
		return nil, fmt.Errorf("linkcache: bad base URL: %w", err)
	}
	cl.rest = rest

	if opts.Direct != nil {
		cl.direct = opts.Direct.Store
		cl.dataPrefix = opts.Direct.Prefix + dataNamespace
		cl.closeStore = opts.Direct.CloseStore
	}
	return cl, nil
}

func (cl *client[V]) Enabled() bool { return cl.enabled }

func (cl *client[V]) Close(ctx context.Context) error {
	if cl.direct != nil && cl.closeStore {
		return cl.direct.Close(ctx)
	}
	return nil
}

func (cl *client[V]) Get(ctx context.Context, key string, opts ...CallOption) (V, bool, error) {
	var zero V
	if !cl.enabled {
		return zero, false, nil
	}
	o := applyCallOptions(opts)
	if cl.direct != nil && !o.fromService {
		return cl.directGet(ctx, key)
	}

	// reads always wait; background mode makes no sense for a lookup
	var raw proto.Payload
	if err := cl.rest.do(ctx, proto.Get(key, cl.timeout), true, &raw); err != nil {
		return zero, false, err
	}
	if raw == nil {
		return zero, false, nil
	}
	v, err := cl.decode("get", key, raw)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

func (cl *client[V]) GetMany(ctx context.Context, keys []string, opts ...CallOption) ([]Result[V], error) {
	out := make([]Result[V], len(keys))
	if !cl.enabled || len(keys) == 0 {
		return out, nil
	}
	o := applyCallOptions(opts)
	if cl.direct != nil && !o.fromService {
		return cl.directGetMany(ctx, keys)
	}

	var byKey map[string]proto.Payload
	if err := cl.rest.do(ctx, proto.GetMany(keys, cl.timeout), true, &byKey); err != nil {
		return nil, err
	}
	// map the service reply back onto input order; keys the service added
	// on its own are ignored, duplicates each get their own slot
	for i, k := range keys {
		raw, ok := byKey[k]
		if !ok || raw == nil {
			continue
		}
		v, err := cl.decode("get_many", k, raw)
		if err != nil {
			return nil, err
		}
		out[i] = Result[V]{Value: v, Found: true}
	}
	return out, nil
}

func (cl *client[V]) Set(ctx context.Context, key string, value V, ttl time.Duration, associations []string, opts ...CallOption) error {
	if !cl.enabled {
		return nil
	}
	o := applyCallOptions(opts)
	data, err := cl.codec.Encode(value)
	if err != nil {
		return &CodecError{Op: "set", Key: key, Err: err}
	}
	req := proto.Set(key, data, ttl, associations, o.broadcastOr(false), cl.timeout)
	return cl.dispatch(ctx, req, o.wait)
}

func (cl *client[V]) Clear(ctx context.Context, keys []string, level ClearLevel, opts ...CallOption) error {
	if !cl.enabled {
		return nil
	}
	o := applyCallOptions(opts)
	level = coalesce[ClearLevel](level, ClearAll)
	req := proto.Clear(keys, string(level), o.broadcastOr(true), cl.timeout)
	return cl.dispatch(ctx, req, o.wait)
}

func (cl *client[V]) ClearLater(ctx context.Context, keys []string, opts ...CallOption) error {
	if !cl.enabled {
		return nil
	}
	o := applyCallOptions(opts)
	return cl.dispatch(ctx, proto.ClearLater(keys, cl.timeout), o.wait)
}

func (cl *client[V]) TriggerClearNow(ctx context.Context, opts ...CallOption) error {
	if !cl.enabled {
		return nil
	}
	o := applyCallOptions(opts)
	return cl.dispatch(ctx, proto.ClearNow(cl.timeout), o.wait)
}

// dispatch sends a mutation and discards the acknowledgment body.
func (cl *client[V]) dispatch(ctx context.Context, req proto.Request, wait bool) error {
	if err := cl.rest.do(ctx, req, wait, nil); err != nil {
		return err
	}
	if !wait {
		cl.hooks.BackgroundAccepted(req.Op)
	}
	return nil
}

func (cl *client[V]) decode(op, key string, raw []byte) (V, error) {
	v, err := cl.codec.Decode(raw)
	if err != nil {
		var zero V
		cl.hooks.DecodeFailure(key, err)
		return zero, &CodecError{Op: op, Key: key, Err: err}
	}
	return v, nil
}
