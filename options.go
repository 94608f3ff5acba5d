package linkcache

// CallOption tunes a single operation.
type CallOption func(*callOptions)

// FromService forces a read through the service even when a direct store is
// configured. Ignored by mutations.
func FromService() CallOption {
	return func(o *callOptions) { o.fromService = true }
}

// WithBroadcast sets whether the operation propagates to all datacenters.
// When absent, Set stays local and Clear broadcasts - invalidation should
// propagate by default, writes should not.
func WithBroadcast(broadcast bool) CallOption {
	return func(o *callOptions) { o.broadcast = &broadcast }
}

// WithWait makes the caller block until the service fully completed the
// operation instead of accepting a background acknowledgment. Reads always
// wait.
func WithWait(wait bool) CallOption {
	return func(o *callOptions) { o.wait = wait }
}

// broadcast is tri-state: Set and Clear default differently, so "explicitly
// false" must stay distinguishable from "unset".
type callOptions struct {
	fromService bool
	broadcast   *bool
	wait        bool
}

func applyCallOptions(opts []CallOption) callOptions {
	var o callOptions
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func (o callOptions) broadcastOr(def bool) bool {
	if o.broadcast != nil {
		return *o.broadcast
	}
	return def
}
