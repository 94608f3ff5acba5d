package linkcache

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The client calls them on hot paths.
type Hooks interface {
	// The direct store failed a read. keys is the number of keys in the call.
	StoreFault(keys int, err error)

	// A cached payload failed to decode (direct store or service reply).
	DecodeFailure(key string, err error)

	// The service answered outside the 2xx range.
	// op ∈ {"get", "get_many", "set", "clear", "clear_later", "clear_now"}
	ServiceFault(op string, status int)

	// The service could not be reached at the transport level.
	TransportFault(op string, err error)

	// A mutation was handed off for background completion (wait=false) and
	// the service acknowledged receipt.
	BackgroundAccepted(op string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) StoreFault(int, error)        {}
func (NopHooks) DecodeFailure(string, error)  {}
func (NopHooks) ServiceFault(string, int)     {}
func (NopHooks) TransportFault(string, error) {}
func (NopHooks) BackgroundAccepted(string)    {}
