package linkcache

import (
	"fmt"
	"strings"
)

// CodecError reports a value that failed to encode or decode. Decode
// failures are hard errors; a corrupt payload is never reported as a miss.
type CodecError struct {
	Op  string // logical operation, e.g. "get", "set"
	Key string
	Err error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("linkcache: %s %q: codec: %v", e.Op, e.Key, e.Err)
}

func (e *CodecError) Unwrap() error { return e.Err }

// StoreError reports a failed direct-store read. The client does not fall
// back to the service path on store failure.
type StoreError struct {
	Keys []string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("linkcache: direct read [%s]: %v", strings.Join(e.Keys, ","), e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// TransportError reports that the service could not be reached (timeout,
// connection refused, interrupted body).
type TransportError struct {
	Op     string
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("linkcache: %s: %s %s: %v", e.Op, e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError reports a non-2xx answer from the cache-link service, with
// the original status and response body preserved.
type ServiceError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("linkcache: %s: service status %d: %s: %v", e.Op, e.Status, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("linkcache: %s: service status %d: %s", e.Op, e.Status, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("linkcache: %s: service status %d: %v", e.Op, e.Status, e.Err)
	default:
		return fmt.Sprintf("linkcache: %s: service status %d", e.Op, e.Status)
	}
}

func (e *ServiceError) Unwrap() error { return e.Err }
