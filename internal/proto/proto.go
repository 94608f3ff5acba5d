// Package proto builds protocol-level request descriptions for the
// cache-link service. Construction is pure: no I/O happens here.
package proto

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Request describes one HTTP call to the service. Path is already
// percent-escaped; Body, when non-nil, is marshaled as JSON by the executor.
type Request struct {
	Op      string
	Method  string
	Path    string
	Query   url.Values
	Body    any
	Timeout time.Duration
}

// Payload carries a codec-encoded value across the JSON wire.
// encoding/json renders it as a base64 string, so binary codecs survive
// transport; nil marshals as null and unmarshals back to nil.
type Payload []byte

// SetBody is the PUT / request body.
type SetBody struct {
	Key          string   `json:"key"`
	Data         Payload  `json:"data"`
	Millis       int64    `json:"millis"`
	Associations []string `json:"associations"`
	Broadcast    bool     `json:"broadcast"`
}

// ClearBody is the DELETE / request body. Local is the inverse of the
// caller's broadcast flag.
type ClearBody struct {
	Keys   []string `json:"key"`
	Levels string   `json:"levels"`
	Local  bool     `json:"local"`
}

// ClearLaterBody is the PUT /clear-later request body.
type ClearLaterBody struct {
	Keys []string `json:"key"`
}

// Get builds a single-key lookup: GET /{escaped key}.
func Get(key string, timeout time.Duration) Request {
	return Request{
		Op:      "get",
		Method:  http.MethodGet,
		Path:    "/" + EscapeKey(key),
		Timeout: timeout,
	}
}

// GetMany builds a batched lookup: GET /?k=key&k=key...
func GetMany(keys []string, timeout time.Duration) Request {
	q := url.Values{"k": append([]string(nil), keys...)}
	return Request{
		Op:      "get_many",
		Method:  http.MethodGet,
		Path:    "/",
		Query:   q,
		Timeout: timeout,
	}
}

// Set builds a write with TTL and association list. Association order is
// preserved on the wire; a nil list is sent as an empty one.
func Set(key string, data []byte, ttl time.Duration, associations []string, broadcast bool, timeout time.Duration) Request {
	if associations == nil {
		associations = []string{}
	}
	return Request{
		Op:     "set",
		Method: http.MethodPut,
		Path:   "/",
		Body: SetBody{
			Key:          key,
			Data:         data,
			Millis:       ttl.Milliseconds(),
			Associations: associations,
			Broadcast:    broadcast,
		},
		Timeout: timeout,
	}
}

// Clear builds an invalidation of the listed keys.
func Clear(keys []string, level string, broadcast bool, timeout time.Duration) Request {
	return Request{
		Op:     "clear",
		Method: http.MethodDelete,
		Path:   "/",
		Body: ClearBody{
			Keys:   keys,
			Levels: level,
			Local:  !broadcast,
		},
		Timeout: timeout,
	}
}

// ClearLater builds a deferred invalidation: PUT /clear-later.
func ClearLater(keys []string, timeout time.Duration) Request {
	return Request{
		Op:      "clear_later",
		Method:  http.MethodPut,
		Path:    "/clear-later",
		Body:    ClearLaterBody{Keys: keys},
		Timeout: timeout,
	}
}

// ClearNow builds the deferred-clear flush: GET /clear-now.
func ClearNow(timeout time.Duration) Request {
	return Request{
		Op:      "clear_now",
		Method:  http.MethodGet,
		Path:    "/clear-now",
		Timeout: timeout,
	}
}

// EscapeKey percent-escapes a cache key for use as a URL path segment.
// Unlike url.PathEscape it also escapes ':' and friends ("user:1" ->
// "user%3A1"), matching the service's router, and renders spaces as %20.
func EscapeKey(key string) string {
	return strings.ReplaceAll(url.QueryEscape(key), "+", "%20")
}
