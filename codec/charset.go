package codec

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Charset wraps an inner codec whose byte output uses a non-UTF-8 text
// encoding and normalizes it to canonical UTF-8 for transport. App names
// the application-side encoding explicitly; nothing here ever consults
// process-wide state.
//
//	Encode: inner bytes (App charset) -> UTF-8
//	Decode: UTF-8 -> App charset -> inner decode
//
// With App nil or unicode.UTF8 both directions are passthrough, so
// Charset{Inner: x} is always safe to use in place of x.
type Charset[V any] struct {
	Inner Codec[V]
	App   encoding.Encoding // e.g. charmap.ISO8859_1; nil => UTF-8
}

var _ Codec[[]byte] = Charset[[]byte]{}

func (c Charset[V]) Encode(v V) ([]byte, error) {
	b, err := c.Inner.Encode(v)
	if err != nil || c.passthrough() {
		return b, err
	}
	return c.App.NewDecoder().Bytes(b)
}

func (c Charset[V]) Decode(b []byte) (V, error) {
	if !c.passthrough() {
		nb, err := c.App.NewEncoder().Bytes(b)
		if err != nil {
			var zero V
			return zero, err
		}
		b = nb
	}
	return c.Inner.Decode(b)
}

func (c Charset[V]) passthrough() bool {
	return c.App == nil || c.App == unicode.UTF8
}
