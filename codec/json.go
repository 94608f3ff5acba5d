package codec

import "encoding/json"

// JSON is the default codec. Output is UTF-8 JSON text, which crosses the
// service wire without further normalization.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
