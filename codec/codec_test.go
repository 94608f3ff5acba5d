package codec

import (
	"reflect"
	"testing"
)

type record struct {
	ID    string         `json:"id" msgpack:"id"`
	Tags  []string       `json:"tags" msgpack:"tags"`
	Attrs map[string]int `json:"attrs" msgpack:"attrs"`
}

var sample = record{
	ID:    "r:1",
	Tags:  []string{"a", "b"},
	Attrs: map[string]int{"x": 1, "y": 2},
}

func TestJSONRoundTrip(t *testing.T) {
	b, err := JSON[record]{}.Encode(sample)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := JSON[record]{}.Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, sample) {
		t.Fatalf("round trip: %+v", got)
	}
}

func TestJSONDecodeErrorIsNotSilent(t *testing.T) {
	if _, err := (JSON[record]{}).Decode([]byte("{broken")); err == nil {
		t.Fatalf("malformed input must fail decode")
	}
}

func TestMsgpackRoundTrip(t *testing.T) {
	b, err := Msgpack[record]{}.Encode(sample)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Msgpack[record]{}.Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, sample) {
		t.Fatalf("round trip: %+v", got)
	}
}

func TestCBORRoundTrip(t *testing.T) {
	cdc := MustCBOR[record](true)
	b, err := cdc.Encode(sample)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := cdc.Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, sample) {
		t.Fatalf("round trip: %+v", got)
	}

	// deterministic mode must be byte-stable
	b2, err := cdc.Encode(sample)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !reflect.DeepEqual(b, b2) {
		t.Fatalf("deterministic encode differs across calls")
	}
}

func TestRawCodecs(t *testing.T) {
	in := []byte{0x00, 0x01, 0xff}
	if out, _ := (Bytes{}).Encode(in); !reflect.DeepEqual(out, in) {
		t.Fatalf("Bytes.Encode changed input")
	}
	if out, _ := (Bytes{}).Decode(in); !reflect.DeepEqual(out, in) {
		t.Fatalf("Bytes.Decode changed input")
	}
	if b, _ := (String{}).Encode("héllo"); string(b) != "héllo" {
		t.Fatalf("String.Encode: %q", b)
	}
	if s, _ := (String{}).Decode([]byte("héllo")); s != "héllo" {
		t.Fatalf("String.Decode: %q", s)
	}
}

func TestLimitDecode(t *testing.T) {
	lim := Limit[record]{Inner: JSON[record]{}, MaxDecode: 8}

	big, err := lim.Encode(sample) // encode is never limited
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(big) <= 8 {
		t.Fatalf("test payload too small")
	}
	if _, err := lim.Decode(big); err == nil {
		t.Fatalf("oversized payload must fail decode")
	}

	small := Limit[string]{Inner: String{}, MaxDecode: 8}
	if s, err := small.Decode([]byte("ok")); err != nil || s != "ok" {
		t.Fatalf("in-limit decode: %q %v", s, err)
	}

	off := Limit[record]{Inner: JSON[record]{}, MaxDecode: 0}
	if _, err := off.Decode(big); err != nil {
		t.Fatalf("MaxDecode<=0 must disable the limit: %v", err)
	}
}
