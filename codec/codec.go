// Package codec moves textcompat values across wire formats that already
// distinguish byte strings from text strings. Decoding resolves the variant
// from the wire type, so a msgpack bin never reaches the normalizer as text
// and a msgpack str is never decoded twice.
package codec

import "github.com/unkn0wn-root/textcompat"

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// wireValue is v.Any() with empty Bytes kept as an empty byte string; a nil
// slice would go out as nil/null and come back as Other.
func wireValue(v textcompat.Value) any {
	if b, ok := v.AsBytes(); ok && b == nil {
		return []byte{}
	}
	return v.Any()
}
