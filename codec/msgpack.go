package codec

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/unkn0wn-root/textcompat"
)

// Msgpack carries Values using vmihailenco/msgpack/v5: Text as str, Bytes
// as bin, anything else with the library's default encoding.
// The zero value is ready to use.
type Msgpack struct{}

var _ Codec[textcompat.Value] = Msgpack{}

func (Msgpack) Encode(v textcompat.Value) ([]byte, error) {
	return msgpack.Marshal(wireValue(v))
}

func (Msgpack) Decode(b []byte) (textcompat.Value, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(b))
	code, err := dec.PeekCode()
	if err != nil {
		return textcompat.Value{}, err
	}

	switch {
	case msgpcode.IsString(code):
		s, err := dec.DecodeString()
		if err != nil {
			return textcompat.Value{}, err
		}
		return textcompat.Text(s), nil
	case msgpcode.IsBin(code):
		raw, err := dec.DecodeBytes()
		if err != nil {
			return textcompat.Value{}, err
		}
		return textcompat.Bytes(raw), nil
	default:
		x, err := dec.DecodeInterface()
		if err != nil {
			return textcompat.Value{}, err
		}
		return textcompat.Other(x), nil
	}
}
