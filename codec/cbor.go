package codec

import (
	"errors"

	"github.com/fxamacker/cbor/v2"

	"github.com/unkn0wn-root/textcompat"
)

const (
	majorByteString = 2
	majorTextString = 3
)

var errEmptyCBOR = errors.New("codec: empty CBOR payload")

// CBOR carries Values using fxamacker/cbor: Text as a text string (major
// type 3), Bytes as a byte string (major type 2). The zero value is NOT
// ready to use. Construct with NewCBOR or MustCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core
// Deterministic) when Other values must encode byte-for-byte stably.
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec[textcompat.Value] = CBOR{}

func NewCBOR(deterministic bool) (CBOR, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	eo.Time = cbor.TimeRFC3339Nano

	em, err := eo.EncMode()
	if err != nil {
		return CBOR{}, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
func MustCBOR(deterministic bool) CBOR {
	c, err := NewCBOR(deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR) Encode(v textcompat.Value) ([]byte, error) {
	return c.enc.Marshal(wireValue(v))
}

func (c CBOR) Decode(b []byte) (textcompat.Value, error) {
	if len(b) == 0 {
		return textcompat.Value{}, errEmptyCBOR
	}

	switch b[0] >> 5 {
	case majorTextString:
		var s string
		if err := c.dec.Unmarshal(b, &s); err != nil {
			return textcompat.Value{}, err
		}
		return textcompat.Text(s), nil
	case majorByteString:
		var raw []byte
		if err := c.dec.Unmarshal(b, &raw); err != nil {
			return textcompat.Value{}, err
		}
		return textcompat.Bytes(raw), nil
	default:
		var x any
		if err := c.dec.Unmarshal(b, &x); err != nil {
			return textcompat.Value{}, err
		}
		return textcompat.Other(x), nil
	}
}
