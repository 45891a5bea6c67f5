// Package render produces the canonical text form of values that are neither
// bytes nor text.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
)

// Renderer converts an arbitrary value to text.
type Renderer interface {
	Render(v any) (string, error)
}

// Func adapts a plain function to Renderer.
type Func func(v any) (string, error)

func (f Func) Render(v any) (string, error) { return f(v) }

// Go renders with Go's own formatting: fmt.Sprint, which honours error and
// fmt.Stringer. Protobuf messages use the text format instead of their
// struct layout.
//
//	1           -> "1"
//	true        -> "true"
//	nil         -> "<nil>"
//	map[k:v]    -> "map[key:value]"
type Go struct{}

func (Go) Render(v any) (string, error) {
	if m, ok := v.(proto.Message); ok {
		b, err := prototext.MarshalOptions{}.Marshal(m)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return fmt.Sprint(v), nil
}

// JSON renders v as compact JSON: nil is "null", strings are quoted.
type JSON struct{}

func (JSON) Render(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CBOR renders v in CBOR extended diagnostic notation (RFC 8949 section 8)
// after encoding it with core deterministic options, so map keys come out
// sorted. The zero value is NOT ready to use. Construct with NewCBOR.
type CBOR struct {
	enc cbor.EncMode
}

var _ Renderer = CBOR{}

func NewCBOR() (CBOR, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em}, nil
}

// MustCBOR is like NewCBOR but panics on error.
func MustCBOR() CBOR {
	c, err := NewCBOR()
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR) Render(v any) (string, error) {
	b, err := c.enc.Marshal(v)
	if err != nil {
		return "", err
	}
	return cbor.Diagnose(b)
}
