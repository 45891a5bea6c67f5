package textcompat

import "bytes"

// Kind tags which variant a Value holds.
type Kind uint8

const (
	// KindOther is any non-string value; it is rendered, not decoded.
	// It is the zero Kind, so the zero Value is Other(nil).
	KindOther Kind = iota
	// KindBytes is raw, still-encoded data.
	KindBytes
	// KindText is already decoded text.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindBytes:
		return "bytes"
	case KindText:
		return "text"
	default:
		return "other"
	}
}

// Value is the input to normalization: exactly one of bytes, text or an
// arbitrary value. Construct it with Bytes, Buffer, Text, Other or Of.
type Value struct {
	kind  Kind
	raw   []byte
	text  string
	other any
}

// Bytes wraps an encoded byte sequence. The slice is copied.
func Bytes(b []byte) Value {
	return Value{kind: KindBytes, raw: bytes.Clone(b)}
}

// Buffer wraps the unread portion of a mutable byte buffer. The contents are
// copied, so later writes to buf do not affect the Value.
func Buffer(buf *bytes.Buffer) Value {
	if buf == nil {
		return Value{kind: KindBytes}
	}
	return Bytes(buf.Bytes())
}

// Text wraps decoded text.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Other wraps a value that is neither bytes nor text.
func Other(v any) Value { return Value{kind: KindOther, other: v} }

// Of resolves a Go value into its variant. This is the only place the
// dynamic type of the input is inspected:
//
//	[]byte, *bytes.Buffer -> Bytes
//	string                -> Text
//	Value, *Value         -> unchanged
//	anything else         -> Other
func Of(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case *Value:
		if x == nil {
			return Other(nil)
		}
		return *x
	case string:
		return Text(x)
	case []byte:
		return Bytes(x)
	case *bytes.Buffer:
		return Buffer(x)
	default:
		return Other(v)
	}
}

func (v Value) Kind() Kind { return v.kind }

// AsBytes returns the raw bytes when v is KindBytes. The returned slice
// aliases v's storage and must not be modified.
func (v Value) AsBytes() ([]byte, bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	return v.raw, true
}

// AsText returns the text when v is KindText.
func (v Value) AsText() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// Any returns the payload of v regardless of its kind.
func (v Value) Any() any {
	switch v.kind {
	case KindBytes:
		return v.raw
	case KindText:
		return v.text
	default:
		return v.other
	}
}
