package textcompat

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/textcompat/internal/util"
)

var (
	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("textcompat: decode error")
	// ErrEncode is matched by every *EncodeError.
	ErrEncode = errors.New("textcompat: encode error")
	// ErrUnknownEncoding is returned for labels no index recognizes.
	ErrUnknownEncoding = errors.New("textcompat: unknown encoding")
	// ErrUnknownPolicy is returned for error policies outside Strict/Replace/Ignore.
	ErrUnknownPolicy = errors.New("textcompat: unknown error policy")
	// ErrNilConn is returned when ReadResponse is given no connection.
	ErrNilConn = errors.New("textcompat: nil connection")
)

// DecodeError reports a malformed byte sequence under the Strict policy.
// Offset is the byte position of the sequence, or -1 when the decoder for
// the encoding cannot locate it.
type DecodeError struct {
	Encoding string
	Offset   int
	Bytes    []byte
	Reason   string
}

func (e *DecodeError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("textcompat: %s codec can't decode input: %s", e.Encoding, e.Reason)
	}
	return fmt.Sprintf("textcompat: %s codec can't decode %s in position %d: %s",
		e.Encoding, util.DescribeBytes(e.Bytes), e.Offset, e.Reason)
}

func (e *DecodeError) Unwrap() error { return ErrDecode }

// EncodeError reports a rune the target encoding cannot represent.
type EncodeError struct {
	Encoding string
	Err      error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("textcompat: %s codec can't encode input: %v", e.Encoding, e.Err)
}

func (e *EncodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrEncode}
	}
	return []error{ErrEncode, e.Err}
}
