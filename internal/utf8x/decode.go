// Package utf8x decodes UTF-8 under an error policy, reporting the position
// and extent of the first malformed sequence.
package utf8x

import (
	"strings"
	"unicode/utf8"
)

type Policy uint8

const (
	Strict Policy = iota
	Replace
	Ignore
)

var bom = [...]byte{0xEF, 0xBB, 0xBF}

// InvalidError describes a malformed sequence found under Strict.
type InvalidError struct {
	Offset int
	Bytes  []byte
	Reason string
}

func (e *InvalidError) Error() string { return e.Reason }

// StripBOM removes a leading UTF-8 byte order mark, if present.
func StripBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == bom[0] && b[1] == bom[1] && b[2] == bom[2] {
		return b[3:]
	}
	return b
}

// Decode converts b to a string. lossy counts the malformed sequences that
// were replaced or dropped; it is always 0 under Strict.
//
// A malformed sequence is the maximal subpart of an ill-formed code unit
// sequence (Unicode 15, section 3.9), so a truncated three-byte character
// costs one replacement, not three.
func Decode(b []byte, p Policy) (s string, lossy int, err error) {
	if utf8.Valid(b) {
		return string(b), 0, nil
	}

	var sb strings.Builder
	sb.Grow(len(b))

	for off := 0; off < len(b); {
		r, size := utf8.DecodeRune(b[off:])
		if r != utf8.RuneError || size > 1 {
			sb.Write(b[off : off+size])
			off += size
			continue
		}

		n := maximalSubpart(b[off:])
		if p == Strict {
			return "", 0, &InvalidError{
				Offset: off,
				Bytes:  b[off : off+n],
				Reason: reason(b[off:], n),
			}
		}
		lossy++
		if p == Replace {
			sb.WriteRune(utf8.RuneError)
		}
		off += n
	}

	return sb.String(), lossy, nil
}

// DecodeASCII is Decode restricted to 7-bit input.
func DecodeASCII(b []byte, p Policy) (s string, lossy int, err error) {
	var sb strings.Builder
	sb.Grow(len(b))
	for off, c := range b {
		if c < utf8.RuneSelf {
			sb.WriteByte(c)
			continue
		}
		if p == Strict {
			return "", 0, &InvalidError{Offset: off, Bytes: b[off : off+1], Reason: "ordinal not in range(128)"}
		}
		lossy++
		if p == Replace {
			sb.WriteRune(utf8.RuneError)
		}
	}
	return sb.String(), lossy, nil
}

// maximalSubpart returns how many bytes starting at b[0] form one ill-formed
// sequence. b[0] must begin an invalid encoding.
func maximalSubpart(b []byte) int {
	c := b[0]
	lo, hi := byte(0x80), byte(0xBF)
	var need int
	switch {
	case c >= 0xC2 && c <= 0xDF:
		need = 1
	case c == 0xE0:
		need, lo = 2, 0xA0
	case c == 0xED:
		need, hi = 2, 0x9F
	case c >= 0xE1 && c <= 0xEF:
		need = 2
	case c == 0xF0:
		need, lo = 3, 0x90
	case c == 0xF4:
		need, hi = 3, 0x8F
	case c >= 0xF1 && c <= 0xF3:
		need = 3
	default:
		return 1
	}

	n := 1
	for i := 1; i <= need && i < len(b); i++ {
		if b[i] < lo || b[i] > hi {
			break
		}
		n++
		lo, hi = 0x80, 0xBF
	}
	return n
}

func reason(b []byte, n int) string {
	c := b[0]
	switch {
	case c >= 0x80 && c <= 0xBF:
		return "invalid start byte"
	case c == 0xC0 || c == 0xC1 || c >= 0xF5:
		return "invalid start byte"
	case n == len(b):
		return "unexpected end of data"
	default:
		return "invalid continuation byte"
	}
}
