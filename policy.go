package textcompat

import (
	"fmt"
	"strings"

	"github.com/unkn0wn-root/textcompat/internal/utf8x"
)

// ErrorPolicy decides what happens to byte sequences the encoding cannot
// decode (or runes it cannot encode).
type ErrorPolicy uint8

const (
	// Strict fails with a *DecodeError (or *EncodeError). Default.
	Strict ErrorPolicy = iota
	// Replace substitutes U+FFFD when decoding and the encoding's
	// replacement byte when encoding.
	Replace
	// Ignore drops the offending sequence.
	Ignore
)

func (p ErrorPolicy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Replace:
		return "replace"
	case Ignore:
		return "ignore"
	default:
		return fmt.Sprintf("ErrorPolicy(%d)", uint8(p))
	}
}

func (p ErrorPolicy) valid() bool { return p <= Ignore }

func (p ErrorPolicy) utf8x() utf8x.Policy {
	switch p {
	case Replace:
		return utf8x.Replace
	case Ignore:
		return utf8x.Ignore
	default:
		return utf8x.Strict
	}
}

// ParseErrorPolicy maps "strict", "replace" and "ignore" (any case) to a
// policy. The empty string is Strict.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return Strict, nil
	case "replace":
		return Replace, nil
	case "ignore":
		return Ignore, nil
	default:
		return Strict, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}
