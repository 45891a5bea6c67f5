package textcompat

import (
	"errors"
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/unkn0wn-root/textcompat/render"
)

// Options configure a Normalizer. The zero value decodes strict UTF-8 and
// renders other values with fmt.
type Options struct {
	Encoding string          // "" => DefaultEncoding
	Errors   ErrorPolicy     // zero => Strict
	Renderer render.Renderer // nil => render.Go{}
	Logger   Logger          // nil => NopLogger
	Hooks    Hooks           // nil => NopHooks
}

// Normalizer turns a Value into decoded text. It is immutable after New and
// safe for concurrent use.
type Normalizer struct {
	enc      textEncoding
	policy   ErrorPolicy
	renderer render.Renderer
	log      Logger
	hooks    Hooks
}

var defaultNormalizer = mustNew(Options{})

func New(opts Options) (*Normalizer, error) {
	if !opts.Errors.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, opts.Errors)
	}

	n := &Normalizer{
		policy:   opts.Errors,
		renderer: coalesce[render.Renderer](opts.Renderer, render.Go{}),
		log:      coalesce[Logger](opts.Logger, NopLogger{}),
		hooks:    coalesce[Hooks](opts.Hooks, NopHooks{}),
	}

	label := coalesce(opts.Encoding, DefaultEncoding)
	enc, err := lookupEncoding(label)
	if err != nil {
		n.hooks.UnknownEncoding(label)
		n.log.Warn("textcompat: unknown encoding", Fields{"label": label})
		return nil, err
	}
	n.enc = enc

	return n, nil
}

func mustNew(opts Options) *Normalizer {
	n, err := New(opts)
	if err != nil {
		panic(err)
	}
	return n
}

// Encoding returns the canonical name of the configured encoding.
func (n *Normalizer) Encoding() string { return n.enc.name }

// Policy returns the configured error policy.
func (n *Normalizer) Policy() ErrorPolicy { return n.policy }

// Normalize returns the text form of v:
//   - Text is returned unchanged. It is never decoded again, so feeding the
//     output of Normalize back in is a no-op.
//   - Bytes are decoded with the configured encoding and error policy.
//   - Other values are rendered; output that is not valid UTF-8 is then
//     decoded like Bytes.
func (n *Normalizer) Normalize(v Value) (string, error) {
	switch v.kind {
	case KindText:
		return v.text, nil
	case KindBytes:
		return n.decode(v.raw)
	default:
		s, err := n.renderer.Render(v.other)
		if err != nil {
			return "", fmt.Errorf("textcompat: render %T: %w", v.other, err)
		}
		if utf8.ValidString(s) {
			return s, nil
		}
		return n.decode([]byte(s))
	}
}

// ToUnicode is Normalize(Of(v)).
func (n *Normalizer) ToUnicode(v any) (string, error) {
	return n.Normalize(Of(v))
}

// Encode converts text to bytes in the configured encoding, applying the
// error policy to runes the encoding cannot represent.
func (n *Normalizer) Encode(s string) ([]byte, error) {
	b, err := n.enc.encode(s, n.policy)
	if err != nil {
		n.log.Debug("textcompat: encode failed", Fields{"encoding": n.enc.name, "err": err})
		return nil, err
	}
	return b, nil
}

func (n *Normalizer) decode(b []byte) (string, error) {
	s, lossy, err := n.enc.decode(b, n.policy)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			n.hooks.DecodeFailed(de.Encoding, de.Offset)
		}
		return "", err
	}
	if lossy > 0 {
		n.hooks.LossyDecode(n.enc.name, n.policy, lossy)
		n.log.Debug("textcompat: lossy decode", Fields{
			"encoding": n.enc.name,
			"policy":   n.policy.String(),
			"count":    lossy,
		})
	}
	return s, nil
}

// ToUnicode normalizes v as strict UTF-8, rendering non-string values with
// fmt. It is the shorthand for the common case:
//
//	s, err := textcompat.ToUnicode([]byte{0xC3, 0xBF}) // "ÿ"
//	s, err = textcompat.ToUnicode(s)                  // still "ÿ"
func ToUnicode(v any) (string, error) {
	return defaultNormalizer.Normalize(Of(v))
}

// MustToUnicode is like ToUnicode but panics on error.
// Handy for tests and package-level values; avoid on untrusted input.
func MustToUnicode(v any) string {
	s, err := ToUnicode(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Normalize decodes v with an explicit encoding label and error policy.
func Normalize(v Value, encoding string, policy ErrorPolicy) (string, error) {
	if v.kind == KindText {
		return v.text, nil
	}
	n, err := New(Options{Encoding: encoding, Errors: policy})
	if err != nil {
		return "", err
	}
	return n.Normalize(v)
}

// IsInteger reports whether v holds a Go integer of any width.
func IsInteger(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}
