package textcompat

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/unkn0wn-root/textcompat/internal/utf8x"
	"github.com/unkn0wn-root/textcompat/internal/util"
)

// DefaultEncoding is used when Options.Encoding is empty.
const DefaultEncoding = "utf-8"

type encKind uint8

const (
	encUTF8 encKind = iota
	encUTF8Sig
	encASCII
	encIndexed
)

// textEncoding is a resolved encoding label.
type textEncoding struct {
	name string
	kind encKind
	enc  encoding.Encoding
}

var replacementUTF8 = []byte(string(utf8.RuneError))

// builtin labels that are decoded without x/text, plus the few common
// spellings the indexes do not know.
var builtinLabels = map[string]textEncoding{
	"utf-8":     {name: "utf-8", kind: encUTF8},
	"utf8":      {name: "utf-8", kind: encUTF8},
	"u8":        {name: "utf-8", kind: encUTF8},
	"utf":       {name: "utf-8", kind: encUTF8},
	"cp65001":   {name: "utf-8", kind: encUTF8},
	"utf-8-sig": {name: "utf-8-sig", kind: encUTF8Sig},
	"utf8-sig":  {name: "utf-8-sig", kind: encUTF8Sig},
	"ascii":     {name: "ascii", kind: encASCII},
	"us-ascii":  {name: "ascii", kind: encASCII},
	"646":       {name: "ascii", kind: encASCII},
	"latin-1":   {name: "ISO-8859-1", kind: encIndexed, enc: charmap.ISO8859_1},
	"latin":     {name: "ISO-8859-1", kind: encIndexed, enc: charmap.ISO8859_1},
	"l1":        {name: "ISO-8859-1", kind: encIndexed, enc: charmap.ISO8859_1},
}

// lookupEncoding resolves label against the builtin table, then the IANA
// registry, then the WHATWG label set.
func lookupEncoding(label string) (textEncoding, error) {
	norm := util.NormalizeLabel(label)
	if te, ok := builtinLabels[strings.ReplaceAll(norm, "_", "-")]; ok {
		return te, nil
	}

	for _, l := range []string{norm, strings.ReplaceAll(norm, "_", "-")} {
		if enc, err := ianaindex.IANA.Encoding(l); err == nil && enc != nil {
			name, err := ianaindex.MIME.Name(enc)
			if err != nil || name == "" {
				name = l
			}
			return textEncoding{name: name, kind: encIndexed, enc: enc}, nil
		}
	}
	if enc, err := htmlindex.Get(norm); err == nil && enc != nil {
		name, err := htmlindex.Name(enc)
		if err != nil {
			name = norm
		}
		return textEncoding{name: name, kind: encIndexed, enc: enc}, nil
	}

	return textEncoding{}, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
}

// decode returns the text for b and how many malformed sequences were
// replaced or dropped.
func (te textEncoding) decode(b []byte, p ErrorPolicy) (string, int, error) {
	switch te.kind {
	case encUTF8Sig:
		return te.fromUTF8x(utf8x.Decode(utf8x.StripBOM(b), p.utf8x()))
	case encUTF8:
		return te.fromUTF8x(utf8x.Decode(b, p.utf8x()))
	case encASCII:
		return te.fromUTF8x(utf8x.DecodeASCII(b, p.utf8x()))
	}

	if cm, ok := te.enc.(*charmap.Charmap); ok {
		return te.decodeCharmap(cm, b, p)
	}

	out, err := te.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", 0, &DecodeError{Encoding: te.name, Offset: -1, Reason: err.Error()}
	}
	// Multi-byte decoders substitute U+FFFD without reporting where.
	n := bytes.Count(out, replacementUTF8)
	if n == 0 || te.roundTrips(out, b) {
		return string(out), 0, nil
	}
	switch p {
	case Strict:
		return "", 0, &DecodeError{Encoding: te.name, Offset: -1, Reason: "undecodable byte sequence"}
	case Ignore:
		return string(bytes.ReplaceAll(out, replacementUTF8, nil)), n, nil
	default:
		return string(out), n, nil
	}
}

// roundTrips reports whether out encodes back to exactly b, meaning every
// U+FFFD in out was present in the input rather than substituted.
func (te textEncoding) roundTrips(out, b []byte) bool {
	re, err := te.enc.NewEncoder().Bytes(out)
	return err == nil && bytes.Equal(re, b)
}

func (te textEncoding) fromUTF8x(s string, lossy int, err error) (string, int, error) {
	var ie *utf8x.InvalidError
	if errors.As(err, &ie) {
		return "", 0, &DecodeError{Encoding: te.name, Offset: ie.Offset, Bytes: ie.Bytes, Reason: ie.Reason}
	}
	return s, lossy, err
}

func (te textEncoding) decodeCharmap(cm *charmap.Charmap, b []byte, p ErrorPolicy) (string, int, error) {
	var sb strings.Builder
	sb.Grow(len(b))
	lossy := 0
	for off, c := range b {
		r := cm.DecodeByte(c)
		if r != utf8.RuneError {
			sb.WriteRune(r)
			continue
		}
		if p == Strict {
			return "", 0, &DecodeError{
				Encoding: te.name,
				Offset:   off,
				Bytes:    b[off : off+1],
				Reason:   "character maps to <undefined>",
			}
		}
		lossy++
		if p == Replace {
			sb.WriteRune(utf8.RuneError)
		}
	}
	return sb.String(), lossy, nil
}

// encode is the inverse of decode. Replace writes '?' for runes the target
// cannot represent, except for multi-byte encodings where x/text picks the
// encoding's own replacement.
func (te textEncoding) encode(s string, p ErrorPolicy) ([]byte, error) {
	switch te.kind {
	case encUTF8, encUTF8Sig:
		out := s
		if !utf8.ValidString(s) {
			switch p {
			case Strict:
				return nil, &EncodeError{Encoding: te.name, Err: errors.New("invalid UTF-8 in input")}
			case Replace:
				out = strings.ToValidUTF8(s, string(utf8.RuneError))
			default:
				out = strings.ToValidUTF8(s, "")
			}
		}
		if te.kind == encUTF8Sig {
			return append([]byte{0xEF, 0xBB, 0xBF}, out...), nil
		}
		return []byte(out), nil
	case encASCII:
		return te.encodeBytewise(s, p, func(r rune) (byte, bool) {
			return byte(r), r < utf8.RuneSelf
		})
	}

	if cm, ok := te.enc.(*charmap.Charmap); ok {
		return te.encodeBytewise(s, p, cm.EncodeRune)
	}

	switch p {
	case Replace:
		return encoding.ReplaceUnsupported(te.enc.NewEncoder()).Bytes([]byte(s))
	case Ignore:
		var buf bytes.Buffer
		for _, r := range s {
			b, err := te.enc.NewEncoder().String(string(r))
			if err != nil {
				continue
			}
			buf.WriteString(b)
		}
		return buf.Bytes(), nil
	default:
		b, err := te.enc.NewEncoder().String(s)
		if err != nil {
			return nil, &EncodeError{Encoding: te.name, Err: err}
		}
		return []byte(b), nil
	}
}

func (te textEncoding) encodeBytewise(s string, p ErrorPolicy, enc func(rune) (byte, bool)) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i, r := range s {
		if b, ok := enc(r); ok {
			out = append(out, b)
			continue
		}
		switch p {
		case Strict:
			return nil, &EncodeError{
				Encoding: te.name,
				Err:      fmt.Errorf("character %q in position %d not in range", r, i),
			}
		case Replace:
			out = append(out, '?')
		}
	}
	return out, nil
}
