package codec

import (
	"github.com/unkn0wn-root/textcompat"
)

// Text is a Codec for Go strings that honours a Normalizer's encoding and
// error policy in both directions. The zero value is NOT ready to use.
// Construct with NewText.
type Text struct {
	n *textcompat.Normalizer
}

var _ Codec[string] = Text{}

// NewText builds a Text codec for opts.Encoding/opts.Errors.
func NewText(opts textcompat.Options) (Text, error) {
	n, err := textcompat.New(opts)
	if err != nil {
		return Text{}, err
	}
	return Text{n: n}, nil
}

func (c Text) Encode(s string) ([]byte, error) { return c.n.Encode(s) }
func (c Text) Decode(b []byte) (string, error) { return c.n.Normalize(textcompat.Bytes(b)) }
