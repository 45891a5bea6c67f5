package codec

import (
	"bytes"
	"encoding/json"

	"github.com/unkn0wn-root/textcompat"
)

// JSON carries Values as JSON documents. JSON has no byte string type, so
// Bytes are encoded the encoding/json way (base64 text) and decode back as
// Text. Numbers decode as json.Number, which renders exactly as written.
type JSON struct{}

var _ Codec[textcompat.Value] = JSON{}

func (JSON) Encode(v textcompat.Value) ([]byte, error) { return json.Marshal(wireValue(v)) }

func (JSON) Decode(b []byte) (textcompat.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return textcompat.Value{}, err
	}
	if s, ok := x.(string); ok {
		return textcompat.Text(s), nil
	}
	return textcompat.Other(x), nil
}
