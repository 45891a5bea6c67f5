package codec

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/unkn0wn-root/textcompat"
)

// Protobuf carries Values as a google.protobuf.Any holding
// StringValue (Text), BytesValue (Bytes) or Value (Other). Other payloads
// must be representable by structpb.NewValue. Any other message type
// decodes as Other holding the message itself.
type Protobuf struct{}

var _ Codec[textcompat.Value] = Protobuf{}

func (Protobuf) Encode(v textcompat.Value) ([]byte, error) {
	var m proto.Message
	switch v.Kind() {
	case textcompat.KindText:
		s, _ := v.AsText()
		m = wrapperspb.String(s)
	case textcompat.KindBytes:
		b, _ := v.AsBytes()
		m = wrapperspb.Bytes(b)
	default:
		sv, err := structpb.NewValue(v.Any())
		if err != nil {
			return nil, err
		}
		m = sv
	}

	a, err := anypb.New(m)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(a)
}

func (Protobuf) Decode(b []byte) (textcompat.Value, error) {
	var a anypb.Any
	if err := proto.Unmarshal(b, &a); err != nil {
		return textcompat.Value{}, err
	}
	m, err := a.UnmarshalNew()
	if err != nil {
		return textcompat.Value{}, err
	}

	switch m := m.(type) {
	case *wrapperspb.StringValue:
		return textcompat.Text(m.GetValue()), nil
	case *wrapperspb.BytesValue:
		return textcompat.Bytes(m.GetValue()), nil
	case *structpb.Value:
		return textcompat.Other(m.AsInterface()), nil
	default:
		return textcompat.Other(m), nil
	}
}
