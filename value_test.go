package textcompat

import (
	"bytes"
	"testing"
)

func TestOfResolvesVariant(t *testing.T) {
	text := Text("x")
	cases := []struct {
		in   any
		want Kind
	}{
		{"s", KindText},
		{[]byte("b"), KindBytes},
		{bytes.NewBufferString("b"), KindBytes},
		{(*bytes.Buffer)(nil), KindBytes},
		{text, KindText},
		{&text, KindText},
		{(*Value)(nil), KindOther},
		{1, KindOther},
		{nil, KindOther},
		{[]rune("r"), KindOther},
	}
	for _, tc := range cases {
		if got := Of(tc.in).Kind(); got != tc.want {
			t.Fatalf("Of(%#v).Kind() = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestBytesAndBufferCopy(t *testing.T) {
	raw := []byte{0xC3, 0xBF}
	v := Bytes(raw)
	raw[0] = 'X'
	if b, _ := v.AsBytes(); b[0] != 0xC3 {
		t.Fatalf("Bytes aliases its input")
	}

	buf := bytes.NewBuffer([]byte{0xC3, 0xBF})
	v = Buffer(buf)
	buf.Reset()
	buf.WriteString("zz")
	if s := MustToUnicode(v); s != "ÿ" {
		t.Fatalf("Buffer aliases its input: %q", s)
	}
}

func TestBufferReadsUnreadPortion(t *testing.T) {
	buf := bytes.NewBufferString("skip:ÿ")
	_ = buf.Next(len("skip:"))
	if s := MustToUnicode(Buffer(buf)); s != "ÿ" {
		t.Fatalf("got %q", s)
	}
}

func TestAccessors(t *testing.T) {
	if _, ok := Text("a").AsBytes(); ok {
		t.Fatalf("Text reported bytes")
	}
	if _, ok := Bytes(nil).AsText(); ok {
		t.Fatalf("Bytes reported text")
	}
	if Other(7).Any() != 7 {
		t.Fatalf("Other payload lost")
	}
	for k, want := range map[Kind]string{KindBytes: "bytes", KindText: "text", KindOther: "other"} {
		if k.String() != want {
			t.Fatalf("%d.String() = %q", k, k.String())
		}
	}
}
