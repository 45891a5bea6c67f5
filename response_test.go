package textcompat

import (
	"errors"
	"testing"
)

type mockConn struct {
	calls int
	got   ResponseOptions
	nopts int
	err   error
}

func (m *mockConn) GetResponse(opts ...ResponseOption) (string, error) {
	m.calls++
	m.nopts = len(opts)
	m.got = ResponseOptionsOf(opts...)
	if m.err != nil {
		return "", m.err
	}
	return "200 OK", nil
}

func TestReadResponseFollowsBuildFlag(t *testing.T) {
	m := &mockConn{}
	resp, err := ReadResponse[string](m)
	if err != nil {
		t.Fatalf("ReadResponse: %v", err)
	}
	if resp != "200 OK" || m.calls != 1 {
		t.Fatalf("resp=%q calls=%d", resp, m.calls)
	}
	if m.got.BufferingSet != BufferingSupported {
		t.Fatalf("buffering hint present=%v, build flag=%v", m.got.BufferingSet, BufferingSupported)
	}
	if !BufferingSupported && m.nopts != 0 {
		t.Fatalf("expected no options, got %d", m.nopts)
	}
}

func TestResponseReaderCapabilityOverride(t *testing.T) {
	on := NewResponseReader[string](ReaderOptions{Buffering: CapabilityOn})
	m := &mockConn{}
	if _, err := on.Read(m); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !on.Buffering() || !m.got.BufferingSet || !m.got.Buffering {
		t.Fatalf("expected buffering hint, got %+v", m.got)
	}

	off := NewResponseReader[string](ReaderOptions{Buffering: CapabilityOff})
	m = &mockConn{}
	if _, err := off.Read(m); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if off.Buffering() || m.got.BufferingSet || m.nopts != 0 {
		t.Fatalf("expected no buffering hint, got %+v (n=%d)", m.got, m.nopts)
	}
}

func TestResponseReaderWrapsConnError(t *testing.T) {
	boom := errors.New("connection reset")
	l := &recLogger{}
	r := NewResponseReader[string](ReaderOptions{Logger: l})
	_, err := r.Read(&mockConn{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped conn error, got %v", err)
	}
	if len(l.debug) != 1 {
		t.Fatalf("expected one debug line, got %v", l.debug)
	}
}

func TestResponseReaderNilConn(t *testing.T) {
	if _, err := ReadResponse[string](nil); !errors.Is(err, ErrNilConn) {
		t.Fatalf("expected ErrNilConn, got %v", err)
	}
}

func TestResponseOptionsOf(t *testing.T) {
	if o := ResponseOptionsOf(); o.BufferingSet {
		t.Fatalf("no options must leave hint unset: %+v", o)
	}
	o := ResponseOptionsOf(nil, Buffering(false))
	if !o.BufferingSet || o.Buffering {
		t.Fatalf("explicit false hint: %+v", o)
	}
}
