package textcompat

import "fmt"

// ResponseOptions are the hints a ResponseReader may pass to a connection.
type ResponseOptions struct {
	Buffering    bool
	BufferingSet bool // true when the caller passed a buffering hint at all
}

type ResponseOption func(*ResponseOptions)

// Buffering asks the connection to read the response through a buffer.
func Buffering(on bool) ResponseOption {
	return func(o *ResponseOptions) {
		o.Buffering = on
		o.BufferingSet = true
	}
}

// ResponseOptionsOf folds opts into a ResponseOptions. Conn implementations
// call it to see which hints were passed.
func ResponseOptionsOf(opts ...ResponseOption) ResponseOptions {
	var o ResponseOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Conn is anything that can produce a response of type R.
type Conn[R any] interface {
	GetResponse(opts ...ResponseOption) (R, error)
}

// Capability overrides a build-time capability flag at configuration time.
type Capability uint8

const (
	CapabilityDefault Capability = iota // use the build-time flag
	CapabilityOn
	CapabilityOff
)

func (c Capability) resolve(def bool) bool {
	switch c {
	case CapabilityOn:
		return true
	case CapabilityOff:
		return false
	default:
		return def
	}
}

type ReaderOptions struct {
	Buffering Capability // CapabilityDefault => BufferingSupported
	Logger    Logger     // nil => NopLogger
}

// ResponseReader reads responses from connections, passing the buffering
// hint only when the target supports it. The decision is fixed at
// construction; the connection is never probed.
type ResponseReader[R any] struct {
	buffering bool
	log       Logger
}

func NewResponseReader[R any](opts ReaderOptions) *ResponseReader[R] {
	return &ResponseReader[R]{
		buffering: opts.Buffering.resolve(BufferingSupported),
		log:       coalesce[Logger](opts.Logger, NopLogger{}),
	}
}

// Buffering reports whether Read passes the buffering hint.
func (r *ResponseReader[R]) Buffering() bool { return r.buffering }

// Read fetches one response from conn. A nil conn yields ErrNilConn; a
// typed nil pointer is not nil here, so Conn implementations check their
// own receiver.
func (r *ResponseReader[R]) Read(conn Conn[R]) (R, error) {
	var zero R
	if conn == nil {
		return zero, ErrNilConn
	}

	var (
		resp R
		err  error
	)
	if r.buffering {
		resp, err = conn.GetResponse(Buffering(true))
	} else {
		resp, err = conn.GetResponse()
	}
	if err != nil {
		r.log.Debug("textcompat: get response failed", Fields{"buffering": r.buffering, "err": err})
		return zero, fmt.Errorf("textcompat: get response: %w", err)
	}
	return resp, nil
}

// ReadResponse reads from conn with the build-time buffering capability.
func ReadResponse[R any](conn Conn[R]) (R, error) {
	return NewResponseReader[R](ReaderOptions{}).Read(conn)
}
