package textcompat

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Captured holds an error taken at its failure site so it can be re-raised
// after unrelated code has run (and possibly failed) in between.
type Captured struct {
	// Kind is the Go type of the original error, e.g. "*fs.PathError".
	Kind string
	// Err is the original error with a stack trace attached. If the error
	// already carried a pkg/errors trace, that trace is kept.
	Err error

	suppressed error
}

// Capture records err and the current stack. It returns nil for a nil error.
// Capturing an error that was already re-raised keeps its original Kind,
// trace and suppressed errors.
func Capture(err error) *Captured {
	if err == nil {
		return nil
	}
	c := &Captured{Kind: fmt.Sprintf("%T", err), Err: err}
	var re *ReraisedError
	if errors.As(err, &re) {
		c.Kind = re.Kind
		for _, s := range re.suppressed {
			c.Suppress(s)
		}
	}
	var st stackTracer
	if !errors.As(err, &st) {
		c.Err = errors.WithStack(err)
	}
	return c
}

// CapturePanic converts a recovered panic value into a Captured. Non-error
// values are wrapped so their text is preserved. It returns nil for nil.
func CapturePanic(recovered any) *Captured {
	switch r := recovered.(type) {
	case nil:
		return nil
	case error:
		return Capture(r)
	default:
		c := Capture(errors.Errorf("%v", r))
		c.Kind = fmt.Sprintf("%T", r)
		return c
	}
}

// Suppress records an intervening error. It is kept for diagnostics and
// never replaces the captured one.
func (c *Captured) Suppress(err error) {
	c.suppressed = multierr.Append(c.suppressed, err)
}

// Suppressed returns the intervening errors in the order they were recorded.
func (c *Captured) Suppressed() []error { return multierr.Errors(c.suppressed) }

// StackTrace returns the trace recorded at the capture site.
func (c *Captured) StackTrace() errors.StackTrace {
	var st stackTracer
	if errors.As(c.Err, &st) {
		return st.StackTrace()
	}
	return nil
}

// Reraise returns the captured error for the caller to propagate. A nil
// *Captured re-raises nothing.
func (c *Captured) Reraise() error {
	if c == nil {
		return nil
	}
	return &ReraisedError{
		Kind:       c.Kind,
		err:        c.Err,
		trace:      c.StackTrace(),
		suppressed: c.Suppressed(),
	}
}

// Reraise propagates value with the given kind and trace. Nothing that ran
// since value was captured can change what is returned. A nil value
// re-raises nothing; a nil trace is recorded here.
func Reraise(kind string, value error, trace errors.StackTrace) error {
	if value == nil {
		return nil
	}
	if kind == "" {
		kind = fmt.Sprintf("%T", value)
	}
	if trace == nil {
		var st stackTracer
		if errors.As(value, &st) || errors.As(errors.WithStack(value), &st) {
			trace = st.StackTrace()
		}
	}
	return &ReraisedError{Kind: kind, err: value, trace: trace}
}

// ReraisedError is the error returned by Reraise. Its message and identity
// are those of the original error: errors.Is and errors.As see through it.
type ReraisedError struct {
	Kind string

	err        error
	trace      errors.StackTrace
	suppressed []error
}

func (e *ReraisedError) Error() string                 { return e.err.Error() }
func (e *ReraisedError) Unwrap() error                 { return e.err }
func (e *ReraisedError) StackTrace() errors.StackTrace { return e.trace }

// Suppressed returns the errors recorded between capture and re-raise.
func (e *ReraisedError) Suppressed() []error { return e.suppressed }

// Format supports %+v, which appends the original stack trace.
func (e *ReraisedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s (%s)", e.err.Error(), e.Kind)
			e.trace.Format(s, verb)
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, e.err.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.err.Error())
	default:
		fmt.Fprint(s, e.err.Error())
	}
}
