package textcompat

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestReraiseAfterInterveningError(t *testing.T) {
	ouch := stderrors.New("Ouch!")

	err := func() error {
		c := Capture(ouch)
		// An unrelated failure that is raised and handled before re-raising.
		cleanup := func() error { return stderrors.New("Obfuscate!") }
		if err := cleanup(); err != nil {
			c.Suppress(err)
		}
		return c.Reraise()
	}()

	if err == nil {
		t.Fatalf("expected an error")
	}
	if err.Error() != "Ouch!" {
		t.Fatalf("got %q want %q", err.Error(), "Ouch!")
	}
	if !stderrors.Is(err, ouch) {
		t.Fatalf("re-raised error lost identity of the original")
	}

	var re *ReraisedError
	if !stderrors.As(err, &re) {
		t.Fatalf("expected *ReraisedError, got %T", err)
	}
	if re.Kind != "*errors.errorString" {
		t.Fatalf("Kind = %q", re.Kind)
	}
	if len(re.StackTrace()) == 0 {
		t.Fatalf("expected a stack trace")
	}
	if sup := re.Suppressed(); len(sup) != 1 || sup[0].Error() != "Obfuscate!" {
		t.Fatalf("Suppressed = %v", sup)
	}
}

func TestReraiseAcrossPanics(t *testing.T) {
	var err error
	func() {
		defer func() {
			err = CapturePanic(recover()).Reraise()
		}()
		var c *Captured
		func() {
			defer func() { c = CapturePanic(recover()) }()
			panic(stderrors.New("Ouch!"))
		}()
		func() {
			defer func() { _ = recover() }()
			panic("Obfuscate!")
		}()
		panic(c.Reraise())
	}()

	if err == nil || err.Error() != "Ouch!" {
		t.Fatalf("got %v want Ouch!", err)
	}
	var re *ReraisedError
	if !stderrors.As(err, &re) || re.Kind != "*errors.errorString" {
		t.Fatalf("Kind: %+v", re)
	}
}

func TestRecaptureKeepsKindAndSuppressed(t *testing.T) {
	ouch := stderrors.New("Ouch!")
	first := Capture(ouch)
	first.Suppress(stderrors.New("Obfuscate!"))

	c := Capture(first.Reraise())
	if c.Kind != "*errors.errorString" {
		t.Fatalf("Kind got %q", c.Kind)
	}
	if len(c.Suppressed()) != 1 {
		t.Fatalf("suppressed: %v", c.Suppressed())
	}

	err := c.Reraise()
	if !stderrors.Is(err, ouch) || err.Error() != "Ouch!" {
		t.Fatalf("got %v", err)
	}
	var re *ReraisedError
	if !stderrors.As(err, &re) || re.Kind != "*errors.errorString" {
		t.Fatalf("Kind: %+v", re)
	}
	if len(re.Suppressed()) != 1 {
		t.Fatalf("suppressed after re-raise: %v", re.Suppressed())
	}
	if got, want := fmt.Sprintf("%v", re.StackTrace()[0]), fmt.Sprintf("%v", first.StackTrace()[0]); got != want {
		t.Fatalf("trace moved: %s want %s", got, want)
	}
}

func TestReraiseExplicitTriple(t *testing.T) {
	orig := &fs.PathError{Op: "open", Path: "/nope", Err: fs.ErrNotExist}
	c := Capture(orig)

	err := Reraise(c.Kind, c.Err, c.StackTrace())
	if err.Error() != orig.Error() {
		t.Fatalf("message changed: %q", err.Error())
	}
	var pe *fs.PathError
	if !stderrors.As(err, &pe) || pe != orig {
		t.Fatalf("errors.As did not reach the original *fs.PathError")
	}
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Fatalf("errors.Is lost the wrapped cause")
	}
	var re *ReraisedError
	if !stderrors.As(err, &re) || re.Kind != "*fs.PathError" {
		t.Fatalf("Kind: %+v", re)
	}
	if len(re.StackTrace()) != len(c.StackTrace()) {
		t.Fatalf("trace not carried over")
	}
}

func TestReraiseKeepsExistingTrace(t *testing.T) {
	orig := errors.New("with trace") // pkg/errors records a trace here
	c := Capture(orig)
	if c.Err != orig {
		t.Fatalf("Capture re-wrapped an error that already had a trace")
	}
	err := Reraise("", orig, nil)
	var re *ReraisedError
	if !stderrors.As(err, &re) {
		t.Fatalf("expected *ReraisedError")
	}
	if re.Kind != fmt.Sprintf("%T", orig) {
		t.Fatalf("Kind = %q", re.Kind)
	}
	var st interface{ StackTrace() errors.StackTrace }
	if !stderrors.As(orig, &st) || len(re.StackTrace()) != len(st.StackTrace()) {
		t.Fatalf("existing trace not reused")
	}
}

func TestReraiseNil(t *testing.T) {
	if Capture(nil) != nil {
		t.Fatalf("Capture(nil) must be nil")
	}
	if CapturePanic(nil) != nil {
		t.Fatalf("CapturePanic(nil) must be nil")
	}
	var c *Captured
	if err := c.Reraise(); err != nil {
		t.Fatalf("nil Captured re-raised %v", err)
	}
	if err := Reraise("x", nil, nil); err != nil {
		t.Fatalf("Reraise(nil) = %v", err)
	}
}

func TestCapturePanicNonError(t *testing.T) {
	c := CapturePanic(42)
	if c.Kind != "int" {
		t.Fatalf("Kind = %q", c.Kind)
	}
	if c.Reraise().Error() != "42" {
		t.Fatalf("message = %q", c.Reraise().Error())
	}
}

func TestReraisedErrorFormat(t *testing.T) {
	err := Capture(stderrors.New("Ouch!")).Reraise()
	if got := fmt.Sprintf("%v", err); got != "Ouch!" {
		t.Fatalf("%%v = %q", got)
	}
	if got := fmt.Sprintf("%q", err); got != `"Ouch!"` {
		t.Fatalf("%%q = %q", got)
	}
	if got := fmt.Sprintf("%d", err); got != "Ouch!" {
		t.Fatalf("%%d = %q", got)
	}
	verbose := fmt.Sprintf("%+v", err)
	if !strings.HasPrefix(verbose, "Ouch! (*errors.errorString)") {
		t.Fatalf("%%+v = %q", verbose)
	}
	if !strings.Contains(verbose, "reraise_test.go") {
		t.Fatalf("%%+v lacks the capture site: %q", verbose)
	}
}
