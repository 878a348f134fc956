/*
Package assert implements the single fatal path for contract violations.

A violation means the caller broke link bookkeeping (double link, double
unlink, a foreign chain, walking past the end). The shared ring state can not
be trusted after that, so violations are never returned as errors.
*/
package assert

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Violation describes a broken contract.
type Violation struct {
	// Err is the sentinel cause, matched with errors.Is.
	Err  error
	Msg  string
	File string
	Line int

	stack error
}

// Error implements error.
func (v *Violation) Error() string {
	var b strings.Builder
	b.WriteString(v.Msg)
	if v.File != "" {
		fmt.Fprintf(&b, " (%s:%d)", filepath.Base(v.File), v.Line)
	}
	return b.String()
}

// Unwrap returns the sentinel cause.
func (v *Violation) Unwrap() error {
	return v.Err
}

// Format supports %+v to print the stack captured at the violation site.
func (v *Violation) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') && v.stack != nil {
			fmt.Fprintf(s, "%s%+v", v.Error(), v.stack)
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, v.Error())
	case 'q':
		fmt.Fprintf(s, "%q", v.Error())
	}
}

// AbortFunc handles a violation. It must not return normally.
type AbortFunc func(*Violation)

// Panic is the default AbortFunc.
func Panic(v *Violation) {
	panic(v)
}

var abort atomic.Pointer[AbortFunc]

// SetAbortFunc replaces the abort path and returns a function restoring the previous one.
// A nil f restores the default.
func SetAbortFunc(f AbortFunc) (restore func()) {
	if f == nil {
		f = Panic
	}
	prev := abort.Swap(&f)
	return func() {
		abort.Store(prev)
	}
}

// That aborts with err and the message built from args when cond is false.
func That(cond bool, err error, args ...any) {
	if !cond {
		fail(err, args)
	}
}

func fail(err error, args []any) {
	v := &Violation{
		Err:   err,
		Msg:   message(err, args),
		stack: errors.WithStack(err),
	}

	// 0 is fail, 1 is That, 2 is the function that checked the contract.
	if _, file, line, ok := runtime.Caller(2); ok {
		v.File = file
		v.Line = line
	}

	f := Panic
	if p := abort.Load(); p != nil {
		f = *p
	}

	f(v)

	// An AbortFunc that returns would leave the ring corrupted.
	panic(v)
}

func message(err error, args []any) string {
	if len(args) == 0 {
		return err.Error()
	}
	return err.Error() + ": " + fmt.Sprint(args...)
}
