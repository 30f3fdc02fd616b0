// Error wrapping with stack traces on top of github.com/pkg/errors.
// Sentinel comparisons with errors.Is and errors.As pass through the
// wrapper, so failure taxonomies survive the extra context.
package oops

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type StackTracer interface {
	Error() string
	StackTrace() errors.StackTrace
}

type Error struct {
	Inner StackTracer
}

func (err *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%+v", err.Inner.Error())
	for _, frame := range err.StackTrace() {
		frameText, _ := frame.MarshalText()
		fmt.Fprintf(&b, "\n%s", frameText)
	}
	return b.String()
}

func (err *Error) Is(target error) bool {
	return errors.Is(err.Inner, target)
}

func (err *Error) As(target any) bool {
	return errors.As(err.Inner, target)
}

func (err *Error) Unwrap() error {
	return err.Inner
}

func (err *Error) StackTrace() errors.StackTrace {
	return err.Inner.StackTrace()
}

func New(message string) error {
	return &Error{
		Inner: errors.New(message).(StackTracer),
	}
}

func Newf(format string, a ...any) error {
	return &Error{
		Inner: errors.WithStack(fmt.Errorf(format, a...)).(StackTracer),
	}
}

func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if wrapped, ok := err.(*Error); ok {
		return wrapped
	}
	return &Error{
		Inner: errors.WithStack(err).(StackTracer),
	}
}

// Message returns the error text without the stack trace appended.
func Message(err error) string {
	if sterr, ok := err.(*Error); ok {
		return sterr.Inner.Error()
	}
	return err.Error()
}

func Wrapf(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	return &Error{
		Inner: errors.WithStack(errors.Wrapf(err, format, a...)).(StackTracer),
	}
}
