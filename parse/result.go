package parse

import (
	"fmt"

	"github.com/dhamidi/kombinator/text"
)

// Result is the outcome of running a parser: either a value and the
// unconsumed rest of the input, or a message and the view where parsing
// could not proceed.
type Result[T any] struct {
	value   T
	rest    text.View
	message string
	ok      bool
}

// Ok returns a successful result.
func Ok[T any](value T, rest text.View) Result[T] {
	return Result[T]{value: value, rest: rest, ok: true}
}

// Fail returns a failed result located at at.
func Fail[T any](message string, at text.View) Result[T] {
	return Result[T]{message: message, rest: at}
}

// Failf is Fail with a formatted message.
func Failf[T any](at text.View, format string, args ...any) Result[T] {
	return Fail[T](fmt.Sprintf(format, args...), at)
}

func (r Result[T]) Ok() bool {
	return r.ok
}

// Value returns the parsed value. It is the zero value for failures.
func (r Result[T]) Value() T {
	return r.value
}

// Rest returns the remaining input on success and the failure point otherwise.
func (r Result[T]) Rest() text.View {
	return r.rest
}

// Message returns the failure message, or "" on success.
func (r Result[T]) Message() string {
	return r.message
}

// Err returns nil on success and a *Error describing the failure otherwise.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return &Error{Message: r.message, At: r.rest}
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v, rest=%s)", r.value, r.rest.Preview(16))
	}
	return fmt.Sprintf("Error(%s, at=%s)", r.message, r.rest.Preview(16))
}

// failed converts a failure into a failure of another value type.
func failed[U, T any](r Result[T]) Result[U] {
	return Result[U]{message: r.message, rest: r.rest}
}

// reanchor moves a failure to the view the enclosing combinator started at.
func reanchor[U, T any](r Result[T], input text.View) Result[U] {
	return Result[U]{message: r.message, rest: input}
}

// Error is a parse failure with its location.
type Error struct {
	Message string
	At      text.View
}

func (e *Error) Position() text.Position {
	return e.At.Position()
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.At.Position(), e.Message)
}
