package parser

import (
	"github.com/dhamidi/kombinator/parse"
	"github.com/dhamidi/kombinator/text"
)

// skip runs p and then q, keeping the value of q. Unlike parse.AndThenTake
// it keeps the position of a failure in q, which makes for better
// diagnostics once a construct has been recognized by its first byte.
func skip[T, U any](p parse.Parser[T], q parse.Parser[U]) parse.Parser[U] {
	return parse.FlatMap(p, func(T) parse.Parser[U] {
		return q
	})
}

// keep runs p and then q, keeping the value of p and the failure position
// of q.
func keep[T, U any](p parse.Parser[T], q parse.Parser[U]) parse.Parser[T] {
	return parse.FlatMap(p, func(v T) parse.Parser[T] {
		return parse.Map(q, func(U) T {
			return v
		})
	})
}

func succeed[T any](v T) parse.Parser[T] {
	return func(input text.View) parse.Result[T] {
		return parse.Ok(v, input)
	}
}

// peek yields the next byte without consuming it.
var peek parse.Parser[byte] = func(input text.View) parse.Result[byte] {
	if input.IsEmpty() {
		return parse.Fail[byte]("unexpected end of input", input)
	}
	return parse.Ok(input.At(0), input)
}

// expect is parse.TakeByte with a message naming the expected byte.
func expect(c byte) parse.Parser[text.View] {
	take := parse.TakeByte(c)
	return func(input text.View) parse.Result[text.View] {
		if r := take(input); r.Ok() {
			return r
		}
		if input.IsEmpty() {
			return parse.Failf[text.View](input, "expected %q, got end of input", c)
		}
		return parse.Failf[text.View](input, "expected %q, got %q", c, input.At(0))
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHex(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
