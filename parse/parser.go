package parse

import (
	"sync"
	"sync/atomic"

	"github.com/dhamidi/kombinator/text"
)

// A Parser turns a view into a Result. Parsers hold no mutable state and can
// be invoked repeatedly and concurrently.
type Parser[T any] func(text.View) Result[T]

// Parse runs p over all of s.
func (p Parser[T]) Parse(s string) Result[T] {
	return p(text.Of(s))
}

// Option is the value of an Optional parser.
type Option[T any] struct {
	Value   T
	Present bool
}

type Pair[A, B any] struct {
	First  A
	Second B
}

// Lazy defers building a parser until its first invocation.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	get := sync.OnceValue(build)
	return func(input text.View) Result[T] {
		return get()(input)
	}
}

// Ref is a reference cell for self-referential grammars: hand out Parser()
// while building the grammar, then Set the real parser once it exists.
// Set may race with invocations; each invocation sees either the old or the
// new parser.
type Ref[T any] struct {
	p atomic.Pointer[Parser[T]]
}

func (r *Ref[T]) Set(p Parser[T]) {
	r.p.Store(&p)
}

func (r *Ref[T]) Parser() Parser[T] {
	return func(input text.View) Result[T] {
		p := r.p.Load()
		if p == nil || *p == nil {
			return Fail[T]("unresolved parser reference", input)
		}
		return (*p)(input)
	}
}
