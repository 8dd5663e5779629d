package parse

import (
	"fmt"

	"github.com/dhamidi/kombinator/text"
)

// Map replaces the value of p with f(value).
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(input text.View) Result[U] {
		r := p(input)
		if !r.ok {
			return failed[U](r)
		}
		return Ok(f(r.value), r.rest)
	}
}

// FlatMap runs the parser chosen by f(value) on the rest left by p.
// Failures of either stage are returned unchanged.
func FlatMap[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return traced("flatMap()", func(input text.View) Result[U] {
		r := p(input)
		if !r.ok {
			return failed[U](r)
		}
		return f(r.value)(r.rest)
	})
}

// Then runs p followed by next and keeps the value of p.
// A failure of next is reported at the start of p.
func Then[T, U any](p Parser[T], next Parser[U]) Parser[T] {
	return traced("then()", func(input text.View) Result[T] {
		r := p(input)
		if !r.ok {
			return r
		}
		n := next(r.rest)
		if !n.ok {
			return reanchor[T](n, input)
		}
		return Ok(r.value, n.rest)
	})
}

// AndThenTake runs p followed by next and keeps the value of next.
// A failure of next is reported at the start of p.
func AndThenTake[T, U any](p Parser[T], next Parser[U]) Parser[U] {
	return traced("andThenTake()", func(input text.View) Result[U] {
		r := p(input)
		if !r.ok {
			return failed[U](r)
		}
		n := next(r.rest)
		if !n.ok {
			return reanchor[U](n, input)
		}
		return n
	})
}

// Concat runs p and then q and yields the contiguous span both consumed.
func Concat[A, B any](p Parser[A], q Parser[B]) Parser[text.View] {
	return traced("concat()", func(input text.View) Result[text.View] {
		first := p(input)
		if !first.ok {
			return failed[text.View](first)
		}
		second := q(first.rest)
		if !second.ok {
			return reanchor[text.View](second, input)
		}
		return Ok(input.Sub(0, input.Len()-second.rest.Len()), second.rest)
	})
}

// SurroundedBy runs prefix, p and suffix in order and keeps the value of p.
func SurroundedBy[T, A, B any](p Parser[T], prefix Parser[A], suffix Parser[B]) Parser[T] {
	return traced("surroundedBy()", func(input text.View) Result[T] {
		pre := prefix(input)
		if !pre.ok {
			return failed[T](pre)
		}
		r := p(pre.rest)
		if !r.ok {
			return reanchor[T](r, input)
		}
		post := suffix(r.rest)
		if !post.ok {
			return reanchor[T](post, input)
		}
		return Ok(r.value, post.rest)
	})
}

// Between is SurroundedBy with the same parser on both sides.
func Between[T, D any](p Parser[T], delimiter Parser[D]) Parser[T] {
	return SurroundedBy(p, delimiter, delimiter)
}

// Separated parses a, sep and b and pairs the values of a and b.
func Separated[A, S, B any](a Parser[A], sep Parser[S], b Parser[B]) Parser[Pair[A, B]] {
	return FlatMap(Then(a, sep), func(first A) Parser[Pair[A, B]] {
		return Map(b, func(second B) Pair[A, B] {
			return Pair[A, B]{First: first, Second: second}
		})
	})
}

// Or tries p and, only if it fails, q on the same input.
func Or[T any](p, q Parser[T]) Parser[T] {
	return TakeFirst(p, q)
}

// TakeFirst returns the result of the first parser that succeeds on input.
// Parsers after the first success are never invoked.
func TakeFirst[T any](parsers ...Parser[T]) Parser[T] {
	return traced(fmt.Sprintf("takeFirst(#parsers=%d)", len(parsers)), func(input text.View) Result[T] {
		for _, p := range parsers {
			if r := p(input); r.ok {
				return r
			}
		}
		return Fail[T]("no alternative matched", input)
	})
}

// Optional never fails: when p fails it yields an absent Option and leaves
// the input untouched.
func Optional[T any](p Parser[T]) Parser[Option[T]] {
	return traced("optional()", func(input text.View) Result[Option[T]] {
		r := p(input)
		if !r.ok {
			return Ok(Option[T]{}, input)
		}
		return Ok(Option[T]{Value: r.value, Present: true}, r.rest)
	})
}

func checkBounds[T any](min, max int, input text.View) (Result[T], bool) {
	if max >= 0 && max < min {
		return Failf[T](input, "min (%d) can't be larger than max (%d)!", min, max), false
	}
	return Result[T]{}, true
}

// Repeat applies p greedily until it fails or max values were collected.
// A negative max means unbounded.
func Repeat[T any](p Parser[T], min, max int) Parser[[]T] {
	return traced(fmt.Sprintf("repeat(min=%d, max=%d)", min, max), func(input text.View) Result[[]T] {
		if r, ok := checkBounds[[]T](min, max, input); !ok {
			return r
		}
		if max == 0 {
			return Ok([]T{}, input)
		}

		rest := input
		output := []T{}
		for {
			r := p(rest)
			if !r.ok {
				break
			}
			output = append(output, r.value)
			rest = r.rest
			if max >= 0 && len(output) == max {
				break
			}
		}

		if len(output) < min {
			return Failf[[]T](input, "only matched %d times, %d required!", len(output), min)
		}
		return Ok(output, rest)
	})
}

// SeparatedList is Repeat with sep between consecutive items. A separator
// that is not followed by an item ends the list and is not consumed.
func SeparatedList[T, S any](p Parser[T], sep Parser[S], min, max int) Parser[[]T] {
	return traced(fmt.Sprintf("separatedList(min=%d, max=%d)", min, max), func(input text.View) Result[[]T] {
		if r, ok := checkBounds[[]T](min, max, input); !ok {
			return r
		}
		if max == 0 {
			return Ok([]T{}, input)
		}

		first := p(input)
		if !first.ok {
			if min > 0 {
				return failed[[]T](first)
			}
			return Ok([]T{}, input)
		}

		output := []T{first.value}
		rest := first.rest
		for max < 0 || len(output) < max {
			s := sep(rest)
			if !s.ok {
				break
			}
			r := p(s.rest)
			if !r.ok {
				break
			}
			output = append(output, r.value)
			rest = r.rest
		}

		if len(output) < min {
			return Failf[[]T](input, "only matched %d times, %d required!", len(output), min)
		}
		return Ok(output, rest)
	})
}

// EntireSliceOf yields the span consumed by p instead of its value.
func EntireSliceOf[T any](p Parser[T]) Parser[text.View] {
	return traced("entireSliceOf()", func(input text.View) Result[text.View] {
		r := p(input)
		if !r.ok {
			return failed[text.View](r)
		}
		return Ok(input.Sub(0, input.Len()-r.rest.Len()), r.rest)
	})
}

// ParseEntirely fails unless p consumes all of its input. The failure points
// at the first unconsumed byte.
func ParseEntirely[T any](p Parser[T]) Parser[T] {
	return func(input text.View) Result[T] {
		r := p(input)
		if !r.ok {
			return r
		}
		if !r.rest.IsEmpty() {
			return Failf[T](r.rest, "parser did not consume entire input: %s", r.rest.Preview(32))
		}
		return r
	}
}
