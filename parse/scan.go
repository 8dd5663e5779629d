package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/kombinator/text"
)

// byteSet returns a membership predicate for the bytes of set.
func byteSet(set string) func(byte) bool {
	var table [256]bool
	for i := 0; i < len(set); i++ {
		table[set[i]] = true
	}
	return func(c byte) bool {
		return table[c]
	}
}

func takeWhilePredicate(min, max int, predicate func(byte) bool) Parser[text.View] {
	return func(input text.View) Result[text.View] {
		if r, ok := checkBounds[text.View](min, max, input); !ok {
			return r
		}
		n := 0
		for (max < 0 || n < max) && n < input.Len() && predicate(input.At(n)) {
			n++
		}
		if n < min {
			return Failf[text.View](input, "%d were recognized, %d required!", n, min)
		}
		return Ok(input.Sub(0, n), input.From(n))
	}
}

// TakeWhile consumes bytes while predicate holds, at most max of them
// (negative max is unbounded), and fails if fewer than min matched.
func TakeWhile(min, max int, predicate func(byte) bool) Parser[text.View] {
	return traced(fmt.Sprintf("takeWhile(min=%d, max=%d, predicate=...)", min, max), takeWhilePredicate(min, max, predicate))
}

func TakeWhileOneOf(min, max int, set string) Parser[text.View] {
	return traced(fmt.Sprintf("takeWhile(min=%d, max=%d, oneOf=%s)", min, max, strconv.Quote(set)), takeWhilePredicate(min, max, byteSet(set)))
}

func TakeWhileByte(min, max int, c byte) Parser[text.View] {
	return traced(fmt.Sprintf("takeWhile(min=%d, max=%d, byte=%q)", min, max, c), takeWhilePredicate(min, max, func(b byte) bool {
		return b == c
	}))
}

// TakeUntil consumes bytes until predicate holds.
func TakeUntil(min, max int, predicate func(byte) bool) Parser[text.View] {
	return traced(fmt.Sprintf("takeUntil(min=%d, max=%d, predicate=...)", min, max), takeWhilePredicate(min, max, func(c byte) bool {
		return !predicate(c)
	}))
}

func TakeUntilOneOf(min, max int, set string) Parser[text.View] {
	in := byteSet(set)
	return traced(fmt.Sprintf("takeUntil(min=%d, max=%d, oneOf=%s)", min, max, strconv.Quote(set)), takeWhilePredicate(min, max, func(c byte) bool {
		return !in(c)
	}))
}

func takeExactlyWhilePredicate(min, max int, predicate func(byte) bool) Parser[text.View] {
	return func(input text.View) Result[text.View] {
		if r, ok := checkBounds[text.View](min, max, input); !ok {
			return r
		}
		if max == 0 {
			return Ok(input.Sub(0, 0), input)
		}
		n := 0
		for n < input.Len() && predicate(input.At(n)) {
			n++
		}
		switch {
		case n < min:
			return Failf[text.View](input, "%d were recognized, >= %d required!", n, min)
		case max >= 0 && n > max:
			return Failf[text.View](input, "%d were recognized, <= %d required!", n, max)
		}
		return Ok(input.Sub(0, n), input.From(n))
	}
}

// TakeExactlyWhile scans the whole run matching predicate and fails unless
// its length lies within [min, max].
func TakeExactlyWhile(min, max int, predicate func(byte) bool) Parser[text.View] {
	return traced(fmt.Sprintf("takeExactlyWhile(min=%d, max=%d, predicate=...)", min, max), takeExactlyWhilePredicate(min, max, predicate))
}

func TakeExactlyWhileOneOf(min, max int, set string) Parser[text.View] {
	return traced(fmt.Sprintf("takeExactlyWhile(min=%d, max=%d, oneOf=%s)", min, max, strconv.Quote(set)), takeExactlyWhilePredicate(min, max, byteSet(set)))
}

func takeOne(predicate func(byte) bool) Parser[text.View] {
	return func(input text.View) Result[text.View] {
		if input.IsEmpty() {
			return Fail[text.View]("no input left!", input)
		}
		if !predicate(input.At(0)) {
			return Fail[text.View]("not recognized!", input)
		}
		return Ok(input.Sub(0, 1), input.From(1))
	}
}

// Take consumes a single byte satisfying predicate.
func Take(predicate func(byte) bool) Parser[text.View] {
	return traced("take(predicate=...)", takeOne(predicate))
}

func TakeByte(c byte) Parser[text.View] {
	return traced(fmt.Sprintf("take(%q)", c), takeOne(func(b byte) bool {
		return b == c
	}))
}

func TakeOneOf(set string) Parser[text.View] {
	return traced(fmt.Sprintf("take(oneOf=%s)", strconv.Quote(set)), takeOne(byteSet(set)))
}

// TakeString consumes the literal s.
func TakeString(s string) Parser[text.View] {
	return traced(fmt.Sprintf("takeString(%s)", strconv.Quote(s)), func(input text.View) Result[text.View] {
		if !input.HasPrefix(s) {
			return Failf[text.View](input, "%s was not recognized!", strconv.Quote(s))
		}
		return Ok(input.Sub(0, len(s)), input.From(len(s)))
	})
}

// TakeAnyString consumes the first of literals, in argument order, that
// prefixes the input. It does not look for the longest match.
func TakeAnyString(literals ...string) Parser[text.View] {
	quoted := make([]string, len(literals))
	for i, s := range literals {
		quoted[i] = strconv.Quote(s)
	}
	return traced(fmt.Sprintf("takeString(oneOf=[%s])", strings.Join(quoted, ", ")), func(input text.View) Result[text.View] {
		for _, s := range literals {
			if input.HasPrefix(s) {
				return Ok(input.Sub(0, len(s)), input.From(len(s)))
			}
		}
		return Fail[text.View]("no string matched!", input)
	})
}
