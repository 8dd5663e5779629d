// Package parse provides parser combinators over zero-copy text views.
//
// # Overview
//
// A Parser is a plain function from a text.View to a Result. Grammars are
// built by composing small parsers with the functions in this package:
//
//	digit := parse.Take(func(c byte) bool { return '0' <= c && c <= '9' })
//	list := parse.SeparatedList(digit, parse.TakeByte(','), 1, -1)
//	r := list.Parse("1,2,3;")
//	// r.Ok() == true, values "1", "2", "3", r.Rest() == ";"
//
// Nothing is copied while parsing: every value produced by the scanners is a
// view into the original input until the caller calls String on it.
//
// # Failures
//
// Failure is an ordinary Result, never a panic. Each combinator decides
// whether a failure of a sub-parser is passed through unchanged or moved back
// to the position where the combinator started:
//
//	Map, FlatMap, EntireSliceOf    pass through
//	Then, AndThenTake, Concat      second failure reported at the start
//	SurroundedBy                   inner and suffix failures reported at the start
//	TakeFirst, Or                  "no alternative matched" at the start
//	Optional                       never fails
//
// Backtracking only happens in TakeFirst/Or, Optional and the quantifiers,
// which retry from the position they were handed.
//
// # Quantifiers
//
// Repeat, SeparatedList, TakeWhile, TakeUntil and TakeExactlyWhile take a
// min and a max count. A negative max is unbounded. A max smaller than min
// fails before any input is looked at, and a max of zero succeeds with an
// empty result without running the inner parser.
//
// # Recursion
//
// Grammars that refer to themselves use a Ref or Lazy:
//
//	var value parse.Ref[Node]
//	array := parse.SurroundedBy(parse.SeparatedList(value.Parser(), comma, 0, -1), open, close)
//	value.Set(parse.Or(array, atom))
//
// # Tracing
//
// Setting KOMBINATOR_TRACE=true makes every combinator constructed in the
// process log its invocations through commonlog at Debug level. SetTracer
// overrides that choice for parsers constructed afterwards. Tracing never
// changes results.
package parse
