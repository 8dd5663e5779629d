// Package parser implements a JSON grammar on top of the parse combinators.
package parser

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/dhamidi/kombinator/json/ast"
	"github.com/dhamidi/kombinator/parse"
	"github.com/dhamidi/kombinator/text"
)

// Grammar holds the composed JSON parsers.
type Grammar struct {
	// Value parses a single value with no surrounding whitespace.
	Value parse.Parser[ast.Value]
	// Document parses a whole document: one value, optionally surrounded by
	// whitespace, and nothing else.
	Document parse.Parser[ast.Value]
}

// MaxDepth bounds the nesting of arrays and objects. Deeper documents are
// rejected before parsing, since each level costs parser stack.
const MaxDepth = 10000

var defaultGrammar = sync.OnceValue(NewGrammar)

// Parse parses s as a JSON document. Failures are returned as *parse.Error.
func Parse(s string) (ast.Value, error) {
	r := defaultGrammar().Document.Parse(s)
	if !r.Ok() {
		return nil, r.Err()
	}
	return r.Value(), nil
}

// NewGrammar composes the JSON parsers. Tracing is decided by the tracer
// installed at the time of the call.
func NewGrammar() *Grammar {
	var value parse.Ref[ast.Value]

	ws := parse.TakeWhileOneOf(0, -1, " \t\r\n")
	comma := parse.Then(parse.AndThenTake(ws, parse.TakeByte(',')), ws)

	null := parse.Map(parse.TakeString("null"), func(text.View) ast.Value {
		return ast.Null{}
	})
	boolean := parse.Or(
		parse.Map(parse.TakeString("true"), func(text.View) ast.Value { return ast.Bool(true) }),
		parse.Map(parse.TakeString("false"), func(text.View) ast.Value { return ast.Bool(false) }),
	)
	str := stringLiteral()
	number := numberLiteral()

	array := skip(parse.Then(parse.TakeByte('['), ws), parse.FlatMap(peek, func(c byte) parse.Parser[ast.Value] {
		if c == ']' {
			return parse.AndThenTake(parse.TakeByte(']'), succeed[ast.Value](ast.Array{}))
		}
		items := parse.Map(parse.SeparatedList(value.Parser(), comma, 1, -1), func(vs []ast.Value) ast.Value {
			return ast.Array(vs)
		})
		return keep(items, skip(ws, expect(']')))
	}))

	member := parse.FlatMap(keep(str, skip(ws, skip(expect(':'), ws))), func(key string) parse.Parser[ast.Member] {
		return parse.Map(value.Parser(), func(v ast.Value) ast.Member {
			return ast.Member{Key: key, Value: v}
		})
	})
	object := skip(parse.Then(parse.TakeByte('{'), ws), parse.FlatMap(peek, func(c byte) parse.Parser[ast.Value] {
		if c == '}' {
			return parse.AndThenTake(parse.TakeByte('}'), succeed[ast.Value](ast.Object{}))
		}
		members := parse.Map(parse.SeparatedList(member, comma, 1, -1), func(ms []ast.Member) ast.Value {
			return ast.Object(ms)
		})
		return keep(members, skip(ws, expect('}')))
	}))

	value.Set(parse.FlatMap(peek, func(c byte) parse.Parser[ast.Value] {
		switch {
		case c == '{':
			return object
		case c == '[':
			return array
		case c == '"':
			return parse.Map(str, func(s string) ast.Value { return ast.String(s) })
		case c == 't' || c == 'f':
			return boolean
		case c == 'n':
			return null
		case c == '-' || isDigit(c):
			return number
		}
		return func(input text.View) parse.Result[ast.Value] {
			return parse.Failf[ast.Value](input, "unexpected character %q", c)
		}
	}))

	return &Grammar{
		Value:    limitDepth(MaxDepth, value.Parser()),
		Document: limitDepth(MaxDepth, parse.ParseEntirely(skip(ws, keep(value.Parser(), ws)))),
	}
}

// limitDepth fails at the first bracket nested deeper than max, skipping
// string contents, and runs p otherwise.
func limitDepth[T any](max int, p parse.Parser[T]) parse.Parser[T] {
	return func(input text.View) parse.Result[T] {
		depth := 0
		inString, escaped := false, false
		for i := 0; i < input.Len(); i++ {
			c := input.At(i)
			switch {
			case escaped:
				escaped = false
			case inString && c == '\\':
				escaped = true
			case c == '"':
				inString = !inString
			case inString:
			case c == '[' || c == '{':
				depth++
				if depth > max {
					return parse.Failf[T](input.From(i), "nesting too deep: more than %d levels", max)
				}
			case (c == ']' || c == '}') && depth > 0:
				depth--
			}
		}
		return p(input)
	}
}

func numberLiteral() parse.Parser[ast.Value] {
	digits := parse.TakeWhile(1, -1, isDigit)
	integer := parse.Concat(
		parse.Optional(parse.TakeByte('-')),
		parse.Or(
			parse.TakeByte('0'),
			parse.Concat(parse.Take(func(c byte) bool { return '1' <= c && c <= '9' }), parse.TakeWhile(0, -1, isDigit)),
		),
	)
	fraction := parse.Concat(parse.TakeByte('.'), digits)
	exponent := parse.Concat(parse.Concat(parse.TakeOneOf("eE"), parse.Optional(parse.TakeOneOf("+-"))), digits)
	literal := parse.EntireSliceOf(parse.Concat(integer, parse.Concat(parse.Optional(fraction), parse.Optional(exponent))))

	return func(input text.View) parse.Result[ast.Value] {
		r := literal(input)
		if !r.Ok() {
			return parse.Failf[ast.Value](r.Rest(), "invalid number")
		}
		s := r.Value().String()
		if !strings.ContainsAny(s, ".eE") {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return parse.Ok[ast.Value](ast.Integer(n), r.Rest())
			}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return parse.Failf[ast.Value](input, "number %s out of range", s)
		}
		return parse.Ok[ast.Value](ast.Float(f), r.Rest())
	}
}

// chunk is a piece of a string literal: either raw text or one UTF-16 code
// unit from a \u escape.
type chunk struct {
	text   string
	unit   uint16
	isUnit bool
}

var escapes = map[byte]string{
	'"':  `"`,
	'\\': `\`,
	'/':  "/",
	'b':  "\b",
	'f':  "\f",
	'n':  "\n",
	'r':  "\r",
	't':  "\t",
}

func stringLiteral() parse.Parser[string] {
	plain := parse.Map(parse.TakeUntil(1, -1, func(c byte) bool {
		return c == '"' || c == '\\' || c < 0x20
	}), func(v text.View) chunk {
		return chunk{text: v.String()}
	})
	simple := parse.Map(parse.TakeOneOf(`"\/bfnrt`), func(v text.View) chunk {
		return chunk{text: escapes[v.At(0)]}
	})
	unicode := parse.AndThenTake(parse.TakeByte('u'), parse.Map(parse.TakeWhile(4, 4, isHex), func(v text.View) chunk {
		n, _ := strconv.ParseUint(v.String(), 16, 16)
		return chunk{unit: uint16(n), isUnit: true}
	}))
	escape := parse.AndThenTake(parse.TakeByte('\\'), parse.TakeFirst(simple, unicode))

	body := parse.Map(parse.Repeat(parse.TakeFirst(plain, escape), 0, -1), assemble)
	return skip(parse.TakeByte('"'), keep(body, closingQuote))
}

var closingQuote parse.Parser[text.View] = func(input text.View) parse.Result[text.View] {
	switch {
	case input.IsEmpty():
		return parse.Fail[text.View]("unterminated string", input)
	case input.At(0) == '"':
		return parse.Ok(input.Sub(0, 1), input.From(1))
	case input.At(0) == '\\':
		return parse.Fail[text.View]("invalid escape sequence", input)
	}
	return parse.Fail[text.View](fmt.Sprintf("invalid character %q in string", input.At(0)), input)
}

func assemble(chunks []chunk) string {
	var sb strings.Builder
	var units []uint16
	flush := func() {
		if len(units) > 0 {
			sb.WriteString(string(utf16.Decode(units)))
			units = units[:0]
		}
	}
	for _, c := range chunks {
		if c.isUnit {
			units = append(units, c.unit)
			continue
		}
		flush()
		sb.WriteString(c.text)
	}
	flush()
	return sb.String()
}
