package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/kombinator/json/ast"
	"github.com/dhamidi/kombinator/parse"
	"github.com/dhamidi/kombinator/text"
	"github.com/tidwall/gjson"
)

func TestParseValues(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Value
	}{
		{"true", ast.Bool(true)},
		{"false", ast.Bool(false)},
		{"null", ast.Null{}},
		{"0", ast.Integer(0)},
		{"11", ast.Integer(11)},
		{"-42", ast.Integer(-42)},
		{"0.1", ast.Float(0.1)},
		{"0.1e1", ast.Float(0.1e1)},
		{"0.1e+1", ast.Float(0.1e+1)},
		{"0.1e-1", ast.Float(0.1e-1)},
		{"-0.1e1", ast.Float(-0.1e1)},
		{"2E3", ast.Float(2e3)},
		{"92233720368547758070", ast.Float(92233720368547758070)},
		{`"a"`, ast.String("a")},
		{`""`, ast.String("")},
		{`"a\"b\\c\/d\n\t"`, ast.String("a\"b\\c/d\n\t")},
		{`"caf\u00e9abc"`, ast.String("caféabc")},
		{`"\ud83d\ude00!"`, ast.String("😀!")},
		{`"raw ü"`, ast.String("raw ü")},
		{"[null]", ast.Array{ast.Null{}}},
		{`["a"]`, ast.Array{ast.String("a")}},
		{"[]", ast.Array{}},
		{"[ ]", ast.Array{}},
		{"{}", ast.Object{}},
		{`{"a": "b"}`, ast.Object{{Key: "a", Value: ast.String("b")}}},
		{
			` { "list" : [1, 2.5, [true, {}]] , "x":null } `,
			ast.Object{
				{Key: "list", Value: ast.Array{ast.Integer(1), ast.Float(2.5), ast.Array{ast.Bool(true), ast.Object{}}}},
				{Key: "x", Value: ast.Null{}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !ast.Equal(got, tt.want) {
				t.Errorf("Parse = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
		offset  int
	}{
		{"", "unexpected end of input", 0},
		{"tru", "no alternative matched", 0},
		{"[1,]", "expected ']', got ','", 2},
		{"[1 2]", "expected ']', got '2'", 3},
		{`{"a" 1}`, "expected ':', got '1'", 5},
		{`{"a": }`, "unexpected character '}'", 6},
		{`"abc`, "unterminated string", 4},
		{`"a\x"`, "invalid escape sequence", 2},
		{"\"a\nb\"", `invalid character '\n' in string`, 2},
		{"01", `parser did not consume entire input: "1"`, 1},
		{"true false", `parser did not consume entire input: "false"`, 5},
		{"?", "unexpected character '?'", 0},
		{"-", "invalid number", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse = %s, want error", v)
			}
			var perr *parse.Error
			if !errors.As(err, &perr) {
				t.Fatalf("error %v is not a *parse.Error", err)
			}
			if perr.Message != tt.message {
				t.Errorf("Message = %q, want %q", perr.Message, tt.message)
			}
			if perr.At.Offset() != tt.offset {
				t.Errorf("Offset = %d, want %d", perr.At.Offset(), tt.offset)
			}
		})
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := Parse("{\n  \"a\": [1,\n    2,,\n  ]\n}")
	var perr *parse.Error
	if !errors.As(err, &perr) {
		t.Fatalf("error %v is not a *parse.Error", err)
	}
	pos := perr.Position()
	if pos.Line != 3 || pos.Column != 6 {
		t.Errorf("Position = %s, want 3:6", pos)
	}
}

func TestValueLeavesRest(t *testing.T) {
	g := NewGrammar()
	r := g.Value.Parse("[1] tail")
	if !r.Ok() {
		t.Fatalf("parse failed: %s", r.Message())
	}
	if r.Rest().String() != " tail" {
		t.Errorf("Rest = %q, want %q", r.Rest(), " tail")
	}
}

func TestGrammarTracing(t *testing.T) {
	calls := 0
	restore := parse.SetTracer(parse.TracerFunc(func(string, text.View) {
		calls++
	}))
	g := NewGrammar()
	restore()

	input := `{"a": [1, "two", null]}`
	traced := g.Document.Parse(input)
	plain := NewGrammar().Document.Parse(input)
	if !traced.Ok() || !plain.Ok() || !ast.Equal(traced.Value(), plain.Value()) {
		t.Errorf("traced %v, untraced %v", traced, plain)
	}
	if calls == 0 {
		t.Errorf("tracer saw no invocations")
	}
}

// TestAgreesWithGJSON checks validity decisions against an independent
// validator.
func TestAgreesWithGJSON(t *testing.T) {
	inputs := []string{
		`{}`, `[]`, `0`, `-0`, `1.5e10`, `-1E-2`, `"x"`, `true`, `null`,
		` [ 1 , { "a" : [ ] } ] `,
		`{"a":"\u00e9\n","b":[false,null,{"c":-12.25}]}`,
		``, ` `, `01`, `1.`, `.5`, `-`, `+1`, `1e`, `[1,]`, `{"a"}`, `{"a":1,}`,
		`{a:1}`, `'x'`, `"abc`, `"\x"`, "\"a\tb\"", `[1] [2]`, `nul`, `truex`,
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if got, want := err == nil, gjson.Valid(input); got != want {
				t.Errorf("valid = %v, gjson says %v (err: %v)", got, want, err)
			}
		})
	}
}

func nested(depth int) string {
	return strings.Repeat("[", depth) + strings.Repeat("]", depth)
}

func TestNestingLimit(t *testing.T) {
	if _, err := Parse(nested(MaxDepth)); err != nil {
		t.Fatalf("Parse at MaxDepth: %v", err)
	}

	for _, depth := range []int{MaxDepth + 1, 3_000_000} {
		_, err := Parse(nested(depth))
		var perr *parse.Error
		if !errors.As(err, &perr) {
			t.Fatalf("depth %d: error %v is not a *parse.Error", depth, err)
		}
		if !strings.HasPrefix(perr.Message, "nesting too deep") {
			t.Errorf("depth %d: Message = %q", depth, perr.Message)
		}
		if perr.At.Offset() != MaxDepth {
			t.Errorf("depth %d: Offset = %d, want %d", depth, perr.At.Offset(), MaxDepth)
		}
	}

	objects := strings.Repeat(`{"a":`, MaxDepth+1) + "1" + strings.Repeat("}", MaxDepth+1)
	if r := NewGrammar().Value.Parse(objects); r.Ok() {
		t.Errorf("Value accepted %d nested objects", MaxDepth+1)
	}
}

func TestLimitDepth(t *testing.T) {
	p := limitDepth(2, NewGrammar().Document)
	tests := []struct {
		input string
		ok    bool
	}{
		{`[[1]]`, true},
		{`[[[1]]]`, false},
		{`[{"a": 1}, [2], {}]`, true},
		{`["[[[", "{{{"]`, true},
		{`["\"[[[", 1]`, true},
		{`[[]] [[[]]]`, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := p.Parse(tt.input)
			if r.Ok() != tt.ok {
				t.Errorf("ok = %v, want %v (%s)", r.Ok(), tt.ok, r.Message())
			}
		})
	}
}
