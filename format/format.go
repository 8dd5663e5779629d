// Package format renders parsed JSON values and parse failures.
package format

import (
	"encoding"

	"github.com/dhamidi/kombinator/json/ast"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(v ast.Value) error
}

type options struct {
	indent string
	file   string
	color  bool
}

type Option func(*options)

// WithIndent sets the indentation used by the JSON encoders. An empty
// indent produces compact output.
func WithIndent(indent string) Option {
	return func(o *options) {
		o.indent = indent
	}
}

// WithFile names the input in diagnostics.
func WithFile(name string) Option {
	return func(o *options) {
		o.file = name
	}
}

// WithColor highlights JSON output for terminals.
func WithColor(color bool) Option {
	return func(o *options) {
		o.color = color
	}
}

func newOptions(opts []Option) options {
	o := options{indent: "  "}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
