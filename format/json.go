package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/kombinator/json/ast"
	"github.com/tidwall/pretty"
)

type JSONEncoder struct {
	w     io.Writer
	opts  options
	value ast.Value
}

func NewJSONEncoder(w io.Writer, opts ...Option) *JSONEncoder {
	return &JSONEncoder{w: w, opts: newOptions(opts)}
}

func (e *JSONEncoder) Encode(v ast.Value) error {
	e.value = v
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data, err := e.marshal()
	if err != nil || !e.opts.color {
		return data, err
	}
	return pretty.Color(data, pretty.TerminalStyle), nil
}

func (e *JSONEncoder) marshal() ([]byte, error) {
	if e.value == nil {
		return []byte("null"), nil
	}
	if e.opts.indent == "" {
		return json.Marshal(e.value)
	}
	return json.MarshalIndent(e.value, "", e.opts.indent)
}
