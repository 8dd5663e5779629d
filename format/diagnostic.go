package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/kombinator/parse"
)

// DiagnosticEncoder reports parse failures, either as
// "file:line:column: message" lines or as JSON objects.
type DiagnosticEncoder struct {
	w    io.Writer
	opts options
	json bool
	err  *parse.Error
}

func NewDiagnosticEncoder(w io.Writer, opts ...Option) *DiagnosticEncoder {
	return &DiagnosticEncoder{w: w, opts: newOptions(opts)}
}

func NewJSONDiagnosticEncoder(w io.Writer, opts ...Option) *DiagnosticEncoder {
	return &DiagnosticEncoder{w: w, opts: newOptions(opts), json: true}
}

type jsonDiagnostic struct {
	File     string       `json:"file,omitempty"`
	Message  string       `json:"message"`
	Position jsonPosition `json:"position"`
}

type jsonPosition struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (e *DiagnosticEncoder) Encode(err *parse.Error) error {
	e.err = err
	text, mErr := e.MarshalText()
	if mErr != nil {
		return mErr
	}
	text = append(text, '\n')
	_, wErr := e.w.Write(text)
	return wErr
}

func (e *DiagnosticEncoder) MarshalText() ([]byte, error) {
	if e.err == nil {
		return nil, fmt.Errorf("no diagnostic to encode")
	}
	pos := e.err.Position()
	if e.json {
		return json.Marshal(jsonDiagnostic{
			File:     e.opts.file,
			Message:  e.err.Message,
			Position: jsonPosition{Offset: pos.Offset, Line: pos.Line, Column: pos.Column},
		})
	}
	if e.opts.file != "" {
		return []byte(fmt.Sprintf("%s:%s: %s", e.opts.file, pos, e.err.Message)), nil
	}
	return []byte(e.err.Error()), nil
}
