package lsp

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dhamidi/kombinator/json/parser"
	"github.com/dhamidi/kombinator/parse"
	"github.com/dhamidi/kombinator/text"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagnosticSource = "kombinator"

// Diagnose parses content as a JSON document. The result is empty when the
// document is valid and never nil.
func Diagnose(content string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	_, err := parser.Parse(content)
	if err == nil {
		return diagnostics
	}
	var perr *parse.Error
	if !errors.As(err, &perr) {
		perr = &parse.Error{Message: err.Error(), At: text.Of(content)}
	}
	severity := protocol.DiagnosticSeverityError
	source := diagnosticSource
	return append(diagnostics, protocol.Diagnostic{
		Range:    errorRange(perr.At),
		Severity: &severity,
		Source:   &source,
		Message:  perr.Message,
	})
}

// errorRange covers the character a failure points at, or is empty at the
// end of a line or the input.
func errorRange(at text.View) protocol.Range {
	start := toPosition(at)
	end := start
	if !at.IsEmpty() && at.At(0) != '\n' && at.At(0) != '\r' {
		r, _ := utf8.DecodeRuneInString(at.Sub(0, min(at.Len(), utf8.UTFMax)).String())
		end.Character += protocol.UInteger(utf16.RuneLen(r))
	}
	return protocol.Range{Start: start, End: end}
}

// toPosition converts the start of v to a zero based line and a character
// offset counted in UTF-16 code units, as clients expect.
func toPosition(v text.View) protocol.Position {
	pos := v.Position()
	lineStart := pos.Offset - (pos.Column - 1)
	prefix := v.Origin()[lineStart:pos.Offset]
	character := 0
	for _, r := range prefix {
		character += utf16.RuneLen(r)
	}
	return protocol.Position{
		Line:      protocol.UInteger(pos.Line - 1),
		Character: protocol.UInteger(character),
	}
}
