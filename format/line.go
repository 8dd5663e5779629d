package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/kombinator/json/ast"
)

// LineEncoder writes one tab separated line per scalar: its path from the
// root and its value. Empty containers get a line of their own.
type LineEncoder struct {
	w     io.Writer
	value ast.Value
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(v ast.Value) error {
	e.value = v
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	writeLines(&sb, "$", e.value)
	return []byte(sb.String()), nil
}

func writeLines(sb *strings.Builder, path string, v ast.Value) {
	switch v := v.(type) {
	case ast.Object:
		if len(v) == 0 {
			fmt.Fprintf(sb, "%s\t{}\n", path)
		}
		for _, m := range v {
			writeLines(sb, path+memberPath(m.Key), m.Value)
		}
	case ast.Array:
		if len(v) == 0 {
			fmt.Fprintf(sb, "%s\t[]\n", path)
		}
		for i, item := range v {
			writeLines(sb, fmt.Sprintf("%s[%d]", path, i), item)
		}
	case nil:
		fmt.Fprintf(sb, "%s\tnull\n", path)
	default:
		fmt.Fprintf(sb, "%s\t%s\n", path, v.String())
	}
}

func memberPath(key string) string {
	if key == "" {
		return `[""]`
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		if !(c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || (i > 0 && '0' <= c && c <= '9')) {
			return "[" + strconv.Quote(key) + "]"
		}
	}
	return "." + key
}
