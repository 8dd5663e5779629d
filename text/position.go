package text

import "fmt"

// Position represents a location in the origin of a view.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Position returns the 1-based line and column (in bytes) where v starts.
// CR, LF and CRLF all end a line. Both bytes of a CRLF pair belong to the
// line they end, so a view starting on its LF is still on that line.
func (v View) Position() Position {
	line, column := 1, 1
	for i := 0; i < v.offset; i++ {
		switch v.origin[i] {
		case '\r':
			if i+1 < len(v.origin) && v.origin[i+1] == '\n' {
				column++
				continue
			}
			line++
			column = 1
		case '\n':
			line++
			column = 1
		default:
			column++
		}
	}
	return Position{Offset: v.offset, Line: line, Column: column}
}
