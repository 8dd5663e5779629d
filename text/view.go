// Package text provides zero-copy views over input text.
package text

import (
	"fmt"
	"strconv"
)

// View is an immutable window over a backing string.
// Slicing a view never copies; only String materializes the text.
type View struct {
	origin string
	offset int
	length int
}

// Of returns a view spanning all of s.
func Of(s string) View {
	return View{origin: s, offset: 0, length: len(s)}
}

func (v View) Len() int {
	return v.length
}

func (v View) IsEmpty() bool {
	return v.length == 0
}

// Offset returns the start of the view within its origin.
func (v View) Offset() int {
	return v.offset
}

// Origin returns the full backing string the view was cut from.
func (v View) Origin() string {
	return v.origin
}

// At returns the byte at index i. It panics if i is out of range.
func (v View) At(i int) byte {
	if i < 0 || i >= v.length {
		panic(fmt.Sprintf("text: index %d out of range [0:%d]", i, v.length))
	}
	return v.origin[v.offset+i]
}

// Sub returns the view [start, start+length) relative to v.
func (v View) Sub(start, length int) View {
	if start == 0 && length == v.length {
		return v
	}
	if start < 0 || length < 0 || start+length > v.length {
		panic(fmt.Sprintf("text: sub view [%d:%d] out of range [0:%d]", start, start+length, v.length))
	}
	return View{origin: v.origin, offset: v.offset + start, length: length}
}

// From returns the suffix of v starting at start.
func (v View) From(start int) View {
	if start == 0 {
		return v
	}
	return v.Sub(start, v.length-start)
}

// HasPrefix reports whether the view starts with s.
func (v View) HasPrefix(s string) bool {
	if len(s) > v.length {
		return false
	}
	return v.origin[v.offset:v.offset+len(s)] == s
}

// Equal compares the viewed bytes, regardless of origin or offset.
func (v View) Equal(other View) bool {
	if v.length != other.length {
		return false
	}
	if v.origin == other.origin && v.offset == other.offset {
		return true
	}
	for i := 0; i < v.length; i++ {
		if v.origin[v.offset+i] != other.origin[other.offset+i] {
			return false
		}
	}
	return true
}

// Hash returns a content hash; equal views hash equal.
func (v View) Hash() uint32 {
	var h uint32
	for i := 0; i < v.length; i++ {
		h = 31*h + uint32(v.origin[v.offset+i])
	}
	return h
}

func (v View) String() string {
	return v.origin[v.offset : v.offset+v.length]
}

// Preview returns at most n bytes of the view, quoted.
func (v View) Preview(n int) string {
	if v.length <= n {
		return strconv.Quote(v.String())
	}
	return strconv.Quote(v.Sub(0, n).String()) + "..."
}
