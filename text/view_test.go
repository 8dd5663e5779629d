package text

import "testing"

func TestViewOf(t *testing.T) {
	v := Of("abc")
	if v.Len() != 3 {
		t.Errorf("Len = %d, want %d", v.Len(), 3)
	}
	if v.IsEmpty() {
		t.Errorf("IsEmpty = true, want false")
	}
	if v.String() != "abc" {
		t.Errorf("String = %q, want %q", v.String(), "abc")
	}
	if !Of("").IsEmpty() {
		t.Errorf("Of(\"\").IsEmpty = false, want true")
	}
}

func TestViewSub(t *testing.T) {
	v := Of("hello world")
	sub := v.Sub(6, 5)
	if sub.String() != "world" {
		t.Errorf("Sub(6, 5) = %q, want %q", sub.String(), "world")
	}
	if sub.Offset() != 6 {
		t.Errorf("Offset = %d, want %d", sub.Offset(), 6)
	}
	if sub.Origin() != "hello world" {
		t.Errorf("Origin = %q, want %q", sub.Origin(), "hello world")
	}

	inner := sub.Sub(1, 3)
	if inner.String() != "orl" {
		t.Errorf("Sub(1, 3) = %q, want %q", inner.String(), "orl")
	}
	if inner.Offset() != 7 {
		t.Errorf("Offset = %d, want %d", inner.Offset(), 7)
	}

	if got := v.From(6).String(); got != "world" {
		t.Errorf("From(6) = %q, want %q", got, "world")
	}
	if got := v.From(11); !got.IsEmpty() {
		t.Errorf("From(11) = %q, want empty", got.String())
	}
}

func TestViewSubOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Sub beyond parent bounds did not panic")
		}
	}()
	Of("hello world").Sub(6, 5).Sub(2, 4)
}

func TestViewAt(t *testing.T) {
	v := Of("xabc").From(1)
	for i, want := range []byte("abc") {
		if got := v.At(i); got != want {
			t.Errorf("At(%d) = %q, want %q", i, got, want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Errorf("At(len) did not panic")
		}
	}()
	v.At(3)
}

func TestViewHasPrefix(t *testing.T) {
	v := Of("--true--").Sub(2, 4)
	tests := []struct {
		prefix string
		want   bool
	}{
		{"", true},
		{"t", true},
		{"true", true},
		{"true-", false},
		{"false", false},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			if got := v.HasPrefix(tt.prefix); got != tt.want {
				t.Errorf("HasPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestViewContentEquality(t *testing.T) {
	a := Of("xxabcxx").Sub(2, 3)
	b := Of("abc")
	c := Of("abd")

	if !a.Equal(b) {
		t.Errorf("%q.Equal(%q) = false, want true", a, b)
	}
	if a.Hash() != b.Hash() {
		t.Errorf("Hash mismatch for equal views: %d != %d", a.Hash(), b.Hash())
	}
	if a.Equal(c) {
		t.Errorf("%q.Equal(%q) = true, want false", a, c)
	}
	if a.Equal(Of("ab")) {
		t.Errorf("views of different length compared equal")
	}
	if !Of("").Equal(Of("abc").From(3)) {
		t.Errorf("empty views compared unequal")
	}
}

func TestViewPreview(t *testing.T) {
	v := Of("abcdef")
	if got := v.Preview(10); got != `"abcdef"` {
		t.Errorf("Preview(10) = %s, want %s", got, `"abcdef"`)
	}
	if got := v.Preview(3); got != `"abc"...` {
		t.Errorf("Preview(3) = %s, want %s", got, `"abc"...`)
	}
}

func TestViewPosition(t *testing.T) {
	src := "ab\ncd\r\nef\rg"
	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{4, 2, 2},
		{5, 2, 3},
		{6, 2, 4},
		{7, 3, 1},
		{9, 3, 3},
		{10, 4, 1},
	}

	for _, tt := range tests {
		pos := Of(src).From(tt.offset).Position()
		if pos.Offset != tt.offset {
			t.Errorf("offset %d: Offset = %d", tt.offset, pos.Offset)
		}
		if pos.Line != tt.line {
			t.Errorf("offset %d: Line = %d, want %d", tt.offset, pos.Line, tt.line)
		}
		if pos.Column != tt.column {
			t.Errorf("offset %d: Column = %d, want %d", tt.offset, pos.Column, tt.column)
		}
	}

	if got := Of(src).From(4).Position().String(); got != "2:2" {
		t.Errorf("String = %q, want %q", got, "2:2")
	}
}
