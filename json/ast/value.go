// Package ast defines the values produced by the JSON grammar.
package ast

import (
	"strconv"
	"strings"
)

// Value is one of Object, Array, String, Integer, Float, Bool or Null.
type Value interface {
	String() string
	value()
}

type Member struct {
	Key   string
	Value Value
}

// Object keeps members in source order.
type Object []Member

type Array []Value

type String string

type Integer int64

type Float float64

type Bool bool

type Null struct{}

func (Object) value()  {}
func (Array) value()   {}
func (String) value()  {}
func (Integer) value() {}
func (Float) value()   {}
func (Bool) value()    {}
func (Null) value()    {}

// Get returns the value of the last member named key.
func (o Object) Get(key string) (Value, bool) {
	for i := len(o) - 1; i >= 0; i-- {
		if o[i].Key == key {
			return o[i].Value, true
		}
	}
	return nil, false
}

func (o Object) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(m.Key))
		sb.WriteString(": ")
		sb.WriteString(m.Value.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (a Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (s String) String() string {
	return strconv.Quote(string(s))
}

func (n Integer) String() string {
	return strconv.FormatInt(int64(n), 10)
}

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

func (Null) String() string {
	return "null"
}

// Equal compares two values structurally. Object members are compared in
// order.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Object:
		b, ok := b.(Object)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i].Key != b[i].Key || !Equal(a[i].Value, b[i].Value) {
				return false
			}
		}
		return true
	case Array:
		b, ok := b.(Array)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
