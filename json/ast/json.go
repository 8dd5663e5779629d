package ast

import (
	"bytes"
	"encoding/json"
)

func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalValue(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (a Array) MarshalJSON() ([]byte, error) {
	items := make([]json.RawMessage, len(a))
	for i, v := range a {
		raw, err := marshalValue(v)
		if err != nil {
			return nil, err
		}
		items[i] = raw
	}
	return json.Marshal(items)
}

func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

func marshalValue(v Value) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}
