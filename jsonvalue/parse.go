package jsonvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
)

// ErrTrailingData is returned when a document is followed by more JSON.
var ErrTrailingData = errors.New("jsonvalue: trailing data after document")

// Parse parses a single JSON document.
func Parse(data []byte) (Value, error) {
	return Read(bytes.NewReader(data))
}

// Read parses a single JSON document from r, consuming r to EOF.
func Read(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := parseValue(dec)
	if err == io.EOF {
		return Value{}, io.ErrUnexpectedEOF
	}
	if err != nil {
		return Value{}, err
	}

	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return Value{}, err
		}
		return Value{}, fmt.Errorf("%w: %v", ErrTrailingData, tok)
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(t), nil
	case json.Number:
		return NewNumber(string(t)), nil
	case string:
		return NewString(t), nil
	case json.Delim:
		switch t {
		case '[':
			return parseArray(dec)
		case '{':
			return parseObject(dec)
		}
	}
	return Value{}, fmt.Errorf("jsonvalue: unexpected token %v", tok)
}

func parseArray(dec *json.Decoder) (Value, error) {
	items := []Value{}
	for dec.More() {
		item, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return NewArray(items...), nil
}

func parseObject(dec *json.Decoder) (Value, error) {
	members := []Member{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		name, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("jsonvalue: unexpected object key %v", tok)
		}

		value, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		members = append(members, Member{Name: name, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return NewObject(members...), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalJSON implements json.Marshaler. Object member order is preserved.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.appendJSON(make([]byte, 0, 64))
}

func (v Value) appendJSON(buf []byte) ([]byte, error) {
	switch v.kind {
	case Bool:
		if v.boolean {
			return append(buf, "true"...), nil
		}
		return append(buf, "false"...), nil
	case Number:
		return append(buf, v.text...), nil
	case String:
		return appendString(buf, v.text)
	case Array:
		buf = append(buf, '[')
		for i, item := range v.items {
			if i > 0 {
				buf = append(buf, ',')
			}
			var err error
			if buf, err = item.appendJSON(buf); err != nil {
				return nil, err
			}
		}
		return append(buf, ']'), nil
	case Object:
		buf = append(buf, '{')
		for i, m := range v.members {
			if i > 0 {
				buf = append(buf, ',')
			}
			var err error
			if buf, err = appendString(buf, m.Name); err != nil {
				return nil, err
			}
			buf = append(buf, ':')
			if buf, err = m.Value.appendJSON(buf); err != nil {
				return nil, err
			}
		}
		return append(buf, '}'), nil
	default:
		return append(buf, "null"...), nil
	}
}

func appendString(buf []byte, s string) ([]byte, error) {
	quoted, err := sonic.Marshal(s)
	if err != nil {
		return nil, err
	}
	return append(buf, quoted...), nil
}

// String returns v as compact JSON.
func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<invalid json: %v>", err)
	}
	return string(data)
}

// Decode unmarshals v into target, which must be a non-nil pointer.
func (v Value) Decode(target any) error {
	data, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	return sonic.Unmarshal(data, target)
}
