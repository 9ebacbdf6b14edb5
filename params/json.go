package params

import (
	"fmt"
	"math"

	"github.com/bytedance/sonic"
)

// Marshal serializes v as a JSON document with JSON.stringify semantics:
// mapping order is preserved, Absent entries are dropped from mappings and
// written as null inside sequences, non-finite numbers become null.
// Marshal of a top-level Absent yields "null"; callers that want "no body"
// check IsAbsent first.
func Marshal(v Value) ([]byte, error) {
	return appendJSON(make([]byte, 0, 64), v)
}

func appendJSON(buf []byte, v Value) ([]byte, error) {
	switch val := v.(type) {
	case nil, Absent, Null:
		return append(buf, "null"...), nil
	case Bool:
		if val {
			return append(buf, "true"...), nil
		}
		return append(buf, "false"...), nil
	case Number:
		f := float64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return append(buf, "null"...), nil
		}
		return append(buf, FormatNumber(f)...), nil
	case Text:
		return appendString(buf, string(val))
	case Sequence:
		buf = append(buf, '[')
		for i, item := range val {
			if i > 0 {
				buf = append(buf, ',')
			}
			var err error
			if buf, err = appendJSON(buf, item); err != nil {
				return nil, err
			}
		}
		return append(buf, ']'), nil
	case Mapping:
		buf = append(buf, '{')
		first := true
		for _, e := range val {
			if IsAbsent(e.Value) {
				continue
			}
			if !first {
				buf = append(buf, ',')
			}
			first = false
			var err error
			if buf, err = appendString(buf, e.Key); err != nil {
				return nil, err
			}
			buf = append(buf, ':')
			if buf, err = appendJSON(buf, e.Value); err != nil {
				return nil, err
			}
		}
		return append(buf, '}'), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

func appendString(buf []byte, s string) ([]byte, error) {
	quoted, err := sonic.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode string: %w", err)
	}
	return append(buf, quoted...), nil
}

// MarshalJSON implements json.Marshaler.
func (Absent) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// MarshalJSON implements json.Marshaler.
func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// MarshalJSON implements json.Marshaler.
func (b Bool) MarshalJSON() ([]byte, error) { return Marshal(b) }

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) { return Marshal(n) }

// MarshalJSON implements json.Marshaler.
func (t Text) MarshalJSON() ([]byte, error) { return Marshal(t) }

// MarshalJSON implements json.Marshaler.
func (s Sequence) MarshalJSON() ([]byte, error) { return Marshal(s) }

// MarshalJSON implements json.Marshaler.
func (m Mapping) MarshalJSON() ([]byte, error) { return Marshal(m) }
