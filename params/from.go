package params

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ErrUnsupportedType is returned by From for Go values that have no
// parameter representation (functions, channels, complex numbers, maps with
// non-string keys).
var ErrUnsupportedType = errors.New("params: unsupported type")

var (
	valueType         = reflect.TypeOf((*Value)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	jsonNumberType    = reflect.TypeOf(json.Number(""))
)

// From converts native Go data into a Value.
//
// Conversions:
//   - nil, nil pointers, nil maps and nil slices become Null
//   - bool becomes Bool; all integer and float kinds become Number
//   - string and encoding.TextMarshaler become Text; json.Number becomes Number
//   - slices and arrays become Sequence
//   - maps with string keys become Mapping with keys in sorted order
//   - structs become Mapping in field order, honoring `json` tag names,
//     "-" and omitempty
//   - Value implementations are returned unchanged
func From(v any) (Value, error) {
	if v == nil {
		return Null{}, nil
	}
	return fromReflect(reflect.ValueOf(v))
}

// MustFrom is like From but panics on error.
func MustFrom(v any) Value {
	pv, err := From(v)
	if err != nil {
		panic(err)
	}
	return pv
}

func fromReflect(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return Null{}, nil
	}

	if rv.Kind() != reflect.Interface && rv.Kind() != reflect.Pointer && rv.Type().Implements(valueType) {
		return rv.Interface().(Value), nil
	}

	if rv.Type() == jsonNumberType {
		f, err := json.Number(rv.String()).Float64()
		if err != nil {
			return nil, fmt.Errorf("params: invalid json.Number %q: %w", rv.String(), err)
		}
		return Number(f), nil
	}

	if rv.Kind() != reflect.Interface && rv.Type().Implements(textMarshalerType) {
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return Null{}, nil
		}
		text, err := rv.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, fmt.Errorf("params: marshal %s: %w", rv.Type(), err)
		}
		return Text(text), nil
	}

	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return Null{}, nil
		}
		return fromReflect(rv.Elem())
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	case reflect.String:
		return Text(rv.String()), nil
	case reflect.Slice:
		if rv.IsNil() {
			return Null{}, nil
		}
		return fromList(rv)
	case reflect.Array:
		return fromList(rv)
	case reflect.Map:
		return fromMap(rv)
	case reflect.Struct:
		return fromStruct(rv)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
	}
}

func fromList(rv reflect.Value) (Value, error) {
	out := make(Sequence, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item, err := fromReflect(rv.Index(i))
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out = append(out, item)
	}
	return out, nil
}

func fromMap(rv reflect.Value) (Value, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
	}
	if rv.IsNil() {
		return Null{}, nil
	}

	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	out := make(Mapping, 0, len(keys))
	for _, k := range keys {
		item, err := fromReflect(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out = append(out, Entry{Key: k, Value: item})
	}
	return out, nil
}

func fromStruct(rv reflect.Value) (Value, error) {
	t := rv.Type()
	out := make(Mapping, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Name
		omitEmpty := false
		if tag, ok := field.Tag.Lookup("json"); ok {
			if tag == "-" {
				continue
			}
			tagName, opts, _ := strings.Cut(tag, ",")
			if tagName != "" {
				name = tagName
			}
			omitEmpty = strings.Contains(","+opts+",", ",omitempty,")
		}

		fv := rv.Field(i)
		if omitEmpty && isEmpty(fv) {
			continue
		}

		item, err := fromReflect(fv)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out = append(out, Entry{Key: name, Value: item})
	}
	return out, nil
}

// isEmpty mirrors the omitempty rules of encoding/json.
func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	case reflect.Struct:
		return false
	}
	return v.IsZero()
}
