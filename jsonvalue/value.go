// Package jsonvalue holds an untyped JSON document as a tagged union.
//
// Response bodies are parsed into a Value without any schema. Objects keep
// the member order of the source document. Callers that want typed results
// decode further with Value.Decode.
package jsonvalue

import (
	"fmt"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Member is one name/value pair of an object.
type Member struct {
	Name  string
	Value Value
}

// Value is a parsed JSON value. The zero Value is null.
type Value struct {
	kind    Kind
	boolean bool
	text    string // string contents, or the number literal
	items   []Value
	members []Member
}

// NewNull returns the null value.
func NewNull() Value { return Value{} }

// NewBool wraps b.
func NewBool(b bool) Value { return Value{kind: Bool, boolean: b} }

// NewNumber wraps a JSON number literal such as "12" or "1.5e3".
func NewNumber(literal string) Value { return Value{kind: Number, text: literal} }

// NewString wraps s.
func NewString(s string) Value { return Value{kind: String, text: s} }

// NewArray wraps items.
func NewArray(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: Array, items: items}
}

// NewObject wraps members in the given order.
func NewObject(members ...Member) Value {
	if members == nil {
		members = []Member{}
	}
	return Value{kind: Object, members: members}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == Null }

// Bool returns the boolean and whether v is a boolean.
func (v Value) Bool() (bool, bool) {
	return v.boolean, v.kind == Bool
}

// Str returns the string and whether v is a string.
func (v Value) Str() (string, bool) {
	if v.kind != String {
		return "", false
	}
	return v.text, true
}

// Literal returns the number literal as it appeared in the document.
func (v Value) Literal() (string, bool) {
	if v.kind != Number {
		return "", false
	}
	return v.text, true
}

// Float64 returns the number as a float64.
func (v Value) Float64() (float64, error) {
	if v.kind != Number {
		return 0, fmt.Errorf("jsonvalue: %s is not a number", v.kind)
	}
	return strconv.ParseFloat(v.text, 64)
}

// Int64 returns the number as an int64. Literals with a fraction or exponent
// fail.
func (v Value) Int64() (int64, error) {
	if v.kind != Number {
		return 0, fmt.Errorf("jsonvalue: %s is not a number", v.kind)
	}
	return strconv.ParseInt(v.text, 10, 64)
}

// Len returns the number of array items or object members.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.items)
	case Object:
		return len(v.members)
	default:
		return 0
	}
}

// Index returns the i-th array item.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != Array || i < 0 || i >= len(v.items) {
		return Value{}, false
	}
	return v.items[i], true
}

// Items returns the array items. The slice must not be modified.
func (v Value) Items() []Value {
	if v.kind != Array {
		return nil
	}
	return v.items
}

// Get returns the value of the named member. With duplicate names the last
// one wins, as in most JSON parsers.
func (v Value) Get(name string) (Value, bool) {
	if v.kind != Object {
		return Value{}, false
	}
	for i := len(v.members) - 1; i >= 0; i-- {
		if v.members[i].Name == name {
			return v.members[i].Value, true
		}
	}
	return Value{}, false
}

// Members returns the object members in document order. The slice must not
// be modified.
func (v Value) Members() []Member {
	if v.kind != Object {
		return nil
	}
	return v.members
}

// Keys returns the member names in document order.
func (v Value) Keys() []string {
	if v.kind != Object {
		return nil
	}
	keys := make([]string, len(v.members))
	for i, m := range v.members {
		keys[i] = m.Name
	}
	return keys
}

// Interface converts v to the plain Go representation used by encoding/json:
// nil, bool, float64, string, []any and map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case Bool:
		return v.boolean
	case Number:
		f, err := strconv.ParseFloat(v.text, 64)
		if err != nil {
			return v.text
		}
		return f
	case String:
		return v.text
	case Array:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	case Object:
		out := make(map[string]any, len(v.members))
		for _, m := range v.members {
			out[m.Name] = m.Value.Interface()
		}
		return out
	default:
		return nil
	}
}
