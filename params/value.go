package params

// Value is a request parameter tree. The set of implementations is closed:
// Absent, Null, Bool, Number, Text, Sequence and Mapping. A nil Value is
// treated as Absent everywhere.
type Value interface {
	isValue()
}

// Absent marks a parameter that is not present. It encodes to nothing and,
// passed to a body verb, means no request body is sent.
type Absent struct{}

// Null is an explicit null. The query encoder omits it like Absent; the JSON
// body encoder writes it as null.
type Null struct{}

// Bool is a boolean parameter. True encodes as a bare key, false is omitted.
type Bool bool

// Number is a numeric parameter, formatted the way JavaScript formats numbers.
type Number float64

// Text is a string parameter.
type Text string

// Sequence is an ordered list of parameters, encoded as key[0], key[1], ...
type Sequence []Value

// Entry is one key/value pair of a Mapping.
type Entry struct {
	Key   string
	Value Value
}

// Mapping is an ordered set of named parameters. Keys should be unique;
// entry order is encoding order.
type Mapping []Entry

func (Absent) isValue()   {}
func (Null) isValue()     {}
func (Bool) isValue()     {}
func (Number) isValue()   {}
func (Text) isValue()     {}
func (Sequence) isValue() {}
func (Mapping) isValue()  {}

// KV builds a Mapping entry.
func KV(key string, v Value) Entry {
	return Entry{Key: key, Value: v}
}

// Obj builds a Mapping from entries in the given order.
func Obj(entries ...Entry) Mapping {
	if entries == nil {
		return Mapping{}
	}
	return Mapping(entries)
}

// List builds a Sequence from items in the given order.
func List(items ...Value) Sequence {
	if items == nil {
		return Sequence{}
	}
	return Sequence(items)
}

// Get returns the value stored under key.
func (m Mapping) Get(key string) (Value, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Set returns a Mapping with key bound to v, replacing an existing entry in
// place or appending a new one.
func (m Mapping) Set(key string, v Value) Mapping {
	for i, e := range m {
		if e.Key == key {
			out := make(Mapping, len(m))
			copy(out, m)
			out[i].Value = v
			return out
		}
	}
	out := make(Mapping, len(m), len(m)+1)
	copy(out, m)
	return append(out, Entry{Key: key, Value: v})
}

// IsAbsent reports whether v carries no parameter at all.
func IsAbsent(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Absent)
	return ok
}
