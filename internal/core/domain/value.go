package domain

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies the active variant of a Value.
type Kind uint8

const (
	// KindInvalid marks a value that was looked up but not found.
	KindInvalid Kind = iota
	// KindNull marks a value that is present but empty.
	KindNull
	// KindFloat holds a floating point number.
	KindFloat
	// KindInteger holds a signed integer.
	KindInteger
	// KindString holds a string.
	KindString
	// KindBoolean holds a boolean.
	KindBoolean
	// KindList holds an ordered list of values.
	KindList
	// KindMap holds a string-keyed map of values.
	KindMap
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindFloat:
		return "float"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "invalid"
	}
}

// Value is a format-agnostic tagged union describing command arguments.
// Exactly one variant is active. The zero Value is Invalid.
//
// Values are immutable: constructors copy their inputs and accessors return
// copies of composite contents.
type Value struct {
	kind Kind
	f    float64
	i    int64
	s    string
	b    bool
	list []Value
	m    map[string]Value
}

// Invalid returns the sentinel produced by lookups that found nothing.
func Invalid() Value { return Value{} }

// Null returns a present-but-empty value.
func Null() Value { return Value{kind: KindNull} }

// Float returns a float value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Integer returns an integer value.
func Integer(i int64) Value { return Value{kind: KindInteger, i: i} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }

// List returns a list value holding copies of items.
func List(items ...Value) Value {
	return Value{kind: KindList, list: cloneList(items)}
}

// Strings is a convenience constructor for a list of string values.
func Strings(items ...string) Value {
	list := make([]Value, len(items))
	for i, s := range items {
		list[i] = String(s)
	}
	return Value{kind: KindList, list: list}
}

// Map returns a map value holding copies of entries.
func Map(entries map[string]Value) Value {
	return Value{kind: KindMap, m: cloneMap(entries)}
}

// Kind reports the active variant.
func (v Value) Kind() Kind { return v.kind }

// IsInvalid reports whether v is the Invalid sentinel.
func (v Value) IsInvalid() bool { return v.kind == KindInvalid }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsString reports whether v holds a string.
func (v Value) IsString() bool { return v.kind == KindString }

// IsBool reports whether v holds a boolean.
func (v Value) IsBool() bool { return v.kind == KindBoolean }

// IsList reports whether v holds a list.
func (v Value) IsList() bool { return v.kind == KindList }

// IsMap reports whether v holds a map.
func (v Value) IsMap() bool { return v.kind == KindMap }

// AsString returns the string and true if v holds one.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsBool returns the boolean and true if v holds one.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBoolean
}

// AsInteger returns the integer and true if v holds one.
func (v Value) AsInteger() (int64, bool) {
	return v.i, v.kind == KindInteger
}

// AsFloat returns the float and true if v holds one.
func (v Value) AsFloat() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// AsList returns a copy of the list items and true if v holds a list.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return cloneList(v.list), true
}

// AsMap returns a copy of the map entries and true if v holds a map.
func (v Value) AsMap() (map[string]Value, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return cloneMap(v.m), true
}

// Lookup returns the entry stored under key and whether it exists.
// A missing key, or a receiver that is not a map, yields Invalid and false.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != KindMap {
		return Invalid(), false
	}
	item, ok := v.m[key]
	if !ok {
		return Invalid(), false
	}
	return item, true
}

// Get returns the entry stored under key, or Invalid.
func (v Value) Get(key string) Value {
	item, _ := v.Lookup(key)
	return item
}

// Keys returns the sorted keys of a map value.
func (v Value) Keys() []string {
	if v.kind != KindMap {
		return nil
	}
	return slices.Sorted(maps.Keys(v.m))
}

// Len returns the number of items of a list or map, or the byte length of a string.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMap:
		return len(v.m)
	case KindString:
		return len(v.s)
	default:
		return 0
	}
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindList:
		return Value{kind: KindList, list: cloneList(v.list)}
	case KindMap:
		return Value{kind: KindMap, m: cloneMap(v.m)}
	default:
		return v
	}
}

// Equal reports whether v and other hold the same variant and contents.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindFloat:
		return v.f == other.f
	case KindInteger:
		return v.i == other.i
	case KindString:
		return v.s == other.s
	case KindBoolean:
		return v.b == other.b
	case KindList:
		return slices.EqualFunc(v.list, other.list, Value.Equal)
	case KindMap:
		return maps.EqualFunc(v.m, other.m, Value.Equal)
	default:
		return true
	}
}

// String renders v for diagnostics. Map keys are printed in sorted order.
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindFloat:
		sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindInteger:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case KindString:
		sb.WriteString(strconv.Quote(v.s))
	case KindBoolean:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindList:
		sb.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				sb.WriteString(", ")
			}
			item.write(sb)
		}
		sb.WriteByte(']')
	case KindMap:
		sb.WriteByte('{')
		for i, k := range v.Keys() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteString(": ")
			v.m[k].write(sb)
		}
		sb.WriteByte('}')
	default:
		sb.WriteString("<invalid>")
	}
}

func cloneList(items []Value) []Value {
	if items == nil {
		return []Value{}
	}
	out := make([]Value, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

func cloneMap(entries map[string]Value) map[string]Value {
	out := make(map[string]Value, len(entries))
	for k, item := range entries {
		out[k] = item.Clone()
	}
	return out
}
