package types

import (
	"encoding/json"
	"strconv"
)

// ValueKind identifies the dynamic type carried by a Value.
type ValueKind int

const (
	KindString ValueKind = iota
	KindBool
	KindInt
	KindSeconds
)

// String returns the kind name used in diagnostics and CLI output.
func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindSeconds:
		return "seconds"
	default:
		return "string"
	}
}

// Value is a typed connection-option value. Options share one mapping
// but carry different types (booleans, integers, durations, raw
// strings), so Value tags each entry with its kind instead of relying
// on interface{} assertions at the call site.
//
// The zero Value is an empty string.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	f    float64
	s    string
}

// BoolValue wraps a boolean option value.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// IntValue wraps an integer option value.
func IntValue(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// SecondsValue wraps a duration option value, expressed in seconds.
func SecondsValue(f float64) Value {
	return Value{kind: KindSeconds, f: f}
}

// StringValue wraps a raw string option value.
func StringValue(s string) Value {
	return Value{kind: KindString, s: s}
}

// Kind returns the tag identifying which accessor is meaningful.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Bool returns the boolean payload; false when the kind is not KindBool.
func (v Value) Bool() bool {
	return v.b
}

// Int returns the integer payload; 0 when the kind is not KindInt.
func (v Value) Int() int64 {
	return v.i
}

// Seconds returns the duration payload in seconds; 0 when the kind is
// not KindSeconds.
func (v Value) Seconds() float64 {
	return v.f
}

// String returns the raw string for KindString values and a formatted
// representation for every other kind.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindSeconds:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return v.s
	}
}

// Interface returns the payload as an untyped value.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindSeconds:
		return v.f
	default:
		return v.s
	}
}

// MarshalJSON encodes the payload as its natural JSON type.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}
