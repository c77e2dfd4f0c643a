package shape

import (
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

// Presence records whether a decoded field appeared in the payload.
type Presence uint8

const (
	// Missing marks a declared field the payload did not contain.
	Missing Presence = iota
	// Null marks a field the payload set to JSON null.
	Null
	// Present marks a field carrying a non-null value.
	Present
)

func (p Presence) String() string {
	switch p {
	case Missing:
		return "missing"
	case Null:
		return "null"
	case Present:
		return "present"
	default:
		return "unknown"
	}
}

// Type is the JSON type of a present Value.
type Type uint8

const (
	// TypeNone is the type of Missing and Null values.
	TypeNone Type = iota
	TypeString
	TypeNumber
	TypeBool
	TypeObject
	TypeList
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeBool:
		return "boolean"
	case TypeObject:
		return "object"
	case TypeList:
		return "array"
	default:
		return "none"
	}
}

// Value is the result of decoding JSON against a Shape. Values are
// immutable: accessors never expose internal storage for mutation.
//
// Accessors are forgiving: asking a string Value for Int64 or a Missing
// Value for a Field returns the zero value, so binding code can read a
// decoded tree without re-checking types the decoder already enforced.
type Value struct {
	presence Presence
	typ      Type
	str      string
	num      json.Number
	boolean  bool
	fields   map[string]Value
	items    []Value
}

// MissingValue returns a Value marked Missing.
func MissingValue() Value { return Value{presence: Missing} }

// NullValue returns a Value marked Null.
func NullValue() Value { return Value{presence: Null} }

// StringValue returns a present string Value.
func StringValue(s string) Value {
	return Value{presence: Present, typ: TypeString, str: s}
}

// NumberValue returns a present number Value holding n verbatim.
func NumberValue(n json.Number) Value {
	return Value{presence: Present, typ: TypeNumber, num: n}
}

// BoolValue returns a present boolean Value.
func BoolValue(b bool) Value {
	return Value{presence: Present, typ: TypeBool, boolean: b}
}

func objectValue(fields map[string]Value) Value {
	return Value{presence: Present, typ: TypeObject, fields: fields}
}

func listValue(items []Value) Value {
	return Value{presence: Present, typ: TypeList, items: items}
}

// Presence reports whether v was missing, null or present.
func (v Value) Presence() Presence { return v.presence }

// IsMissing reports whether the payload omitted v.
func (v Value) IsMissing() bool { return v.presence == Missing }

// IsNull reports whether the payload set v to null.
func (v Value) IsNull() bool { return v.presence == Null }

// IsPresent reports whether v carries a non-null value.
func (v Value) IsPresent() bool { return v.presence == Present }

// Type reports the JSON type of v; TypeNone unless v is present.
func (v Value) Type() Type { return v.typ }

// Field returns the named field of an object Value. Fields that were not
// declared by the Shape, and fields of non-object Values, are Missing.
func (v Value) Field(name string) Value {
	if v.typ != TypeObject {
		return MissingValue()
	}

	field, ok := v.fields[name]
	if !ok {
		return MissingValue()
	}

	return field
}

// Lookup follows a chain of field names.
func (v Value) Lookup(names ...string) Value {
	current := v
	for _, name := range names {
		current = current.Field(name)
	}

	return current
}

// Has reports whether the named field is present and non-null.
func (v Value) Has(name string) bool {
	return v.Field(name).IsPresent()
}

// FieldNames returns the names of declared fields of an object Value,
// including Missing ones.
func (v Value) FieldNames() []string {
	names := make([]string, 0, len(v.fields))
	for name := range v.fields {
		names = append(names, name)
	}

	return names
}

// Items returns a copy of the elements of a list Value.
func (v Value) Items() []Value {
	if v.typ != TypeList {
		return nil
	}

	out := make([]Value, len(v.items))
	copy(out, v.items)

	return out
}

// Len returns the number of elements of a list Value, or declared fields
// of an object Value.
func (v Value) Len() int {
	switch v.typ {
	case TypeList:
		return len(v.items)
	case TypeObject:
		return len(v.fields)
	default:
		return 0
	}
}

// Str returns the string held by v, or "".
func (v Value) Str() string {
	if v.typ != TypeString {
		return ""
	}

	return v.str
}

// Number returns the verbatim number literal held by v, or "".
func (v Value) Number() json.Number {
	if v.typ != TypeNumber {
		return ""
	}

	return v.num
}

// Int64 returns v as an int64. Fractional numbers are truncated and
// out-of-range numbers saturate.
func (v Value) Int64() int64 {
	if v.typ != TypeNumber {
		return 0
	}

	if n, err := strconv.ParseInt(string(v.num), 10, 64); err == nil {
		return n
	}

	f, err := strconv.ParseFloat(string(v.num), 64)
	if err != nil {
		return 0
	}

	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// Int returns v as an int.
func (v Value) Int() int {
	return int(v.Int64())
}

// Float64 returns v as a float64.
func (v Value) Float64() float64 {
	if v.typ != TypeNumber {
		return 0
	}

	f, _ := strconv.ParseFloat(string(v.num), 64)

	return f
}

// Bool returns the boolean held by v, or false.
func (v Value) Bool() bool {
	return v.typ == TypeBool && v.boolean
}

// Strings returns the string elements of a list Value.
func (v Value) Strings() []string {
	if v.typ != TypeList {
		return nil
	}

	out := make([]string, 0, len(v.items))
	for _, item := range v.items {
		out = append(out, item.Str())
	}

	return out
}

// StringMap returns the present fields of an object Value as strings.
// Strings are kept as they are; numbers, booleans, objects and arrays are
// rendered as their JSON text. Null and Missing fields are left out.
func (v Value) StringMap() map[string]string {
	if v.typ != TypeObject {
		return nil
	}

	out := make(map[string]string, len(v.fields))
	for name, field := range v.fields {
		switch field.typ {
		case TypeString:
			out[name] = field.str
		case TypeNumber:
			out[name] = string(field.num)
		case TypeBool:
			out[name] = strconv.FormatBool(field.boolean)
		case TypeObject, TypeList:
			encoded, err := field.MarshalJSON()
			if err == nil {
				out[name] = string(encoded)
			}
		case TypeNone:
		}
	}

	return out
}

// Interface converts v to plain Go values: map[string]any, []any,
// string, json.Number, bool or nil. Missing object fields are dropped.
func (v Value) Interface() any {
	switch v.typ {
	case TypeString:
		return v.str
	case TypeNumber:
		return v.num
	case TypeBool:
		return v.boolean
	case TypeObject:
		out := make(map[string]any, len(v.fields))
		for name, field := range v.fields {
			if field.IsMissing() {
				continue
			}

			out[name] = field.Interface()
		}

		return out
	case TypeList:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}

		return out
	default:
		return nil
	}
}

// MarshalJSON encodes v. Missing fields are omitted and Null fields are
// written as null, so decoding the output against the same Shape yields
// a Value equal to v.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}
