// Package shape decodes JSON documents against declarative shape
// descriptors.
//
// A Shape is a finite tree built from scalars, objects (a fixed set of
// named fields, each with its own Shape), lists (a single element Shape),
// maps (free-form objects whose values share one Shape) and Any, which
// accepts every JSON value. Decoding a payload against a Shape yields a
// Value tree that mirrors the Shape: every declared object field is
// present in the result, marked Missing when the payload omitted it and
// Null when the payload sent an explicit null. Unknown payload fields are
// ignored.
//
// Shapes are immutable once built and may be shared by any number of
// goroutines.
package shape

import (
	"sort"
)

// Kind identifies the variant of a Shape.
type Kind uint8

const (
	// KindScalar decodes strings, numbers, booleans and null as-is.
	KindScalar Kind = iota
	// KindObject decodes a JSON object field by field.
	KindObject
	// KindList decodes a JSON array element by element.
	KindList
	// KindMap decodes a JSON object with arbitrary keys.
	KindMap
	// KindAny accepts any JSON value and keeps it whole.
	KindAny
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindObject:
		return "object"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindAny:
		return "any"
	default:
		return "unknown"
	}
}

// ScalarType narrows which JSON scalars a scalar Shape accepts.
type ScalarType uint8

const (
	// AnyScalar accepts strings, numbers and booleans.
	AnyScalar ScalarType = iota
	// StringScalar accepts only JSON strings.
	StringScalar
	// NumberScalar accepts only JSON numbers.
	NumberScalar
	// BoolScalar accepts only JSON booleans.
	BoolScalar
)

func (t ScalarType) String() string {
	switch t {
	case AnyScalar:
		return "scalar"
	case StringScalar:
		return "string"
	case NumberScalar:
		return "number"
	case BoolScalar:
		return "boolean"
	default:
		return "unknown"
	}
}

// Fields maps JSON field names to the Shape of their values.
type Fields map[string]*Shape

// Shape describes how a JSON value is decoded. The zero value is not
// usable; build shapes with Scalar, String, Number, Bool, Object and List.
type Shape struct {
	kind   Kind
	scalar ScalarType
	fields Fields
	names  []string
	elem   *Shape
}

var (
	anyScalar    = &Shape{kind: KindScalar, scalar: AnyScalar}
	stringScalar = &Shape{kind: KindScalar, scalar: StringScalar}
	numberScalar = &Shape{kind: KindScalar, scalar: NumberScalar}
	boolScalar   = &Shape{kind: KindScalar, scalar: BoolScalar}
	anyValue     = &Shape{kind: KindAny}
)

// Scalar returns a Shape accepting any JSON scalar.
func Scalar() *Shape { return anyScalar }

// String returns a Shape accepting JSON strings.
func String() *Shape { return stringScalar }

// Number returns a Shape accepting JSON numbers.
func Number() *Shape { return numberScalar }

// Bool returns a Shape accepting JSON booleans.
func Bool() *Shape { return boolScalar }

// Any returns a Shape accepting every JSON value, nested objects and
// arrays included. Nothing below it is checked.
func Any() *Shape { return anyValue }

// Object returns a Shape decoding a JSON object with the given fields.
// The map is copied; later changes to fields do not affect the Shape.
// A nil field Shape is treated as Scalar.
func Object(fields Fields) *Shape {
	copied := make(Fields, len(fields))
	names := make([]string, 0, len(fields))

	for name, field := range fields {
		if field == nil {
			field = anyScalar
		}

		copied[name] = field
		names = append(names, name)
	}

	sort.Strings(names)

	return &Shape{kind: KindObject, fields: copied, names: names}
}

// List returns a Shape decoding a JSON array whose elements all have the
// given Shape. A nil element Shape is treated as Scalar.
func List(elem *Shape) *Shape {
	if elem == nil {
		elem = anyScalar
	}

	return &Shape{kind: KindList, elem: elem}
}

// Map returns a Shape decoding a JSON object whose keys are not known in
// advance, such as metadata. Every value is decoded against elem; a nil
// elem is treated as Scalar.
func Map(elem *Shape) *Shape {
	if elem == nil {
		elem = anyScalar
	}

	return &Shape{kind: KindMap, elem: elem}
}

// Kind reports the variant of s.
func (s *Shape) Kind() Kind { return s.kind }

// ScalarType reports which scalars s accepts. Meaningful for KindScalar only.
func (s *Shape) ScalarType() ScalarType { return s.scalar }

// Field returns the Shape declared for name, or nil if s is not an
// object or does not declare it.
func (s *Shape) Field(name string) *Shape {
	if s.kind != KindObject {
		return nil
	}

	return s.fields[name]
}

// FieldNames returns the declared field names of an object Shape in
// lexical order.
func (s *Shape) FieldNames() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}

// Elem returns the element Shape of a list or map Shape, or nil.
func (s *Shape) Elem() *Shape {
	return s.elem
}

// Extend returns a new object Shape holding the fields of s plus extra.
// Fields in extra replace fields of the same name. It panics if s is not
// an object Shape; extension happens while building package-level shapes.
func (s *Shape) Extend(extra Fields) *Shape {
	if s.kind != KindObject {
		panic("shape: Extend called on " + s.kind.String() + " shape")
	}

	merged := make(Fields, len(s.fields)+len(extra))
	for name, field := range s.fields {
		merged[name] = field
	}

	for name, field := range extra {
		merged[name] = field
	}

	return Object(merged)
}

func (s *Shape) String() string {
	switch s.kind {
	case KindScalar:
		return s.scalar.String()
	case KindList:
		return "list<" + s.elem.String() + ">"
	case KindMap:
		return "map<" + s.elem.String() + ">"
	case KindAny:
		return "any"
	default:
		return "object"
	}
}
