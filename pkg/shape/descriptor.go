package shape

// Descriptor pairs a Shape with the function that turns a Value decoded
// against it into a T. Binding never fails: by the time it runs, the
// decoder has already checked every declared field against the Shape.
//
// Descriptors of nested types are composed by calling the child
// descriptor's Bind from the parent's bind function, so each domain type
// is described exactly once.
type Descriptor[T any] struct {
	shape *Shape
	bind  func(Value) T
}

// Describe builds a Descriptor.
func Describe[T any](s *Shape, bind func(Value) T) *Descriptor[T] {
	return &Descriptor[T]{shape: s, bind: bind}
}

// Shape returns the Shape values are decoded against.
func (d *Descriptor[T]) Shape() *Shape {
	return d.shape
}

// Bind converts an already decoded Value.
func (d *Descriptor[T]) Bind(v Value) T {
	return d.bind(v)
}

// Decode decodes raw against the descriptor's Shape and binds the result.
func (d *Descriptor[T]) Decode(raw []byte) (T, error) {
	value, err := Decode(raw, d.shape)
	if err != nil {
		var zero T

		return zero, err
	}

	return d.bind(value), nil
}

// BindList binds every element of a list Value with d.
func BindList[T any](v Value, d *Descriptor[T]) []T {
	items := v.Items()
	out := make([]T, 0, len(items))

	for _, item := range items {
		out = append(out, d.bind(item))
	}

	return out
}
