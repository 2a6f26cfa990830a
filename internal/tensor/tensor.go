// Package tensor provides the dense numeric data type flowing through the
// differentiable layers.
//
// Tensors are row-major, generic over the element type, and immutable by
// convention: operations allocate a new result. Constructors return
// errors for invalid inputs; operations on already constructed tensors
// panic on shape mismatch, which is a caller bug surfaced synchronously.
package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Float constrains the element types tensors support.
type Float interface {
	~float32 | ~float64
}

// Tensor is a dense row-major array of T.
type Tensor[T Float] struct {
	shape Shape
	data  []T
}

// New allocates a zero-filled tensor of the given shape.
func New[T Float](shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "tensor.New")
	}
	return &Tensor[T]{
		shape: shape.Clone(),
		data:  make([]T, shape.NumElements()),
	}, nil
}

// FromSlice builds a tensor over a copy of data. The length of data must
// match the number of elements the shape requires.
func FromSlice[T Float](data []T, shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "tensor.FromSlice")
	}
	if len(data) != shape.NumElements() {
		return nil, errors.Errorf("tensor.FromSlice: %d values cannot fill shape %s (%d elements)",
			len(data), shape, shape.NumElements())
	}
	t := &Tensor[T]{
		shape: shape.Clone(),
		data:  make([]T, len(data)),
	}
	copy(t.data, data)
	return t, nil
}

// Scalar builds a rank-0 tensor holding a single value.
func Scalar[T Float](value T) *Tensor[T] {
	return &Tensor[T]{shape: Shape{}, data: []T{value}}
}

// Full builds a tensor with every element set to value.
func Full[T Float](value T, shape Shape) (*Tensor[T], error) {
	t, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = value
	}
	return t, nil
}

// Zeros builds a zero-filled tensor, panicking on an invalid shape.
// Convenience for tests and layer initialization where the shape is a
// compile-time constant.
func Zeros[T Float](shape Shape) *Tensor[T] {
	t, err := New[T](shape)
	if err != nil {
		panic(err)
	}
	return t
}

// Ones builds a one-filled tensor, panicking on an invalid shape.
func Ones[T Float](shape Shape) *Tensor[T] {
	t, err := Full[T](1, shape)
	if err != nil {
		panic(err)
	}
	return t
}

// Shape returns the tensor's shape. The returned slice must not be
// mutated.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// Data returns the backing slice in row-major order. The returned slice
// must not be mutated except by code that owns the tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// At returns the element at the given multi-dimensional index.
func (t *Tensor[T]) At(indices ...int) T {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("tensor: At with %d indices on rank-%d tensor", len(indices), t.shape.Rank()))
	}
	flat := 0
	for axis, idx := range indices {
		if idx < 0 || idx >= t.shape[axis] {
			panic(fmt.Sprintf("tensor: index %d out of range for axis %d of shape %s", idx, axis, t.shape))
		}
		flat = flat*t.shape[axis] + idx
	}
	return t.data[flat]
}

// Item returns the single element of a scalar or one-element tensor.
func (t *Tensor[T]) Item() T {
	if len(t.data) != 1 {
		panic(fmt.Sprintf("tensor: Item on tensor of shape %s", t.shape))
	}
	return t.data[0]
}

// Clone returns a deep copy.
func (t *Tensor[T]) Clone() *Tensor[T] {
	out := &Tensor[T]{
		shape: t.shape.Clone(),
		data:  make([]T, len(t.data)),
	}
	copy(out.data, t.data)
	return out
}

// String formats small tensors fully and large ones by shape only.
func (t *Tensor[T]) String() string {
	if len(t.data) <= 8 {
		return fmt.Sprintf("Tensor%s%v", t.shape, t.data)
	}
	return fmt.Sprintf("Tensor%s{...%d elements}", t.shape, len(t.data))
}
