// Copyright 2026 The DeepLearning.Two Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the dense numeric arrays
// flowing through tensor-valued layers.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	if err != nil {
//	    return err
//	}
//	y := x.MatMul(x.Transpose())
package tensor

import "github.com/mybuilderpal/DeepLearning.Two/internal/tensor"

// Float is a constraint for tensor element types.
type Float = tensor.Float

// Shape represents tensor dimensions; the empty shape is a scalar.
type Shape = tensor.Shape

// Tensor is a dense row-major array.
type Tensor[T Float] = tensor.Tensor[T]

// New allocates a zero-filled tensor of the given shape.
func New[T Float](shape Shape) (*Tensor[T], error) {
	return tensor.New[T](shape)
}

// FromSlice builds a tensor over a copy of data.
func FromSlice[T Float](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// Scalar builds a rank-0 tensor holding a single value.
func Scalar[T Float](value T) *Tensor[T] {
	return tensor.Scalar(value)
}

// Full builds a tensor with every element set to value.
func Full[T Float](value T, shape Shape) (*Tensor[T], error) {
	return tensor.Full(value, shape)
}

// Zeros builds a zero-filled tensor, panicking on an invalid shape.
func Zeros[T Float](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Ones builds a one-filled tensor, panicking on an invalid shape.
func Ones[T Float](shape Shape) *Tensor[T] {
	return tensor.Ones[T](shape)
}

// DecodeFloat16 builds a tensor from half-precision bit patterns.
func DecodeFloat16[T Float](bits []uint16, shape Shape) (*Tensor[T], error) {
	return tensor.DecodeFloat16[T](bits, shape)
}
