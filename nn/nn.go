// Copyright 2026 The DeepLearning.Two Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for the concrete differentiable
// layers: scalar arithmetic nodes, weights, and tensor-valued nodes.
package nn

import (
	"github.com/mybuilderpal/DeepLearning.Two/internal/nn"
	"github.com/mybuilderpal/DeepLearning.Two/internal/optim"
	"github.com/mybuilderpal/DeepLearning.Two/internal/tape"
	"github.com/mybuilderpal/DeepLearning.Two/internal/tensor"
)

// Float is a constraint for the scalar element types layers support.
type Float = nn.Float

// ScalarLayer is a layer over a single float value.
type ScalarLayer[T Float] = nn.ScalarLayer[T]

// TensorLayer is a layer over dense tensors.
type TensorLayer[T tensor.Float] = nn.TensorLayer[T]

// Literal produces a constant; its tape is not trainable.
type Literal[T Float] = nn.Literal[T]

// Plus adds the outputs of its two operand layers.
type Plus[T Float] = nn.Plus[T]

// Times multiplies the outputs of its two operand layers.
type Times[T Float] = nn.Times[T]

// Negative negates the output of its operand layer.
type Negative[T Float] = nn.Negative[T]

// Weight is an updatable scalar parameter.
type Weight[T Float] = nn.Weight[T]

// TensorLiteral produces a constant tensor.
type TensorLiteral[T tensor.Float] = nn.TensorLiteral[T]

// TensorWeight is an updatable tensor parameter.
type TensorWeight[T tensor.Float] = nn.TensorWeight[T]

// TensorPlus adds the outputs of its two operand layers element-wise.
type TensorPlus[T tensor.Float] = nn.TensorPlus[T]

// Dot multiplies the outputs of its two operand layers as matrices.
type Dot[T tensor.Float] = nn.Dot[T]

// NewWeight creates a named scalar weight.
func NewWeight[T Float](name string, initial T, optimizer optim.Optimizer[T]) *Weight[T] {
	return nn.NewWeight(name, initial, optimizer)
}

// NewTensorWeight creates a named tensor weight.
func NewTensorWeight[T tensor.Float](name string, initial *tensor.Tensor[T], optimizer optim.Optimizer[*tensor.Tensor[T]]) *TensorWeight[T] {
	return nn.NewTensorWeight(name, initial, optimizer)
}

// Input wraps a caller-supplied scalar in a trainable tape that
// accumulates the input gradient into *grad.
func Input[T Float](value T, grad *T) tape.Tape[T, T] {
	return nn.Input(value, grad)
}
