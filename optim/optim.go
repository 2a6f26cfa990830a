// Copyright 2026 The DeepLearning.Two Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the public API for optimizers.
//
// Optimizers are consumed by weight layers: each weight owns an
// optimizer instance, and every gradient pushed into the weight's tape
// triggers one update step.
//
// Example:
//
//	w := nn.NewWeight("w", 2.0, optim.NewSGD[float64](optim.SGDConfig{LR: 0.01}))
package optim

import (
	"github.com/mybuilderpal/DeepLearning.Two/internal/optim"
	"github.com/mybuilderpal/DeepLearning.Two/internal/tensor"
)

// Optimizer computes the next value of a parameter from its current
// value and gradient.
type Optimizer[D any] = optim.Optimizer[D]

// Float is a constraint for scalar parameter types.
type Float = optim.Float

// SGDConfig holds configuration for stochastic gradient descent.
type SGDConfig = optim.SGDConfig

// SGD is stochastic gradient descent over a scalar parameter.
type SGD[T Float] = optim.SGD[T]

// TensorSGD is stochastic gradient descent over a tensor parameter.
type TensorSGD[T tensor.Float] = optim.TensorSGD[T]

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig = optim.AdamConfig

// Adam is the Adam optimizer over a scalar parameter.
type Adam[T Float] = optim.Adam[T]

// TensorAdam is the Adam optimizer over a tensor parameter.
type TensorAdam[T tensor.Float] = optim.TensorAdam[T]

// NewSGD creates an SGD optimizer for one scalar parameter.
func NewSGD[T Float](config SGDConfig) *SGD[T] {
	return optim.NewSGD[T](config)
}

// NewTensorSGD creates an SGD optimizer for one tensor parameter.
func NewTensorSGD[T tensor.Float](config SGDConfig) *TensorSGD[T] {
	return optim.NewTensorSGD[T](config)
}

// NewAdam creates an Adam optimizer for one scalar parameter.
func NewAdam[T Float](config AdamConfig) *Adam[T] {
	return optim.NewAdam[T](config)
}

// NewTensorAdam creates an Adam optimizer for one tensor parameter.
func NewTensorAdam[T tensor.Float](config AdamConfig) *TensorAdam[T] {
	return optim.NewTensorAdam[T](config)
}
