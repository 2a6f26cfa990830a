// Copyright 2026 The DeepLearning.Two Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layer provides the public API for computation-tree nodes.
//
// A Layer is a pure description of one computation step; a tree of
// layers is built once and executed many times. Forward borrows its
// input tape and returns a tape owned by the caller.
//
// Example:
//
//	model := nn.Times[float64]{
//	    Left:  nn.Plus[float64]{Left: nn.Literal[float64]{Value: 1}, Right: layer.Identity[float64, float64]{}},
//	    Right: nn.NewWeight("w", 2.0, optim.NewSGD[float64](optim.SGDConfig{LR: 0.1})),
//	}
package layer

import "github.com/mybuilderpal/DeepLearning.Two/internal/layer"

// Layer is one node of a differentiable computation tree.
type Layer[DI, GI, DO, GO any] = layer.Layer[DI, GI, DO, GO]

// Func adapts a plain function to a Layer.
type Func[DI, GI, DO, GO any] = layer.Func[DI, GI, DO, GO]

// Identity passes its input through unchanged.
type Identity[D, G any] = layer.Identity[D, G]

// Compose chains two layers: the output of first feeds second.
func Compose[DI, GI, DM, GM, DO, GO any](
	first Layer[DI, GI, DM, GM],
	second Layer[DM, GM, DO, GO],
) Layer[DI, GI, DO, GO] {
	return layer.Compose(first, second)
}
