// Package nn provides the concrete differentiable layers built on top of
// the layer/tape protocol.
//
// Scalar layers (Literal, Plus, Times, Negative, Weight) operate on a
// single float value and exist mostly for small expression trees and for
// exercising the protocol; tensor layers (TensorWeight, TensorPlus, Dot)
// carry dense tensors and are enough to assemble small trainable models.
//
// Every layer follows the same ownership discipline: Forward borrows its
// input, the returned tape owns the operand tapes it was built from, and
// a weight's tape applies its optimizer inside the backward pass.
package nn

// Float constrains the scalar element types the layers support.
type Float interface {
	~float32 | ~float64
}
