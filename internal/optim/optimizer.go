// Package optim implements the update rules invoked from a weight
// layer's backward pass.
//
// An Optimizer receives the current parameter value and the gradient
// pushed into the weight's tape, and returns the updated value. Each
// weight owns its optimizer instance, so per-parameter state (momentum,
// moment estimates) lives inside the optimizer itself.
package optim

// Optimizer computes the next value of a parameter from its current
// value and gradient.
type Optimizer[D any] interface {
	Update(value, grad D) D
}

// Float constrains the scalar parameter types the optimizers support.
type Float interface {
	~float32 | ~float64
}
