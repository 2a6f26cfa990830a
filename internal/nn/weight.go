package nn

import (
	"github.com/mybuilderpal/DeepLearning.Two/internal/optim"
	"github.com/mybuilderpal/DeepLearning.Two/internal/tape"
)

// Weight is an updatable scalar parameter.
//
// Its tape is always trainable; a delta pushed into it is handed to the
// weight's optimizer, which immediately produces the next parameter
// value. Weight is the one layer with mutable state, and that state only
// changes inside the backward pass. Each Backward call applies one
// optimizer step, so a graph that legitimately pushes several deltas into
// the same weight performs several updates.
type Weight[T Float] struct {
	name      string
	value     T
	optimizer optim.Optimizer[T]
}

// NewWeight creates a named weight with an initial value and the
// optimizer that will consume its gradients.
func NewWeight[T Float](name string, initial T, optimizer optim.Optimizer[T]) *Weight[T] {
	return &Weight[T]{
		name:      name,
		value:     initial,
		optimizer: optimizer,
	}
}

// Name returns the weight's name, used for checkpoints and reporting.
func (w *Weight[T]) Name() string {
	return w.name
}

// Value returns the current parameter value.
func (w *Weight[T]) Value() T {
	return w.value
}

// SetValue overwrites the parameter, used when restoring a checkpoint.
func (w *Weight[T]) SetValue(v T) {
	w.value = v
}

// Forward ignores the input and exposes the current parameter value.
func (w *Weight[T]) Forward(tape.Tape[T, T]) tape.Tape[T, T] {
	return tape.New[T, T](
		w.value,
		true,
		func(delta T) {
			w.value = w.optimizer.Update(w.value, delta)
		},
		nil,
	)
}
