package nn

import "github.com/mybuilderpal/DeepLearning.Two/internal/tape"

// Input wraps a caller-supplied scalar in a trainable tape. Deltas that
// reach it are accumulated into *grad, which is how a caller observes
// the gradient of the whole tree with respect to its input.
func Input[T Float](value T, grad *T) tape.Tape[T, T] {
	return tape.New[T, T](
		value,
		true,
		func(delta T) { *grad += delta },
		nil,
	)
}
