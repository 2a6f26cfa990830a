package nn

import (
	"github.com/mybuilderpal/DeepLearning.Two/internal/layer"
	"github.com/mybuilderpal/DeepLearning.Two/internal/tape"
)

// ScalarLayer is a layer whose input and output tapes both carry a
// single float value with a float delta.
type ScalarLayer[T Float] = layer.Layer[T, T, T, T]

// Literal produces a constant. Its tape is not trainable, so deltas
// pushed into it are discarded without being evaluated.
type Literal[T Float] struct {
	Value T
}

// Forward ignores the input and returns a fresh constant tape.
func (l Literal[T]) Forward(tape.Tape[T, T]) tape.Tape[T, T] {
	return tape.NewLiteral[T, T](l.Value)
}

// Plus adds the outputs of its two operand layers.
//
// Backward: d(a+b)/da = d(a+b)/db = 1, so the delta flows unchanged to
// both operands.
type Plus[T Float] struct {
	Left, Right ScalarLayer[T]
}

func (l Plus[T]) Forward(input tape.Tape[T, T]) tape.Tape[T, T] {
	left := l.Left.Forward(input)
	right := l.Right.Forward(input)
	return tape.New[T, T](
		left.Value()+right.Value(),
		left.IsTrainable() || right.IsTrainable(),
		func(delta T) {
			left.Backward(func() T { return delta })
			right.Backward(func() T { return delta })
		},
		func() {
			left.Close()
			right.Close()
		},
	)
}

// Times multiplies the outputs of its two operand layers.
//
// Backward: d(a*b)/da = b and d(a*b)/db = a, so each operand receives
// the delta scaled by the other operand's forward value. The scaling
// happens inside the delta thunks, so a frozen operand never pays for
// it.
type Times[T Float] struct {
	Left, Right ScalarLayer[T]
}

func (l Times[T]) Forward(input tape.Tape[T, T]) tape.Tape[T, T] {
	left := l.Left.Forward(input)
	right := l.Right.Forward(input)
	return tape.New[T, T](
		left.Value()*right.Value(),
		left.IsTrainable() || right.IsTrainable(),
		func(delta T) {
			left.Backward(func() T { return delta * right.Value() })
			right.Backward(func() T { return delta * left.Value() })
		},
		func() {
			left.Close()
			right.Close()
		},
	)
}

// Negative negates the output of its operand layer.
type Negative[T Float] struct {
	Operand ScalarLayer[T]
}

func (l Negative[T]) Forward(input tape.Tape[T, T]) tape.Tape[T, T] {
	operand := l.Operand.Forward(input)
	return tape.New[T, T](
		-operand.Value(),
		operand.IsTrainable(),
		func(delta T) {
			operand.Backward(func() T { return -delta })
		},
		operand.Close,
	)
}
