package nn

import (
	"github.com/mybuilderpal/DeepLearning.Two/internal/layer"
	"github.com/mybuilderpal/DeepLearning.Two/internal/optim"
	"github.com/mybuilderpal/DeepLearning.Two/internal/tape"
	"github.com/mybuilderpal/DeepLearning.Two/internal/tensor"
)

// TensorLayer is a layer whose input and output tapes both carry a
// dense tensor with a tensor delta of the same element type.
type TensorLayer[T tensor.Float] = layer.Layer[*tensor.Tensor[T], *tensor.Tensor[T], *tensor.Tensor[T], *tensor.Tensor[T]]

// TensorLiteral produces a constant tensor.
type TensorLiteral[T tensor.Float] struct {
	Value *tensor.Tensor[T]
}

func (l TensorLiteral[T]) Forward(tape.Tape[*tensor.Tensor[T], *tensor.Tensor[T]]) tape.Tape[*tensor.Tensor[T], *tensor.Tensor[T]] {
	return tape.NewLiteral[*tensor.Tensor[T], *tensor.Tensor[T]](l.Value)
}

// TensorWeight is an updatable tensor parameter.
type TensorWeight[T tensor.Float] struct {
	name      string
	value     *tensor.Tensor[T]
	optimizer optim.Optimizer[*tensor.Tensor[T]]
}

// NewTensorWeight creates a named tensor weight.
func NewTensorWeight[T tensor.Float](name string, initial *tensor.Tensor[T], optimizer optim.Optimizer[*tensor.Tensor[T]]) *TensorWeight[T] {
	return &TensorWeight[T]{
		name:      name,
		value:     initial,
		optimizer: optimizer,
	}
}

// Name returns the weight's name.
func (w *TensorWeight[T]) Name() string {
	return w.name
}

// Value returns the current parameter tensor.
func (w *TensorWeight[T]) Value() *tensor.Tensor[T] {
	return w.value
}

// SetValue overwrites the parameter, used when restoring a checkpoint.
func (w *TensorWeight[T]) SetValue(v *tensor.Tensor[T]) {
	w.value = v
}

// Forward ignores the input and exposes the current parameter tensor.
func (w *TensorWeight[T]) Forward(tape.Tape[*tensor.Tensor[T], *tensor.Tensor[T]]) tape.Tape[*tensor.Tensor[T], *tensor.Tensor[T]] {
	return tape.New[*tensor.Tensor[T], *tensor.Tensor[T]](
		w.value,
		true,
		func(delta *tensor.Tensor[T]) {
			w.value = w.optimizer.Update(w.value, delta)
		},
		nil,
	)
}

// TensorPlus adds the outputs of its two operand layers element-wise.
type TensorPlus[T tensor.Float] struct {
	Left, Right TensorLayer[T]
}

func (l TensorPlus[T]) Forward(input tape.Tape[*tensor.Tensor[T], *tensor.Tensor[T]]) tape.Tape[*tensor.Tensor[T], *tensor.Tensor[T]] {
	left := l.Left.Forward(input)
	right := l.Right.Forward(input)
	return tape.New[*tensor.Tensor[T], *tensor.Tensor[T]](
		left.Value().Add(right.Value()),
		left.IsTrainable() || right.IsTrainable(),
		func(delta *tensor.Tensor[T]) {
			left.Backward(func() *tensor.Tensor[T] { return delta })
			right.Backward(func() *tensor.Tensor[T] { return delta })
		},
		func() {
			left.Close()
			right.Close()
		},
	)
}

// Dot multiplies the outputs of its two operand layers as matrices:
// output = left @ right.
//
// Backward:
//
//	dL/dleft  = delta @ rightᵀ
//	dL/dright = leftᵀ @ delta
type Dot[T tensor.Float] struct {
	Left, Right TensorLayer[T]
}

func (l Dot[T]) Forward(input tape.Tape[*tensor.Tensor[T], *tensor.Tensor[T]]) tape.Tape[*tensor.Tensor[T], *tensor.Tensor[T]] {
	left := l.Left.Forward(input)
	right := l.Right.Forward(input)
	return tape.New[*tensor.Tensor[T], *tensor.Tensor[T]](
		left.Value().MatMul(right.Value()),
		left.IsTrainable() || right.IsTrainable(),
		func(delta *tensor.Tensor[T]) {
			left.Backward(func() *tensor.Tensor[T] {
				return delta.MatMul(right.Value().Transpose())
			})
			right.Backward(func() *tensor.Tensor[T] {
				return left.Value().Transpose().MatMul(delta)
			})
		},
		func() {
			left.Close()
			right.Close()
		},
	)
}
