package optim

import "github.com/mybuilderpal/DeepLearning.Two/internal/tensor"

// SGDConfig holds configuration for stochastic gradient descent.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0, range: [0, 1))
}

func (c *SGDConfig) applyDefaults() {
	if c.LR == 0 {
		c.LR = 0.01
	}
}

// SGD implements stochastic gradient descent over a scalar parameter.
//
// Update rule without momentum:
//
//	value = value - lr * grad
//
// With momentum:
//
//	velocity = momentum * velocity + grad
//	value = value - lr * velocity
type SGD[T Float] struct {
	lr       T
	momentum T
	velocity T
}

// NewSGD creates an SGD optimizer for one scalar parameter.
func NewSGD[T Float](config SGDConfig) *SGD[T] {
	config.applyDefaults()
	return &SGD[T]{
		lr:       T(config.LR),
		momentum: T(config.Momentum),
	}
}

// Update applies one SGD step.
func (s *SGD[T]) Update(value, grad T) T {
	if s.momentum == 0 {
		return value - s.lr*grad
	}
	s.velocity = s.momentum*s.velocity + grad
	return value - s.lr*s.velocity
}

// TensorSGD implements stochastic gradient descent over a tensor
// parameter, with the same update rule as SGD applied element-wise.
type TensorSGD[T tensor.Float] struct {
	lr       T
	momentum T
	velocity *tensor.Tensor[T]
}

// NewTensorSGD creates an SGD optimizer for one tensor parameter.
func NewTensorSGD[T tensor.Float](config SGDConfig) *TensorSGD[T] {
	config.applyDefaults()
	return &TensorSGD[T]{
		lr:       T(config.LR),
		momentum: T(config.Momentum),
	}
}

// Update applies one SGD step. The returned tensor is freshly allocated;
// value and grad are not mutated.
func (s *TensorSGD[T]) Update(value, grad *tensor.Tensor[T]) *tensor.Tensor[T] {
	if s.momentum == 0 {
		return value.Sub(grad.Scale(s.lr))
	}
	if s.velocity == nil {
		s.velocity = grad.Clone()
	} else {
		s.velocity = s.velocity.Scale(s.momentum).Add(grad)
	}
	return value.Sub(s.velocity.Scale(s.lr))
}
