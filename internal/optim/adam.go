package optim

import (
	"math"

	"github.com/mybuilderpal/DeepLearning.Two/internal/tensor"
)

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR      float64 // Learning rate (default: 0.001)
	Beta1   float64 // First-moment decay (default: 0.9)
	Beta2   float64 // Second-moment decay (default: 0.999)
	Epsilon float64 // Numerical stability term (default: 1e-8)
}

func (c *AdamConfig) applyDefaults() {
	if c.LR == 0 {
		c.LR = 0.001
	}
	if c.Beta1 == 0 {
		c.Beta1 = 0.9
	}
	if c.Beta2 == 0 {
		c.Beta2 = 0.999
	}
	if c.Epsilon == 0 {
		c.Epsilon = 1e-8
	}
}

// Adam implements the Adam optimizer over a scalar parameter.
//
// Update rule:
//
//	m = beta1 * m + (1 - beta1) * grad
//	v = beta2 * v + (1 - beta2) * grad²
//	mHat = m / (1 - beta1^t)
//	vHat = v / (1 - beta2^t)
//	value = value - lr * mHat / (sqrt(vHat) + epsilon)
type Adam[T Float] struct {
	cfg  AdamConfig
	m    float64
	v    float64
	step int
}

// NewAdam creates an Adam optimizer for one scalar parameter.
func NewAdam[T Float](config AdamConfig) *Adam[T] {
	config.applyDefaults()
	return &Adam[T]{cfg: config}
}

// Update applies one Adam step.
func (a *Adam[T]) Update(value, grad T) T {
	a.step++
	g := float64(grad)

	a.m = a.cfg.Beta1*a.m + (1-a.cfg.Beta1)*g
	a.v = a.cfg.Beta2*a.v + (1-a.cfg.Beta2)*g*g

	mHat := a.m / (1 - math.Pow(a.cfg.Beta1, float64(a.step)))
	vHat := a.v / (1 - math.Pow(a.cfg.Beta2, float64(a.step)))

	return value - T(a.cfg.LR*mHat/(math.Sqrt(vHat)+a.cfg.Epsilon))
}

// TensorAdam implements the Adam optimizer over a tensor parameter, with
// the same update rule as Adam applied element-wise. The moment buffers
// take the parameter's shape and are allocated on the first step.
type TensorAdam[T tensor.Float] struct {
	cfg  AdamConfig
	m    *tensor.Tensor[T]
	v    *tensor.Tensor[T]
	step int
}

// NewTensorAdam creates an Adam optimizer for one tensor parameter.
func NewTensorAdam[T tensor.Float](config AdamConfig) *TensorAdam[T] {
	config.applyDefaults()
	return &TensorAdam[T]{cfg: config}
}

// Update applies one Adam step. The returned tensor is freshly
// allocated; value and grad are not mutated.
func (a *TensorAdam[T]) Update(value, grad *tensor.Tensor[T]) *tensor.Tensor[T] {
	a.step++

	gradSq := grad.Mul(grad)
	if a.m == nil {
		a.m = grad.Scale(T(1 - a.cfg.Beta1))
		a.v = gradSq.Scale(T(1 - a.cfg.Beta2))
	} else {
		a.m = a.m.Scale(T(a.cfg.Beta1)).Add(grad.Scale(T(1 - a.cfg.Beta1)))
		a.v = a.v.Scale(T(a.cfg.Beta2)).Add(gradSq.Scale(T(1 - a.cfg.Beta2)))
	}

	mHat := a.m.Scale(T(1 / (1 - math.Pow(a.cfg.Beta1, float64(a.step)))))
	vHat := a.v.Scale(T(1 / (1 - math.Pow(a.cfg.Beta2, float64(a.step)))))

	step := mHat.Scale(T(a.cfg.LR)).Div(vHat.Sqrt().AddScalar(T(a.cfg.Epsilon)))
	return value.Sub(step)
}
