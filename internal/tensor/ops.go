package tensor

import (
	"fmt"
	"math"

	"github.com/mybuilderpal/DeepLearning.Two/internal/parallel"
)

// loopCfg is shared by all elementwise loops. Tensors in this engine are
// small to medium; the chunk threshold keeps goroutine overhead out of
// the scalar and toy-model paths.
var loopCfg = parallel.DefaultConfig()

func (t *Tensor[T]) assertSameShape(op string, other *Tensor[T]) {
	if !t.shape.Equal(other.shape) {
		panic(fmt.Sprintf("tensor: %s with mismatched shapes %s and %s", op, t.shape, other.shape))
	}
}

func (t *Tensor[T]) emptyLike() *Tensor[T] {
	return &Tensor[T]{shape: t.shape.Clone(), data: make([]T, len(t.data))}
}

// Add returns t + other element-wise.
func (t *Tensor[T]) Add(other *Tensor[T]) *Tensor[T] {
	t.assertSameShape("Add", other)
	out := t.emptyLike()
	parallel.For(len(out.data), func(i int) {
		out.data[i] = t.data[i] + other.data[i]
	}, loopCfg)
	return out
}

// Sub returns t - other element-wise.
func (t *Tensor[T]) Sub(other *Tensor[T]) *Tensor[T] {
	t.assertSameShape("Sub", other)
	out := t.emptyLike()
	parallel.For(len(out.data), func(i int) {
		out.data[i] = t.data[i] - other.data[i]
	}, loopCfg)
	return out
}

// Mul returns the element-wise (Hadamard) product.
func (t *Tensor[T]) Mul(other *Tensor[T]) *Tensor[T] {
	t.assertSameShape("Mul", other)
	out := t.emptyLike()
	parallel.For(len(out.data), func(i int) {
		out.data[i] = t.data[i] * other.data[i]
	}, loopCfg)
	return out
}

// Div returns t / other element-wise.
func (t *Tensor[T]) Div(other *Tensor[T]) *Tensor[T] {
	t.assertSameShape("Div", other)
	out := t.emptyLike()
	parallel.For(len(out.data), func(i int) {
		out.data[i] = t.data[i] / other.data[i]
	}, loopCfg)
	return out
}

// Scale returns t with every element multiplied by factor.
func (t *Tensor[T]) Scale(factor T) *Tensor[T] {
	out := t.emptyLike()
	parallel.For(len(out.data), func(i int) {
		out.data[i] = t.data[i] * factor
	}, loopCfg)
	return out
}

// AddScalar returns t with s added to every element.
func (t *Tensor[T]) AddScalar(s T) *Tensor[T] {
	out := t.emptyLike()
	parallel.For(len(out.data), func(i int) {
		out.data[i] = t.data[i] + s
	}, loopCfg)
	return out
}

// Neg returns -t.
func (t *Tensor[T]) Neg() *Tensor[T] {
	return t.Scale(-1)
}

// Sqrt returns the element-wise square root.
func (t *Tensor[T]) Sqrt() *Tensor[T] {
	out := t.emptyLike()
	parallel.For(len(out.data), func(i int) {
		out.data[i] = T(math.Sqrt(float64(t.data[i])))
	}, loopCfg)
	return out
}

// Sum returns the sum of all elements.
func (t *Tensor[T]) Sum() T {
	var total T
	for _, v := range t.data {
		total += v
	}
	return total
}

// MatMul returns the matrix product of two rank-2 tensors:
// [m, k] @ [k, n] -> [m, n].
func (t *Tensor[T]) MatMul(other *Tensor[T]) *Tensor[T] {
	if t.shape.Rank() != 2 || other.shape.Rank() != 2 {
		panic(fmt.Sprintf("tensor: MatMul needs rank-2 operands, got %s and %s", t.shape, other.shape))
	}
	m, k := t.shape[0], t.shape[1]
	k2, n := other.shape[0], other.shape[1]
	if k != k2 {
		panic(fmt.Sprintf("tensor: MatMul inner dimensions differ: %s @ %s", t.shape, other.shape))
	}

	out := &Tensor[T]{shape: Shape{m, n}, data: make([]T, m*n)}
	parallel.For(m, func(row int) {
		for col := 0; col < n; col++ {
			var acc T
			for i := 0; i < k; i++ {
				acc += t.data[row*k+i] * other.data[i*n+col]
			}
			out.data[row*n+col] = acc
		}
	}, loopCfg)
	return out
}

// Transpose returns the transpose of a rank-2 tensor.
func (t *Tensor[T]) Transpose() *Tensor[T] {
	if t.shape.Rank() != 2 {
		panic(fmt.Sprintf("tensor: Transpose needs a rank-2 tensor, got %s", t.shape))
	}
	rows, cols := t.shape[0], t.shape[1]
	out := &Tensor[T]{shape: Shape{cols, rows}, data: make([]T, len(t.data))}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.data[c*rows+r] = t.data[r*cols+c]
		}
	}
	return out
}

// Equal reports whether two tensors have the same shape and identical
// elements.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i, v := range t.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}
