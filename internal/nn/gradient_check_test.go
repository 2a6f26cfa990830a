package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mybuilderpal/DeepLearning.Two/internal/layer"
	"github.com/mybuilderpal/DeepLearning.Two/internal/nn"
)

// gradRecorder is an optimizer that records gradients without touching
// the parameter, so autodiff gradients can be compared against finite
// differences.
type gradRecorder struct {
	grads []float64
}

func (g *gradRecorder) Update(value, grad float64) float64 {
	g.grads = append(g.grads, grad)
	return value
}

// numericalGradient computes df/dx via central finite differences.
func numericalGradient(f func(float64) float64, x, epsilon float64) float64 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

// evalTree runs one forward+backward pass of root at x and returns the
// output value and the input gradient.
func evalTree(root nn.ScalarLayer[float64], x float64) (value, grad float64) {
	in := nn.Input(x, &grad)
	defer in.Close()
	out := root.Forward(in)
	defer out.Close()
	out.Backward(func() float64 { return 1.0 })
	return out.Value(), grad
}

// TestGradientCheck_InputGradient compares the autodiff input gradient
// of f(x) = (x*x + 0.5) * w against finite differences.
func TestGradientCheck_InputGradient(t *testing.T) {
	const wInit = 1.75
	rec := &gradRecorder{}
	w := nn.NewWeight("w", wInit, rec)

	ident := layer.Identity[float64, float64]{}
	root := nn.Times[float64]{
		Left: nn.Plus[float64]{
			Left:  nn.Times[float64]{Left: ident, Right: ident},
			Right: nn.Literal[float64]{Value: 0.5},
		},
		Right: w,
	}

	f := func(x float64) float64 { return (x*x + 0.5) * wInit }

	for _, x := range []float64{-2.0, -0.3, 0.0, 0.7, 1.9} {
		value, grad := evalTree(root, x)
		assert.InDelta(t, f(x), value, 1e-12, "forward value at x=%v", x)
		assert.InDelta(t, numericalGradient(f, x, 1e-6), grad, 1e-5,
			"input gradient at x=%v", x)
	}
}

// TestGradientCheck_WeightGradient compares the gradient delivered to
// the weight of f(x) = (x + 1) * w against finite differences over w.
func TestGradientCheck_WeightGradient(t *testing.T) {
	const x = 2.5

	fOfW := func(w float64) float64 { return (x + 1) * w }

	rec := &gradRecorder{}
	w := nn.NewWeight("w", 0.4, rec)
	root := nn.Times[float64]{
		Left: nn.Plus[float64]{
			Left:  layer.Identity[float64, float64]{},
			Right: nn.Literal[float64]{Value: 1.0},
		},
		Right: w,
	}

	_, _ = evalTree(root, x)

	assert.Len(t, rec.grads, 1, "exactly one backward call must reach the weight")
	assert.InDelta(t, numericalGradient(fOfW, 0.4, 1e-6), rec.grads[0], 1e-5)
}
