package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mybuilderpal/DeepLearning.Two/internal/layer"
	"github.com/mybuilderpal/DeepLearning.Two/internal/nn"
	"github.com/mybuilderpal/DeepLearning.Two/internal/optim"
	"github.com/mybuilderpal/DeepLearning.Two/internal/tape"
)

func enableDebug(t *testing.T) {
	t.Helper()
	prev := tape.SetDebug(true)
	t.Cleanup(func() { tape.SetDebug(prev) })
}

// TestExpressionTree_EndToEnd runs the full protocol on
// (1 + x) * w with x = 3, w = 2 and a seed delta of 1:
//
//	value                  = (1+3)*2 = 8
//	d/dx                   = w       = 2
//	d/dw                   = 1+x     = 4, so SGD moves w to 2 - lr*4
func TestExpressionTree_EndToEnd(t *testing.T) {
	enableDebug(t)

	const lr = 0.1
	w := nn.NewWeight("w", 2.0, optim.NewSGD[float64](optim.SGDConfig{LR: lr}))

	model := nn.Times[float64]{
		Left: nn.Plus[float64]{
			Left:  nn.Literal[float64]{Value: 1.0},
			Right: layer.Identity[float64, float64]{},
		},
		Right: w,
	}

	var inputGrad float64
	in := nn.Input(3.0, &inputGrad)
	out := model.Forward(in)

	require.Equal(t, 8.0, out.Value())
	require.True(t, out.IsTrainable())

	out.Backward(func() float64 { return 1.0 })

	assert.InDelta(t, 2.0, inputGrad, 1e-12, "input gradient should equal the weight value")
	assert.InDelta(t, 2.0-lr*4.0, w.Value(), 1e-12, "weight should move against its gradient")

	out.Close()
	in.Close()
}

// TestLiteral_NeverEvaluatesDeltas tests the trainability short-circuit
// across a whole frozen subtree.
func TestLiteral_NeverEvaluatesDeltas(t *testing.T) {
	model := nn.Times[float64]{
		Left:  nn.Literal[float64]{Value: 2.0},
		Right: nn.Plus[float64]{Left: nn.Literal[float64]{Value: 3.0}, Right: nn.Literal[float64]{Value: 4.0}},
	}

	in := tape.NewLiteral[float64, float64](0.0)
	defer in.Close()
	out := model.Forward(in)
	defer out.Close()

	require.Equal(t, 14.0, out.Value())
	require.False(t, out.IsTrainable(), "a tree of constants must not be trainable")

	evaluated := false
	out.Backward(func() float64 {
		evaluated = true
		return 1.0
	})
	assert.False(t, evaluated, "delta thunk must not be evaluated for a frozen tree")
}

// TestTrainability_Propagates tests that one trainable operand makes the
// composite trainable.
func TestTrainability_Propagates(t *testing.T) {
	w := nn.NewWeight("w", 1.0, optim.NewSGD[float64](optim.SGDConfig{}))
	model := nn.Plus[float64]{
		Left:  nn.Literal[float64]{Value: 1.0},
		Right: w,
	}

	in := tape.NewLiteral[float64, float64](0.0)
	defer in.Close()
	out := model.Forward(in)
	defer out.Close()

	assert.True(t, out.IsTrainable())
}

// TestNegative_ForwardBackward tests negation.
func TestNegative_ForwardBackward(t *testing.T) {
	model := nn.Negative[float64]{Operand: layer.Identity[float64, float64]{}}

	var grad float64
	in := nn.Input(4.0, &grad)
	defer in.Close()
	out := model.Forward(in)
	defer out.Close()

	require.Equal(t, -4.0, out.Value())
	out.Backward(func() float64 { return 1.0 })
	assert.Equal(t, -1.0, grad)
}

// TestSharedSubexpression_DuplicateOwnership tests the diamond case: a
// single operand result feeding two consumers through Duplicate, each
// with its own disposal obligation and both contributing deltas.
func TestSharedSubexpression_DuplicateOwnership(t *testing.T) {
	enableDebug(t)

	// square(x) built by duplicating one operand tape instead of running
	// the operand twice.
	square := layer.Func[float64, float64, float64, float64](
		func(input tape.Tape[float64, float64]) tape.Tape[float64, float64] {
			a := input.Duplicate()
			b := a.Duplicate()
			return tape.New[float64, float64](
				a.Value()*b.Value(),
				a.IsTrainable(),
				func(delta float64) {
					a.Backward(func() float64 { return delta * b.Value() })
					b.Backward(func() float64 { return delta * a.Value() })
				},
				func() {
					a.Close()
					b.Close()
				},
			)
		})

	var grad float64
	in := nn.Input(3.0, &grad)
	out := square.Forward(in)

	require.Equal(t, 9.0, out.Value())
	out.Backward(func() float64 { return 1.0 })
	assert.InDelta(t, 6.0, grad, 1e-12, "d(x²)/dx = 2x")

	out.Close()
	in.Close()
}

// TestRepeatRuns_BitIdentical tests that building and running the same
// tree twice produces identical values and gradients.
func TestRepeatRuns_BitIdentical(t *testing.T) {
	run := func() (value, grad float64) {
		w := nn.NewWeight("w", 0.7, optim.NewSGD[float64](optim.SGDConfig{LR: 0.05}))
		model := nn.Times[float64]{
			Left:  nn.Plus[float64]{Left: nn.Literal[float64]{Value: 0.25}, Right: layer.Identity[float64, float64]{}},
			Right: w,
		}

		in := nn.Input(1.25, &grad)
		defer in.Close()
		out := model.Forward(in)
		defer out.Close()

		out.Backward(func() float64 { return 1.0 })
		return out.Value(), grad
	}

	v1, g1 := run()
	v2, g2 := run()
	assert.Equal(t, v1, v2)
	assert.Equal(t, g1, g2)
}

// TestWeight_MultipleBackwardSteps tests that each delta pushed into a
// weight applies one optimizer step.
func TestWeight_MultipleBackwardSteps(t *testing.T) {
	w := nn.NewWeight("w", 1.0, optim.NewSGD[float64](optim.SGDConfig{LR: 0.5}))

	in := tape.NewLiteral[float64, float64](0.0)
	defer in.Close()
	out := w.Forward(in)
	defer out.Close()

	out.Backward(func() float64 { return 1.0 })
	assert.InDelta(t, 0.5, w.Value(), 1e-12)

	out.Backward(func() float64 { return 1.0 })
	assert.InDelta(t, 0.0, w.Value(), 1e-12)
}
