package train_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mybuilderpal/DeepLearning.Two/internal/layer"
	"github.com/mybuilderpal/DeepLearning.Two/internal/nn"
	"github.com/mybuilderpal/DeepLearning.Two/internal/optim"
	"github.com/mybuilderpal/DeepLearning.Two/internal/tape"
	"github.com/mybuilderpal/DeepLearning.Two/internal/train"
)

// TestStep_ForwardLossAndUpdate tests one iteration of the protocol on
// the model y = w*x.
func TestStep_ForwardLossAndUpdate(t *testing.T) {
	prev := tape.SetDebug(true)
	defer tape.SetDebug(prev)

	const lr = 0.1
	w := nn.NewWeight("w", 1.0, optim.NewSGD[float64](optim.SGDConfig{LR: lr}))
	model := nn.Times[float64]{
		Left:  layer.Identity[float64, float64]{},
		Right: w,
	}

	// x=2, target=6: prediction 2, loss (2-6)²/2 = 8.
	prediction, loss := train.Step[float64](model, 2.0, 6.0)
	assert.Equal(t, 2.0, prediction)
	assert.Equal(t, 8.0, loss)

	// dL/dw = (pred-target)*x = -8, so w moves to 1 - 0.1*(-8) = 1.8.
	assert.InDelta(t, 1.8, w.Value(), 1e-12)
}

// TestRun_FitsLinearModel tests convergence of y = w*x toward w = 2.
func TestRun_FitsLinearModel(t *testing.T) {
	w := nn.NewWeight("w", 0.0, optim.NewSGD[float64](optim.SGDConfig{LR: 0.1}))
	model := nn.Times[float64]{
		Left:  layer.Identity[float64, float64]{},
		Right: w,
	}

	samples := []train.Sample[float64]{
		{Input: -1, Target: -2},
		{Input: 0.5, Target: 1},
		{Input: 1, Target: 2},
		{Input: 2, Target: 4},
	}

	loss := train.Run[float64](model, samples, train.Config{Epochs: 100})
	assert.InDelta(t, 2.0, w.Value(), 1e-3)
	assert.Less(t, float64(loss), 1e-5)
}

// TestRun_LeavesNoOpenHandles tests that a training run closes every
// tape it creates.
func TestRun_LeavesNoOpenHandles(t *testing.T) {
	prev := tape.SetDebug(true)
	defer tape.SetDebug(prev)

	before := tape.OpenHandles()

	w := nn.NewWeight("w", 0.0, optim.NewSGD[float64](optim.SGDConfig{LR: 0.1}))
	model := nn.Plus[float64]{
		Left:  nn.Times[float64]{Left: layer.Identity[float64, float64]{}, Right: w},
		Right: nn.Literal[float64]{Value: 0.5},
	}

	samples := []train.Sample[float64]{{Input: 1, Target: 1}, {Input: 2, Target: 2}}
	train.Run[float64](model, samples, train.Config{Epochs: 3})

	require.Equal(t, before, tape.OpenHandles(), "training must close every tape it creates")
}
