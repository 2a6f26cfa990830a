// Package train drives the per-iteration protocol of the engine: wrap an
// input in a tape, run the layer tree forward, seed the backward pass
// from the loss, and close every tape the loop created.
package train

import (
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/mybuilderpal/DeepLearning.Two/internal/nn"
	"github.com/mybuilderpal/DeepLearning.Two/internal/tape"
)

// Sample is one scalar training example.
type Sample[T nn.Float] struct {
	Input  T
	Target T
}

// Config controls a training run.
type Config struct {
	Epochs   int  // Passes over the sample set (default: 1)
	Progress bool // Render an interactive progress bar
}

// Step runs one forward/backward iteration of root on a single sample
// and returns the prediction and the squared-error loss. Weight updates
// happen inside the backward pass, driven by each weight's optimizer.
func Step[T nn.Float](root nn.ScalarLayer[T], input, target T) (prediction, loss T) {
	in := tape.NewLiteral[T, T](input)
	defer in.Close()

	out := root.Forward(in)
	defer out.Close()

	prediction = out.Value()
	diff := prediction - target
	loss = diff * diff / 2

	// Seed delta: d(loss)/d(prediction) = prediction - target.
	out.Backward(func() T { return diff })
	return prediction, loss
}

// Run trains root over samples for the configured number of epochs and
// returns the mean loss of the final epoch.
func Run[T nn.Float](root nn.ScalarLayer[T], samples []Sample[T], config Config) T {
	if config.Epochs <= 0 {
		config.Epochs = 1
	}
	if len(samples) == 0 {
		return 0
	}

	var bar *progressbar.ProgressBar
	if config.Progress {
		bar = progressbar.Default(int64(config.Epochs), "training")
	}

	var meanLoss T
	for epoch := 0; epoch < config.Epochs; epoch++ {
		var total T
		for _, sample := range samples {
			_, loss := Step(root, sample.Input, sample.Target)
			total += loss
		}
		meanLoss = total / T(len(samples))
		klog.V(1).Infof("epoch %d/%d: mean loss %v", epoch+1, config.Epochs, meanLoss)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return meanLoss
}
