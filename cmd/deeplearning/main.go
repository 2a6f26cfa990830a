// Package main provides the DeepLearning.Two CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"k8s.io/klog/v2"

	"github.com/mybuilderpal/DeepLearning.Two/internal/layer"
	"github.com/mybuilderpal/DeepLearning.Two/internal/nn"
	"github.com/mybuilderpal/DeepLearning.Two/internal/optim"
	"github.com/mybuilderpal/DeepLearning.Two/internal/train"
)

const version = "v0.1.0-dev"

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	switch flag.Arg(0) {
	case "", "help":
		usage()
	case "version":
		fmt.Printf("DeepLearning.Two %s\n", version)
	case "demo":
		runDemo()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", flag.Arg(0))
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("DeepLearning.Two - differentiable computation trees for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Fit y = a*x + b on synthetic data")
	fmt.Println("  help       Show this help")
	fmt.Println("")
	fmt.Println("Logging flags (-v, -logtostderr, ...) follow klog conventions.")
}

// runDemo trains the two weights of y = a*x + b toward the line
// y = 3x - 1 and reports the fitted parameters.
func runDemo() {
	sgd := optim.SGDConfig{LR: 0.01, Momentum: 0.9}
	a := nn.NewWeight("a", 0.0, optim.NewSGD[float64](sgd))
	b := nn.NewWeight("b", 0.0, optim.NewSGD[float64](sgd))

	model := nn.Plus[float64]{
		Left: nn.Times[float64]{
			Left:  layer.Identity[float64, float64]{},
			Right: a,
		},
		Right: b,
	}

	samples := make([]train.Sample[float64], 0, 21)
	for x := -1.0; x <= 1.0; x += 0.1 {
		samples = append(samples, train.Sample[float64]{Input: x, Target: 3*x - 1})
	}

	loss := train.Run[float64](model, samples, train.Config{Epochs: 200, Progress: true})
	klog.Infof("final mean loss: %g", loss)
	fmt.Printf("fitted: y = %.4f*x + %.4f (want y = 3x - 1)\n", a.Value(), b.Value())
}
