// Package layer defines the node abstraction of the computation tree.
//
// A Layer is a pure description of one computation step. The tree of
// layers is assembled once and executed many times: each Forward call
// walks the tree top down and produces an isomorphic tree of tapes, which
// the caller then reads, backpropagates through, and closes.
//
// Ownership protocol:
//   - Forward borrows its input tape for the duration of the call. A
//     layer that needs the input alive for its backward pass takes its
//     own owner via input.Duplicate().
//   - The returned tape is owned by the caller. A composite layer's tape
//     owns the operand tapes it was built from and closes them in its
//     release closure.
//
// The four type parameters thread the concrete Data/Delta types of the
// input and output tapes through the composition, so heterogeneous trees
// type-check without losing static knowledge of each node's types.
package layer

import "github.com/mybuilderpal/DeepLearning.Two/internal/tape"

// Layer is one node of a differentiable computation tree.
//
// DI/GI are the input tape's value and delta types, DO/GO the output
// tape's. Forward must be deterministic and free of per-call mutable
// state: running the same tree twice with the same input produces
// identical results.
type Layer[DI, GI, DO, GO any] interface {
	Forward(input tape.Tape[DI, GI]) tape.Tape[DO, GO]
}

// Func adapts a plain function to a Layer.
type Func[DI, GI, DO, GO any] func(input tape.Tape[DI, GI]) tape.Tape[DO, GO]

// Forward calls f.
func (f Func[DI, GI, DO, GO]) Forward(input tape.Tape[DI, GI]) tape.Tape[DO, GO] {
	return f(input)
}

// Identity passes its input through unchanged. Deltas pushed into the
// returned tape flow directly to the input tape, which makes Identity the
// leaf through which a tree reads the caller's input.
type Identity[D, G any] struct{}

// Forward returns an independently owned handle over the input.
func (Identity[D, G]) Forward(input tape.Tape[D, G]) tape.Tape[D, G] {
	return input.Duplicate()
}

// Compose chains two layers: the output of first feeds second. The
// interior tape is closed before Forward returns; second keeps whatever
// it needs alive through its own duplicates.
func Compose[DI, GI, DM, GM, DO, GO any](
	first Layer[DI, GI, DM, GM],
	second Layer[DM, GM, DO, GO],
) Layer[DI, GI, DO, GO] {
	return composed[DI, GI, DM, GM, DO, GO]{first: first, second: second}
}

type composed[DI, GI, DM, GM, DO, GO any] struct {
	first  Layer[DI, GI, DM, GM]
	second Layer[DM, GM, DO, GO]
}

func (c composed[DI, GI, DM, GM, DO, GO]) Forward(input tape.Tape[DI, GI]) tape.Tape[DO, GO] {
	mid := c.first.Forward(input)
	defer mid.Close()
	return c.second.Forward(mid)
}
