// Package tape implements the intermediate results of a differentiable
// computation and the resource discipline attached to them.
//
// A Tape is produced by a single forward pass of a layer. It carries the
// computed value, the trainability of the computation that produced it,
// and a closure that knows how to translate an output delta into partial
// derivatives for each upstream tape.
//
// Architecture:
//   - Tape[D, G]: one independently closable handle, parameterized by the
//     forward value type D and the delta (gradient) type G
//   - Handles share a reference-counted core; Duplicate creates a second
//     owner, the last Close releases the upstream tapes
//   - CloseableOnce: disposal guard embedded in every handle; misuse is a
//     debug-only fault, see SetDebug
//
// Usage:
//
//	out := root.Forward(in)
//	loss := out.Value()
//	out.Backward(func() float64 { return loss - target })
//	out.Close()
package tape
