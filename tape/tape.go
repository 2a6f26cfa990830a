// Copyright 2026 The DeepLearning.Two Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tape provides the public API for intermediate results of a
// differentiable computation.
//
// A Tape carries the forward value of one layer invocation plus the
// machinery to push a gradient back to the tapes it was computed from.
// Every handle must be closed exactly once; Duplicate mints additional
// independently closable handles over the same result.
//
// Example:
//
//	in := tape.NewLiteral[float64, float64](3.0)
//	defer in.Close()
//
//	out := root.Forward(in)
//	defer out.Close()
//
//	fmt.Println(out.Value())
//	out.Backward(func() float64 { return 1.0 })
package tape

import "github.com/mybuilderpal/DeepLearning.Two/internal/tape"

// Tape is one independently closable handle over an intermediate result.
type Tape[D, G any] = tape.Tape[D, G]

// CloseableOnce is the disposal guard embedded in tape implementations.
type CloseableOnce = tape.CloseableOnce

// New constructs a tape over a computed value. forceBackward receives
// the forced delta and pushes partial derivatives to each upstream tape;
// release runs when the last handle is closed and must close every
// upstream tape the result owns. Either may be nil when unused.
func New[D, G any](value D, trainable bool, forceBackward func(delta G), release func()) Tape[D, G] {
	return tape.New(value, trainable, forceBackward, release)
}

// NewLiteral constructs a non-trainable tape with no upstream.
func NewLiteral[D, G any](value D) Tape[D, G] {
	return tape.NewLiteral[D, G](value)
}

// SetDebug toggles protocol diagnostics (use after close, double close,
// leak tracking) and returns the previous setting.
func SetDebug(on bool) bool {
	return tape.SetDebug(on)
}

// Debug reports whether protocol diagnostics are enabled.
func Debug() bool {
	return tape.Debug()
}

// OpenHandles returns the number of tracked handles not yet closed.
// Only meaningful while diagnostics are enabled.
func OpenHandles() int {
	return tape.OpenHandles()
}

// TakeLeaks drains the construction sites of handles that were garbage
// collected without being closed. Best effort; see SetDebug.
func TakeLeaks() []string {
	return tape.TakeLeaks()
}
