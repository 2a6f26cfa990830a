package tape

import "sync/atomic"

// Tape is the intermediate result of a layer's forward pass.
//
// D is the type of the forward value, G the type of the delta pushed
// backward. Every Tape handle carries exactly one disposal obligation:
// whoever holds it must call Close exactly once. Duplicate is the only
// way to mint an additional, independently closable owner of the same
// underlying result.
type Tape[D, G any] interface {
	// Value returns the forward result. Calling Value after Close is a
	// protocol violation.
	Value() D

	// IsTrainable reports whether the value depends on at least one
	// updatable parameter. It is fixed at construction.
	IsTrainable() bool

	// Backward pushes a delta toward the upstream tapes. The delta is
	// passed as a thunk and is never evaluated when the tape is not
	// trainable, so frozen subtrees cost nothing during the backward
	// pass. Calling Backward after Close is a protocol violation.
	Backward(delta func() G)

	// Duplicate returns a second handle to the same underlying result.
	// Both handles expose the same value and route deltas to the same
	// upstream tapes; each must be closed by its own holder, and closing
	// one never invalidates the other.
	Duplicate() Tape[D, G]

	// Close releases this handle. The upstream tapes owned by the
	// underlying result are closed when the last handle over it is
	// closed.
	Close()
}

// core is the shared state behind one or more handles. The handle count
// is atomic so duplicated handles may live on different goroutines; the
// rest of the bookkeeping is single-owner by protocol.
type core[D, G any] struct {
	value         D
	trainable     bool
	forceBackward func(delta G)
	release       func()
	handles       atomic.Int32
}

// handle is one disposal obligation over a core.
type handle[D, G any] struct {
	CloseableOnce
	core   *core[D, G]
	leakID uint64
}

// New constructs a tape over a computed value.
//
// forceBackward receives the forced delta and must push the correct
// partial derivative to each upstream tape; it may be nil when trainable
// is false. release runs exactly once, when the last handle is closed,
// and must close every upstream tape the result owns; nil means the
// result owns nothing.
func New[D, G any](value D, trainable bool, forceBackward func(delta G), release func()) Tape[D, G] {
	c := &core[D, G]{
		value:         value,
		trainable:     trainable,
		forceBackward: forceBackward,
		release:       release,
	}
	c.handles.Store(1)
	return newHandle(c)
}

// NewLiteral constructs a non-trainable tape with no upstream. Deltas
// pushed into it are discarded without ever being evaluated.
func NewLiteral[D, G any](value D) Tape[D, G] {
	return New[D, G](value, false, nil, nil)
}

func newHandle[D, G any](c *core[D, G]) *handle[D, G] {
	h := &handle[D, G]{core: c}
	if debugChecks.Load() {
		h.leakID = trackHandle(h)
	}
	return h
}

func (h *handle[D, G]) Value() D {
	h.AssertOpen("Value")
	return h.core.value
}

func (h *handle[D, G]) IsTrainable() bool {
	return h.core.trainable
}

func (h *handle[D, G]) Backward(delta func() G) {
	h.AssertOpen("Backward")
	if !h.core.trainable {
		return
	}
	h.core.forceBackward(delta())
}

func (h *handle[D, G]) Duplicate() Tape[D, G] {
	h.AssertOpen("Duplicate")
	h.core.handles.Add(1)
	return newHandle(h.core)
}

func (h *handle[D, G]) Close() {
	if !h.MarkClosed() {
		// Double close with diagnostics off: leave the core alone rather
		// than corrupting the handle count.
		return
	}
	untrackHandle(h.leakID)
	if h.core.handles.Add(-1) == 0 && h.core.release != nil {
		h.core.release()
	}
}
