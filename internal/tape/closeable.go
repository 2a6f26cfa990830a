package tape

import "sync/atomic"

// debugChecks gates the protocol-violation diagnostics (use after close,
// double close, leaked handles). Off by default so production code pays a
// single boolean load per operation.
var debugChecks atomic.Bool

// SetDebug enables or disables tape protocol diagnostics and returns the
// previous setting. Tests enable it to surface protocol violations as
// panics; with diagnostics off, misuse of the close protocol is undefined
// behavior.
func SetDebug(on bool) bool {
	return debugChecks.Swap(on)
}

// Debug reports whether tape protocol diagnostics are enabled.
func Debug() bool {
	return debugChecks.Load()
}

// CloseableOnce is a disposal guard for resources that must be closed
// exactly once. It is meant to be embedded in any Tape implementation.
//
// The zero value is an open guard. The guard is not safe for concurrent
// use; a handle has a single owner by protocol and concurrent owners must
// go through Duplicate instead of sharing a handle.
type CloseableOnce struct {
	closed bool
}

// Closed reports whether MarkClosed has been called.
func (c *CloseableOnce) Closed() bool {
	return c.closed
}

// MarkClosed records disposal and reports whether this was the first
// close. Closing twice is a protocol violation: it panics when debug
// diagnostics are enabled and returns false otherwise.
func (c *CloseableOnce) MarkClosed() bool {
	if c.closed {
		if debugChecks.Load() {
			panic("tape: Close called on an already closed handle")
		}
		return false
	}
	c.closed = true
	return true
}

// AssertOpen panics when the guard was already closed and debug
// diagnostics are enabled. op names the offending operation.
func (c *CloseableOnce) AssertOpen(op string) {
	if c.closed && debugChecks.Load() {
		panic("tape: " + op + " called after Close")
	}
}
