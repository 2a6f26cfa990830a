package tape

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
)

// Leak detection is best effort: it relies on the garbage collector
// noticing an unreachable handle, so a leaked tape may go unreported
// until the next collection, or forever if the program exits first.
// Callers must not depend on it for correctness; it exists so tests and
// debug runs can flag handles that were dropped without Close.

var (
	leakMu     sync.Mutex
	openByID   = map[uint64]string{}
	leakedLog  []string
	nextLeakID atomic.Uint64
)

// constructorFrame reports whether a function is part of this package's
// construction machinery (or its public facade) rather than the caller
// that built the handle. The construction paths have different depths:
// New has one frame on top of newHandle, NewLiteral two, and the facade
// wrappers add another, so leak sites are attributed by walking the
// stack instead of a fixed skip count.
func constructorFrame(fn string) bool {
	return strings.Contains(fn, "/internal/tape.") ||
		strings.Contains(fn, "DeepLearning.Two/tape.")
}

// trackHandle registers a newly built handle with the leak registry and
// arranges a cleanup that fires if the handle becomes unreachable while
// still registered. Only called when diagnostics are enabled.
func trackHandle[D, G any](h *handle[D, G]) uint64 {
	id := nextLeakID.Add(1)

	site := "unknown"
	var pcs [8]uintptr
	// 2 skips runtime.Callers and trackHandle itself.
	frames := runtime.CallersFrames(pcs[:runtime.Callers(2, pcs[:])])
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !constructorFrame(frame.Function) {
			site = fmt.Sprintf("%s:%d", frame.File, frame.Line)
			break
		}
		if !more {
			break
		}
	}

	leakMu.Lock()
	openByID[id] = site
	leakMu.Unlock()
	runtime.AddCleanup(h, handleUnreachable, id)
	return id
}

// untrackHandle removes a properly closed handle from the registry.
func untrackHandle(id uint64) {
	if id == 0 {
		return
	}
	leakMu.Lock()
	delete(openByID, id)
	leakMu.Unlock()
}

// handleUnreachable runs from the runtime's cleanup goroutine once a
// handle became unreachable. A handle still in the registry at that
// point was never closed.
func handleUnreachable(id uint64) {
	leakMu.Lock()
	defer leakMu.Unlock()
	site, open := openByID[id]
	if !open {
		return
	}
	delete(openByID, id)
	leakedLog = append(leakedLog, site)
}

// OpenHandles returns the number of registered handles that have not
// been closed yet. Handles built while diagnostics were disabled are not
// counted.
func OpenHandles() int {
	leakMu.Lock()
	defer leakMu.Unlock()
	return len(openByID)
}

// TakeLeaks drains and returns the construction sites of handles that
// were collected without being closed.
func TakeLeaks() []string {
	leakMu.Lock()
	defer leakMu.Unlock()
	leaks := leakedLog
	leakedLog = nil
	return leaks
}
