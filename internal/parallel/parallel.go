// Package parallel provides the worker-splitting helper used by the
// tensor operations.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how loops are split across goroutines.
type Config struct {
	Enabled      bool // Whether to split at all.
	NumWorkers   int  // Goroutines to spread the range over.
	MinChunkSize int  // Smallest per-goroutine range worth the spawn cost.
}

// DefaultConfig returns settings based on the CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		// Elementwise loop bodies are a handful of flops; below ~1k
		// elements the goroutine handoff costs more than the loop.
		MinChunkSize: 1024,
	}
}

// For runs f(i) for every i in [0, n). The range is divided into one
// contiguous chunk per worker; ranges too small to give each worker at
// least MinChunkSize elements run on fewer workers, or inline.
// f must be safe to call from multiple goroutines for distinct i.
func For(n int, f func(i int), cfg Config) {
	if n <= 0 {
		return
	}

	workers := cfg.NumWorkers
	if cfg.MinChunkSize > 0 && workers > n/cfg.MinChunkSize {
		workers = n / cfg.MinChunkSize
	}
	if !cfg.Enabled || workers < 2 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(start int) {
			defer wg.Done()
			end := min(start+chunk, n)
			for i := start; i < end; i++ {
				f(i)
			}
		}(w * chunk)
	}
	wg.Wait()
}
