package parallel_test

import (
	"sync/atomic"
	"testing"

	"github.com/mybuilderpal/DeepLearning.Two/internal/parallel"
)

// TestFor_Sequential tests the small-range fallback.
func TestFor_Sequential(t *testing.T) {
	cfg := parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1024}

	visited := make([]bool, 100)
	parallel.For(100, func(i int) { visited[i] = true }, cfg)

	for i, ok := range visited {
		if !ok {
			t.Fatalf("index %d not visited", i)
		}
	}
}

// TestFor_Parallel tests that every index is visited exactly once when
// the range is split across workers.
func TestFor_Parallel(t *testing.T) {
	const n = 10000
	cfg := parallel.Config{Enabled: true, NumWorkers: 8, MinChunkSize: 64}

	counts := make([]atomic.Int32, n)
	parallel.For(n, func(i int) { counts[i].Add(1) }, cfg)

	for i := range counts {
		if got := counts[i].Load(); got != 1 {
			t.Fatalf("index %d visited %d times", i, got)
		}
	}
}

// TestFor_Disabled tests that disabling parallelism still covers the
// range.
func TestFor_Disabled(t *testing.T) {
	cfg := parallel.Config{Enabled: false}

	total := 0
	parallel.For(10, func(i int) { total += i }, cfg)
	if total != 45 {
		t.Errorf("sum = %d, want 45", total)
	}
}

// TestFor_Empty tests the zero-length range.
func TestFor_Empty(t *testing.T) {
	parallel.For(0, func(int) { t.Fatal("callback invoked for empty range") }, parallel.DefaultConfig())
}
