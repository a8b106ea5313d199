// core/partition/parallel.go
package partition

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// maxWorkersOverride caps defaultWorkers' width for every subsequent call
// in this process; 0 means "no override, use GOMAXPROCS". Package-level
// rather than threaded through every recurrence's signature, mirroring
// runtime.GOMAXPROCS's own global-tunable shape.
var maxWorkersOverride int32

// SetMaxWorkers bounds the worker-pool width every partition-function
// recurrence (NoPKFast/NoPKSlow/PKFast/PKSlow) uses for its per-length
// sweep. n<=0 restores the GOMAXPROCS-derived default. This is how
// internal/config's worker.threads setting reaches the DP engine.
func SetMaxWorkers(n int) {
	atomic.StoreInt32(&maxWorkersOverride, int32(n))
}

// parallelFor runs fn(i) for every i in [0, n) using up to workers
// goroutines, and blocks until all calls have returned. It uses a
// fixed-size worker pool draining a shared jobs channel, applied here to the
// data-parallel "outer loop over i at fixed span length l" that every
// partition-function recurrence runs once per l. Callers must only read
// state written by strictly shorter spans and only write cells indexed by
// the current (i, i+l-1): no two calls to fn race on the same cell.
func parallelFor(n int, workers int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				fn(i)
			}
		}()
	}
	wg.Wait()
}

// defaultWorkers returns a sensible worker count for a span of the given
// width: GOMAXPROCS, or the SetMaxWorkers override when one is set, capped
// by the width itself. Tiny spans aren't worth the goroutine overhead.
func defaultWorkers(width int) int {
	if width < 32 {
		return 1
	}
	n := runtime.GOMAXPROCS(0)
	if override := atomic.LoadInt32(&maxWorkersOverride); override > 0 {
		n = int(override)
	}
	if n < 1 {
		n = 1
	}
	if width < n {
		return width
	}
	return n
}
