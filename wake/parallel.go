package wake

import (
	"runtime"
	"sync"
)

// parallelFor splits [0, n) into contiguous chunks, one per worker, and
// runs f on each concurrently. Used only for per-particle work with
// independent writes, so the result is identical to the sequential loop.
func parallelFor(n int, f func(lo, hi int)) {
	workers := runtime.NumCPU()
	if workers > n { workers = n }
	if workers <= 1 {
		f(0, n)
		return
	}

	wg := sync.WaitGroup{}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		lo := w * n / workers
		hi := (w + 1) * n / workers
		go func(lo, hi int) {
			f(lo, hi)
			wg.Done()
		}(lo, hi)
	}
	wg.Wait()
}
