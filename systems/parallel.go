package systems

import (
	"runtime"
	"sync"
)

// defaultParallelThreshold is the minimum dot count to split a pass across goroutines.
// Below this, single-threaded is faster due to goroutine overhead.
const defaultParallelThreshold = 64

// Parallelism controls how the O(n²) passes are split into chunks.
// The zero value runs every pass on the calling goroutine.
type Parallelism struct {
	Enabled   bool
	Threshold int // minimum dot count; 0 uses defaultParallelThreshold
	Workers   int // 0 uses GOMAXPROCS
}

// forEachChunk calls fn over contiguous [start, end) ranges covering [0, n).
// Chunks write disjoint index ranges, so fn needs no locking as long as it only
// writes to its own range and reads shared state.
func (p Parallelism) forEachChunk(n int, fn func(start, end int)) {
	threshold := p.Threshold
	if threshold <= 0 {
		threshold = defaultParallelThreshold
	}
	if !p.Enabled || n < threshold {
		fn(0, n)
		return
	}

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
