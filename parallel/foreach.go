// Package parallel contains bounded parallel loops.
package parallel

import "sync"

// ForEach executes a for loop with a limited number of concurrent goroutines.
// Each goroutine processes one integer, from 0 to length.
func ForEach(length, limit int, body func(i int)) {
	if limit <= 0 {
		limit = 1
	}
	if length <= 0 {
		return
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	wg.Add(length)

	for i := 0; i < length; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			body(i)
		}(i)
	}

	wg.Wait()
}

// Chunks splits [0, length) into at most workers contiguous ranges and runs
// body on each range in its own goroutine. Workers below 1 mean one.
func Chunks(length, workers int, body func(lo, hi int)) {
	if length <= 0 {
		return
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > length {
		workers = length
	}
	size := (length + workers - 1) / workers

	ForEach(workers, workers, func(w int) {
		lo := w * size
		hi := lo + size
		if hi > length {
			hi = length
		}
		if lo < hi {
			body(lo, hi)
		}
	})
}
