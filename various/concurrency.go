package various

import "sync"

const numWorkers = 8

// KickOffChunkWorkers distributes totalItems across a fixed number of
// goroutines and blocks until all of them are done. The callback receives
// a half-open index range [start, end).
func KickOffChunkWorkers(totalItems int, fn func(start, end int)) {
	var wg sync.WaitGroup
	var chunkStart int
	chunkSize := (totalItems / numWorkers) + 1
	for i := 0; i < numWorkers; i++ {
		curChunk := chunkSize
		if rem := totalItems - chunkStart; rem < curChunk {
			curChunk = rem
		}
		if curChunk <= 0 {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			fn(start, end)
			wg.Done()
		}(chunkStart, chunkStart+curChunk)
		chunkStart += curChunk
	}
	wg.Wait()
}

// KickOffRowWorkers distributes the rows of a grid across workers, so each
// callback invocation covers whole rows [startRow, endRow). This keeps the
// per-row index math in the callback simple when iterating 2D buffers.
func KickOffRowWorkers(rows int, fn func(startRow, endRow int)) {
	KickOffChunkWorkers(rows, fn)
}
