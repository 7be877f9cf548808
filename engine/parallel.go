package engine

import (
	"runtime"
	"sync"

	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/parameter"
)

// ParallelEach runs fn for every entity across worker goroutines
// Entities are split into contiguous chunks; each chunk records into its own
// command buffer and the buffers are merged in chunk order afterwards, so the
// resulting command order equals a sequential pass over entities
//
// fn may read any component and write components of its own entity; anything
// structural goes through cmds
//
// A panic in fn is re-raised on the calling goroutine after all chunks finish,
// so the tick goroutine's crash handling sees it
func (w *World) ParallelEach(entities []core.Entity, fn func(e core.Entity, cmds *Commands)) {
	if len(entities) == 0 {
		return
	}

	workers := w.workerCount()
	if workers <= 1 || len(entities) < parameter.ParallelMinBatch {
		for _, e := range entities {
			fn(e, w.commands)
		}
		return
	}

	chunks := min(workers, (len(entities)+parameter.ParallelMinBatch-1)/parameter.ParallelMinBatch)
	size := (len(entities) + chunks - 1) / chunks

	buffers := make([]*Commands, chunks)
	panics := make([]any, chunks)
	var wg sync.WaitGroup
	for i := 0; i < chunks; i++ {
		lo := i * size
		if lo >= len(entities) {
			buffers = buffers[:i]
			break
		}
		hi := min(lo+size, len(entities))

		buf := newCommands(w)
		buffers[i] = buf
		wg.Add(1)
		go func(i int, part []core.Entity) {
			defer wg.Done()
			defer func() {
				panics[i] = recover()
			}()
			for _, e := range part {
				fn(e, buf)
			}
		}(i, entities[lo:hi])
	}
	wg.Wait()

	for _, r := range panics {
		if r != nil {
			panic(r)
		}
	}

	for _, buf := range buffers {
		w.commands.appendFrom(buf)
	}
}

func (w *World) workerCount() int {
	if w.Resources.Config != nil && w.Resources.Config.Workers > 0 {
		return w.Resources.Config.Workers
	}
	return runtime.GOMAXPROCS(0)
}
