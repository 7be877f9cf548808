package engine

import (
	"sync"

	"github.com/lixenwraith/gatewarp/core"
)

// entityAllocator hands out generation-checked handles
// Destroying an entity bumps its slot generation, so old handles stop resolving
type entityAllocator struct {
	mu          sync.RWMutex
	generations []uint32
	alive       []bool
	free        []uint32
}

func (a *entityAllocator) init(capacity int) {
	a.generations = make([]uint32, 0, capacity)
	a.alive = make([]bool, 0, capacity)
}

func (a *entityAllocator) create() core.Entity {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.alive[idx] = true
		return core.NewEntity(idx, a.generations[idx])
	}

	idx := uint32(len(a.generations))
	// Generation starts at 1 so no live handle equals NullEntity
	a.generations = append(a.generations, 1)
	a.alive = append(a.alive, true)
	return core.NewEntity(idx, 1)
}

func (a *entityAllocator) destroy(e core.Entity) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.aliveLocked(e) {
		return false
	}
	idx := e.Index()
	a.alive[idx] = false
	a.generations[idx]++
	if a.generations[idx] == 0 {
		a.generations[idx] = 1
	}
	a.free = append(a.free, idx)
	return true
}

func (a *entityAllocator) isAlive(e core.Entity) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.aliveLocked(e)
}

func (a *entityAllocator) aliveLocked(e core.Entity) bool {
	if e.IsNull() {
		return false
	}
	idx := e.Index()
	return int(idx) < len(a.generations) && a.alive[idx] && a.generations[idx] == e.Generation()
}

func (a *entityAllocator) count() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.generations) - len(a.free)
}

func (a *entityAllocator) reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	// Keep generations so handles from before the reset stay stale
	for i := range a.alive {
		if a.alive[i] {
			a.alive[i] = false
			a.generations[i]++
			if a.generations[i] == 0 {
				a.generations[i] = 1
			}
			a.free = append(a.free, uint32(i))
		}
	}
}
