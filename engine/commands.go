package engine

import (
	"sync"

	"github.com/lixenwraith/gatewarp/core"
)

type command struct {
	entity core.Entity // NullEntity for commands not bound to an entity
	apply  func(w *World)
}

// Commands is a deferred mutation buffer applied at pass boundaries
// Structural changes made during a pass (attach or detach transient state,
// region changes, registration) go through Commands so concurrent readers of
// the same pass never observe them half-applied
type Commands struct {
	world *World
	mu    sync.Mutex
	queue []command
}

func newCommands(w *World) *Commands {
	return &Commands{world: w}
}

// Push queues fn bound to e; skipped at flush if e is no longer alive
func (c *Commands) Push(e core.Entity, fn func(w *World)) {
	c.mu.Lock()
	c.queue = append(c.queue, command{entity: e, apply: fn})
	c.mu.Unlock()
}

// PushGlobal queues fn without an entity binding
func (c *Commands) PushGlobal(fn func(w *World)) {
	c.Push(core.NullEntity, fn)
}

// Insert queues a component insert or replace
func Insert[T any](c *Commands, s *Store[T], e core.Entity, val T) {
	c.Push(e, func(*World) { s.SetComponent(e, val) })
}

// Remove queues a component removal
func Remove[T any](c *Commands, s *Store[T], e core.Entity) {
	c.Push(e, func(*World) { s.RemoveEntity(e) })
}

// Spawn reserves a handle immediately; components are attached with Insert
func (c *Commands) Spawn() core.Entity {
	return c.world.CreateEntity()
}

// Despawn queues entity destruction
func (c *Commands) Despawn(e core.Entity) {
	c.Push(e, func(w *World) { w.DestroyEntity(e) })
}

// Len returns queued command count
func (c *Commands) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// take detaches the queue
func (c *Commands) take() []command {
	c.mu.Lock()
	defer c.mu.Unlock()
	q := c.queue
	c.queue = nil
	return q
}

// appendFrom moves other's queue to the end of c, preserving order
func (c *Commands) appendFrom(other *Commands) {
	q := other.take()
	if len(q) == 0 {
		return
	}
	c.mu.Lock()
	c.queue = append(c.queue, q...)
	c.mu.Unlock()
}
