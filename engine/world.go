package engine

import (
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/event"
	"github.com/lixenwraith/gatewarp/parameter"
	"github.com/lixenwraith/gatewarp/status"
)

// World contains all entities, component stores, resources and systems
type World struct {
	mu       sync.RWMutex
	entities entityAllocator
	stores   []AnyStore

	Components    ComponentStore
	Resources     Resource
	ResourceStore *ResourceStore

	commands *Commands
	router   *EventRouter
	systems  []System

	updateMutex sync.Mutex
	frame       atomic.Int64
	revision    atomic.Uint64

	statTicks    *atomic.Int64
	statStale    *atomic.Int64
	statCommands *atomic.Int64
	statDropped  *atomic.Int64

	logger *slog.Logger
}

// NewWorld creates a world with core resources; nil cfg uses DefaultConfigResource
func NewWorld(cfg *ConfigResource, seed uint64) *World {
	if cfg == nil {
		cfg = DefaultConfigResource()
	}

	queue := event.NewEventQueue()
	reg := status.NewRegistry()

	w := &World{
		ResourceStore: NewResourceStore(),
		Resources: Resource{
			Time:   &TimeResource{},
			Config: cfg,
			Galaxy: NewGalaxyResource(seed),
			Event:  &EventQueueResource{Queue: queue},
			Status: reg,
		},
		router:       NewEventRouter(queue),
		statTicks:    reg.Ints.Get("engine.ticks"),
		statStale:    reg.Ints.Get("engine.stale_commands"),
		statCommands: reg.Ints.Get("engine.commands"),
		statDropped:  reg.Ints.Get("engine.events_dropped"),
		logger:       slog.With("component", "engine"),
	}
	w.entities.init(parameter.InitialEntityCapacity)
	w.commands = newCommands(w)
	initComponentStores(w)

	AddResource(w.ResourceStore, w.Resources.Time)
	AddResource(w.ResourceStore, w.Resources.Config)
	AddResource(w.ResourceStore, w.Resources.Galaxy)
	AddResource(w.ResourceStore, w.Resources.Event)
	AddResource(w.ResourceStore, w.Resources.Status)

	return w
}

// CreateEntity reserves a new handle with no components
func (w *World) CreateEntity() core.Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and retires the handle
// Stale handles are ignored
func (w *World) DestroyEntity(e core.Entity) {
	if !w.entities.isAlive(e) {
		return
	}
	for _, s := range w.stores {
		s.RemoveEntity(e)
	}
	w.entities.destroy(e)
}

// Alive reports whether e refers to a live entity of the current generation
func (w *World) Alive(e core.Entity) bool {
	return w.entities.isAlive(e)
}

// EntityCount returns live entities
func (w *World) EntityCount() int {
	return w.entities.count()
}

// Clear removes every entity and component, handles issued before stay stale
func (w *World) Clear() {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	w.commands.take()
	for _, s := range w.stores {
		s.ClearAllComponents()
	}
	w.entities.reset()
}

// AddSystem registers a system in priority order and routes its events
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	slices.SortStableFunc(w.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})

	if h, ok := system.(EventHandler); ok {
		w.router.Register(h)
	}
}

// Systems returns registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.systems)
}

// Commands returns the world's deferred mutation buffer
func (w *World) Commands() *Commands {
	return w.commands
}

// FlushCommands applies queued commands in FIFO order and returns the applied count
// Commands bound to a dead or stale handle are skipped; commands queued while
// flushing are applied in the same call
func (w *World) FlushCommands() int {
	applied := 0
	for {
		q := w.commands.take()
		if len(q) == 0 {
			break
		}
		for _, c := range q {
			if !c.entity.IsNull() && !w.entities.isAlive(c.entity) {
				w.statStale.Add(1)
				w.logger.Debug("skip stale command", "entity", c.entity)
				continue
			}
			c.apply(w)
			applied++
		}
	}
	w.statCommands.Add(int64(applied))
	return applied
}

// PushEvent queues an event stamped with the current frame, safe from any goroutine
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resources.Event.Queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	return w.frame.Load()
}

// NextRevision returns a world-unique, increasing revision stamp
func (w *World) NextRevision() uint64 {
	return w.revision.Add(1)
}

// Step advances the world one tick:
// update time, dispatch events, flush, then each system followed by a flush
func (w *World) Step(dt time.Duration) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	frame := w.frame.Add(1)
	w.Resources.Time.Update(dt, frame)

	w.router.DispatchAll()
	w.FlushCommands()

	w.mu.RLock()
	systems := w.systems
	w.mu.RUnlock()

	for _, s := range systems {
		s.Update()
		w.FlushCommands()
	}

	w.statTicks.Add(1)
	w.statDropped.Store(int64(w.Resources.Event.Queue.Dropped()))
}

// RunSafe runs fn under the update lock, outside any tick
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}
