package engine

import (
	"github.com/lixenwraith/gatewarp/event"
)

// System is one pass of the simulation tick
type System interface {
	// Init resets session state
	Init()

	Name() string

	// Priority orders passes, lower runs first
	Priority() int

	// Update runs the pass; commands it queues are flushed right after
	Update()
}

// EventHandler receives routed events
// Systems implementing it are registered with the router by World.AddSystem
type EventHandler interface {
	// HandleEvent processes one event during dispatch, before any system updates
	HandleEvent(ev event.GameEvent)

	// EventTypes lists the event types routed to this handler
	EventTypes() []event.EventType
}

// EventRouter dispatches queued events to registered handlers
// Dispatch is single-threaded and FIFO; handlers for one event run in
// registration order before the next event
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
	scratch  []event.GameEvent
}

// NewEventRouter creates a router draining queue
func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds handler for each of its event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll drains the queue and routes every event, returning the count
func (r *EventRouter) DispatchAll() int {
	r.scratch = r.queue.ConsumeInto(r.scratch[:0])
	for _, ev := range r.scratch {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	n := len(r.scratch)
	clear(r.scratch)
	return n
}

// HandlerCount returns handlers registered for t
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
