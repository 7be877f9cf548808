package parameter

import "time"

// Simulation Loop & Engine Timing
const (
	// GameUpdateInterval is the simulation logic update interval (clock tick)
	GameUpdateInterval = 50 * time.Millisecond

	// MaxTickDelta caps the delta handed to systems after a stall (debugger, suspended process)
	MaxTickDelta = 250 * time.Millisecond

	// TickBurst is the limiter burst allowance for catching up after a late tick
	TickBurst = 1
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = 2047

	// InitialEntityCapacity is the preallocated slot count of the entity allocator
	InitialEntityCapacity = 256
)

// Parallel pass tuning
const (
	// DefaultWorkers is the worker count for per-object parallel passes (0 = GOMAXPROCS)
	DefaultWorkers = 0

	// ParallelMinBatch is the entity count below which a pass runs inline
	ParallelMinBatch = 64
)

// Diagnostics
const (
	// DiagnosticsLogEvery is the tick interval between status snapshots at debug level
	DiagnosticsLogEvery = 200
)
