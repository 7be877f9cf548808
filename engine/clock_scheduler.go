package engine

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/parameter"
)

// ClockScheduler drives World.Step on a fixed interval
// Pacing comes from a token bucket so a slow tick is followed by an immediate
// one rather than a growing backlog
type ClockScheduler struct {
	world        *World
	tickInterval time.Duration

	// fixedDelta, when set, replaces measured wall time as the tick delta
	fixedDelta time.Duration

	limiter *rate.Limiter

	cancel  context.CancelFunc
	mu      sync.Mutex
	wg      sync.WaitGroup
	running atomic.Bool

	tickCount atomic.Uint64
	statTick  *atomic.Int64

	// onTick runs after each tick under the world update lock
	onTick func(frame int64)

	logger *slog.Logger
}

// NewClockScheduler creates a scheduler ticking world every tickInterval
func NewClockScheduler(world *World, tickInterval time.Duration) *ClockScheduler {
	if tickInterval <= 0 {
		tickInterval = parameter.GameUpdateInterval
	}
	return &ClockScheduler{
		world:        world,
		tickInterval: tickInterval,
		limiter:      rate.NewLimiter(rate.Every(tickInterval), parameter.TickBurst),
		statTick:     world.Resources.Status.Ints.Get("scheduler.tick_us"),
		logger:       slog.With("component", "scheduler"),
	}
}

// SetFixedDelta makes every tick advance exactly d of simulation time
// Must be called before Start
func (cs *ClockScheduler) SetFixedDelta(d time.Duration) {
	cs.fixedDelta = d
}

// OnTick registers a callback run after each tick, must be called before Start
func (cs *ClockScheduler) OnTick(fn func(frame int64)) {
	cs.onTick = fn
}

// Run ticks until ctx is cancelled or Stop is called
func (cs *ClockScheduler) Run(ctx context.Context) error {
	if !cs.running.CompareAndSwap(false, true) {
		return nil
	}
	defer cs.running.Store(false)

	ctx, cancel := context.WithCancel(ctx)
	cs.mu.Lock()
	cs.cancel = cancel
	cs.mu.Unlock()
	defer cancel()

	cs.logger.Info("scheduler started", "interval", cs.tickInterval)
	last := time.Now()

	for {
		if err := cs.limiter.Wait(ctx); err != nil {
			// Wait fails early when the next token lies past the deadline
			if ctx.Err() == nil {
				<-ctx.Done()
			}
			cs.logger.Info("scheduler stopped", "ticks", cs.tickCount.Load())
			return ctx.Err()
		}

		now := time.Now()
		dt := cs.fixedDelta
		if dt <= 0 {
			dt = min(now.Sub(last), parameter.MaxTickDelta)
		}
		last = now

		cs.world.Step(dt)
		cs.tickCount.Add(1)
		cs.statTick.Store(time.Since(now).Microseconds())

		if cs.onTick != nil {
			frame := cs.world.FrameNumber()
			cs.world.RunSafe(func() { cs.onTick(frame) })
		}
	}
}

// Start runs the scheduler on its own goroutine
func (cs *ClockScheduler) Start(ctx context.Context) {
	cs.wg.Add(1)
	core.Go(func() {
		defer cs.wg.Done()
		cs.Run(ctx)
	})
}

// Stop cancels a running scheduler and waits for a Start goroutine to exit
func (cs *ClockScheduler) Stop() {
	cs.mu.Lock()
	if cs.cancel != nil {
		cs.cancel()
	}
	cs.mu.Unlock()
	cs.wg.Wait()
}

// TickCount returns completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}
