package system

import (
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/gatewarp/component"
	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/engine"
	"github.com/lixenwraith/gatewarp/event"
	"github.com/lixenwraith/gatewarp/parameter"
	"github.com/lixenwraith/gatewarp/vmath"
)

// WarpSystem integrates warp positions
// Each ship's warp state is its own, so the pass runs in parallel
type WarpSystem struct {
	world  *engine.World
	logger *slog.Logger

	statActive    *atomic.Int64
	statCompleted *atomic.Int64
}

func NewWarpSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &WarpSystem{
		world:         world,
		logger:        slog.With("component", "warp"),
		statActive:    reg.Ints.Get("warp.active"),
		statCompleted: reg.Ints.Get("warp.completed"),
	}
	s.Init()
	return s
}

func (s *WarpSystem) Init() {}

func (s *WarpSystem) Name() string {
	return "warp"
}

func (s *WarpSystem) Priority() int {
	return parameter.PriorityWarp
}

func (s *WarpSystem) Update() {
	s.statActive.Store(0)
	s.world.ParallelEach(s.world.Components.Movement.GetAllEntities(), s.step)
}

func (s *WarpSystem) step(e core.Entity, cmds *engine.Commands) {
	w := s.world
	mv, ok := w.Components.Movement.GetComponent(e)
	if !ok || !mv.IsWarp() {
		return
	}
	s.statActive.Add(1)

	fraction, done := mv.Warp.Kinematics.Step(w.Resources.Time.DeltaSeconds())
	pos := vmath.V3FLerp(mv.Warp.Start, mv.Warp.Target, fraction)
	w.Components.SimPosition.SetComponent(e, component.SimPositionComponent{Pos: pos})

	if !done {
		w.Components.Movement.SetComponent(e, mv)
		return
	}

	engine.Remove(cmds, w.Components.Movement, e)
	s.statCompleted.Add(1)
	s.logger.Debug("warp complete", "entity", e, "miss", vmath.V3FDist(pos, mv.Warp.Target))
	w.PushEvent(event.EventWarpDisengaged, &event.WarpDisengagedPayload{Entity: e, Completed: true})
}
