package system

import (
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/gatewarp/component"
	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/engine"
	"github.com/lixenwraith/gatewarp/event"
	"github.com/lixenwraith/gatewarp/parameter"
	"github.com/lixenwraith/gatewarp/physics"
	"github.com/lixenwraith/gatewarp/vmath"
)

// WarpCheckSystem engages warp when a destination is newly set or changed
// and lies beyond the trigger distance
// A changed destination during warp re-plans from the current position;
// a removed destination cancels the warp
// An entity destination is fixed at warp start; once the ship is out of warp
// it is checked again every tick, so a target that moved beyond the trigger
// distance engages a new warp
type WarpCheckSystem struct {
	world  *engine.World
	logger *slog.Logger

	// seen holds the last destination revision evaluated per entity
	seen map[core.Entity]uint64

	statEngaged   *atomic.Int64
	statCancelled *atomic.Int64
}

func NewWarpCheckSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &WarpCheckSystem{
		world:         world,
		logger:        slog.With("component", "warp_check"),
		statEngaged:   reg.Ints.Get("warp.engaged"),
		statCancelled: reg.Ints.Get("warp.cancelled"),
	}
	s.Init()
	return s
}

func (s *WarpCheckSystem) Init() {
	s.seen = make(map[core.Entity]uint64)
}

func (s *WarpCheckSystem) Name() string {
	return "warp_check"
}

func (s *WarpCheckSystem) Priority() int {
	return parameter.PriorityWarpCheck
}

func (s *WarpCheckSystem) Update() {
	w := s.world
	cmds := w.Commands()

	for _, e := range w.Components.Destination.GetAllEntities() {
		dest, ok := w.Components.Destination.GetComponent(e)
		if !ok {
			continue
		}
		if last, seen := s.seen[e]; seen && last == dest.Revision && !s.followDrifted(e, dest) {
			continue
		}
		s.seen[e] = dest.Revision
		s.evaluate(e, dest, cmds)
	}

	// Warps whose destination vanished, and bookkeeping for entities without one
	for _, e := range w.Components.Movement.GetAllEntities() {
		if w.Components.Destination.HasEntity(e) {
			continue
		}
		if mv, ok := w.Components.Movement.GetComponent(e); ok && mv.IsWarp() {
			s.cancel(e, cmds, "destination removed")
		}
	}
	for e := range s.seen {
		if !w.Components.Destination.HasEntity(e) {
			delete(s.seen, e)
		}
	}
}

// followDrifted reports an entity destination beyond the trigger distance of a
// ship with no movement mode
func (s *WarpCheckSystem) followDrifted(e core.Entity, dest component.DestinationComponent) bool {
	w := s.world
	if dest.Kind != component.DestinationEntity || w.Components.Movement.HasEntity(e) {
		return false
	}
	pos, ok := positionOf(w, e)
	if !ok {
		return false
	}
	target, ok := resolveDestination(w, dest)
	return ok && vmath.V3FDist(pos, target) > w.Resources.Config.WarpTrigger
}

func (s *WarpCheckSystem) evaluate(e core.Entity, dest component.DestinationComponent, cmds *engine.Commands) {
	w := s.world
	mv, moving := w.Components.Movement.GetComponent(e)
	if moving && mv.IsGateTransit() {
		return
	}

	drive, ok := w.Components.WarpDrive.GetComponent(e)
	if !ok {
		return
	}
	pos, ok := positionOf(w, e)
	if !ok {
		return
	}
	target, ok := resolveDestination(w, dest)
	if !ok {
		return
	}

	cfg := w.Resources.Config
	dist := vmath.V3FDist(pos, target)
	if dist <= cfg.WarpTrigger {
		if moving && mv.IsWarp() {
			s.cancel(e, cmds, "destination within sub-light range")
		}
		return
	}

	profile, err := physics.NewWarpProfile(drive.Speed, dist, cfg.WarpRampUnitMeters)
	if err != nil {
		s.logger.Warn("warp profile rejected", "entity", e, "distance", dist, "error", err)
		return
	}

	state := component.WarpState{
		Start:      pos,
		Target:     target,
		Kinematics: physics.NewWarpKinematics(profile),
	}
	engine.Insert(cmds, w.Components.Movement, e, component.NewWarpMovement(state))
	engine.Insert(cmds, w.Components.Kinetic, e, component.KineticComponent{})

	s.statEngaged.Add(1)
	s.logger.Debug("warp engaged", "entity", e, "distance", dist, "replan", moving,
		"ramp_s", profile.RampDuration, "cruise_s", profile.CruiseDuration)
	w.PushEvent(event.EventWarpEngaged, &event.WarpEngagedPayload{Entity: e, Distance: dist})
}

func (s *WarpCheckSystem) cancel(e core.Entity, cmds *engine.Commands, reason string) {
	engine.Remove(cmds, s.world.Components.Movement, e)
	s.statCancelled.Add(1)
	s.logger.Debug("warp cancelled", "entity", e, "reason", reason)
	s.world.PushEvent(event.EventWarpDisengaged, &event.WarpDisengagedPayload{Entity: e})
}
