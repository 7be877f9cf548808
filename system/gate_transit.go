package system

import (
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/gatewarp/component"
	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/engine"
	"github.com/lixenwraith/gatewarp/event"
	"github.com/lixenwraith/gatewarp/galaxy"
	"github.com/lixenwraith/gatewarp/parameter"
	"github.com/lixenwraith/gatewarp/vmath"
)

// GateTransitSystem runs transit orders: spool-up inside gate proximity,
// re-approach outside it, and the region change when spool-up completes
type GateTransitSystem struct {
	world  *engine.World
	logger *slog.Logger

	statTransits  *atomic.Int64
	statStalled   *atomic.Int64
	statCompleted *atomic.Int64
	statFailed    *atomic.Int64
}

func NewGateTransitSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &GateTransitSystem{
		world:         world,
		logger:        slog.With("component", "gate_transit"),
		statTransits:  reg.Ints.Get("transit.completed_hops"),
		statStalled:   reg.Ints.Get("transit.stalled"),
		statCompleted: reg.Ints.Get("travel.completed"),
		statFailed:    reg.Ints.Get("travel.failed"),
	}
	s.Init()
	return s
}

func (s *GateTransitSystem) Init() {}

func (s *GateTransitSystem) Name() string {
	return "gate_transit"
}

func (s *GateTransitSystem) Priority() int {
	return parameter.PriorityGateTransit
}

func (s *GateTransitSystem) Update() {
	s.statStalled.Store(0)
	s.world.ParallelEach(s.world.Components.Movement.GetAllEntities(), s.step)
}

func (s *GateTransitSystem) step(e core.Entity, cmds *engine.Commands) {
	w := s.world
	mv, ok := w.Components.Movement.GetComponent(e)
	if !ok || !mv.IsGateTransit() {
		return
	}
	order := mv.Transit

	// Route removed by someone else: the order has nothing left to drive
	route, ok := w.Components.TravelRoute.GetComponent(e)
	if !ok || route.EntryGate != order.EntryGate {
		engine.Remove(cmds, w.Components.Movement, e)
		s.logger.Debug("transit order dropped without route", "entity", e, "gate", order.EntryGate)
		return
	}

	pos, ok := positionOf(w, e)
	if !ok {
		return
	}
	gatePos, ok := positionOf(w, order.EntryGate)
	if !ok {
		failRoute(w, cmds, s.logger, s.statFailed, e, order.EntryGate, route.Leg, "entry gate missing")
		return
	}

	if vmath.V3FDist(pos, gatePos) > galaxy.MetersToSystem(parameter.GateProximityMeters) {
		// Stalled: countdown neither ticks nor resets
		s.statStalled.Add(1)
		s.reapproach(e, cmds, gatePos)
		return
	}

	order.Spool.Tick(w.Resources.Time.DeltaTime)
	if !order.Spool.Finished() {
		mv.Transit = order
		w.Components.Movement.SetComponent(e, mv)
		return
	}

	cmds.Push(e, func(w *engine.World) {
		s.complete(w, e, order)
	})
}

// reapproach steers back inside proximity unless already heading there
func (s *GateTransitSystem) reapproach(e core.Entity, cmds *engine.Commands, gatePos vmath.Vec3F) {
	w := s.world
	limit := galaxy.MetersToSystem(parameter.GateProximityMeters)
	if dest, ok := w.Components.Destination.GetComponent(e); ok {
		if target, ok := resolveDestination(w, dest); ok && vmath.V3FDist(target, gatePos) <= limit {
			return
		}
	}
	SetDestination(cmds, e, w.Resources.Galaxy.Jitter.Around(e, w.FrameNumber(), galaxy.SaltGateApproach, gatePos, parameter.GateApproachRadiusMeters))
}

// complete moves the ship through the gate and advances its route
// Runs as a command: it changes region membership
func (s *GateTransitSystem) complete(w *engine.World, e core.Entity, order component.GateTransitOrder) {
	route, ok := w.Components.TravelRoute.GetComponent(e)
	if !ok {
		w.Components.Movement.RemoveEntity(e)
		return
	}

	fromRegion := core.NullEntity
	if coord, ok := w.Components.Galaxy.GetComponent(e); ok {
		fromRegion = coord.Region
	}

	exit, ok := w.Components.Gate.GetComponent(order.ExitGate)
	exitPos, hasPos := positionOf(w, order.ExitGate)
	if !ok || !hasPos {
		cmds := w.Commands()
		failRoute(w, cmds, s.logger, s.statFailed, e, fromRegion, route.Leg, "exit gate missing")
		return
	}
	toRegion := exit.Region

	w.Components.Galaxy.SetComponent(e, component.GalaxyCoordinateComponent{Region: toRegion})
	w.Components.SimPosition.SetComponent(e, component.SimPositionComponent{
		Pos: w.Resources.Galaxy.Jitter.Around(e, w.FrameNumber(), galaxy.SaltGateExit, exitPos, parameter.GateExitRadiusMeters),
	})
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{})
	w.Components.Destination.RemoveEntity(e)
	w.Components.Movement.RemoveEntity(e)
	s.statTransits.Add(1)

	w.PushEvent(event.EventGateTransitComplete, &event.GateTransitCompletePayload{
		Entity: e, FromRegion: fromRegion, ToRegion: toRegion, Remaining: len(route.Remaining),
	})

	if len(route.Remaining) == 0 {
		w.Components.TravelRoute.RemoveEntity(e)
		s.statCompleted.Add(1)
		s.logger.Debug("travel complete", "entity", e, "region", toRegion)
		w.PushEvent(event.EventTravelComplete, &event.TravelCompletePayload{Entity: e, Region: toRegion})
		return
	}

	next := component.TravelRouteComponent{Leg: route.Remaining[0], Remaining: route.Remaining[1:]}
	cmds := w.Commands()
	if !startLeg(w, cmds, s.logger, s.statFailed, e, toRegion, &next) {
		return
	}
	w.Components.TravelRoute.SetComponent(e, next)
	s.logger.Debug("next leg", "entity", e, "region", toRegion, "leg", next.Leg, "remaining", len(next.Remaining))
}
