package system

import (
	"fmt"
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

// TravelSystem drives multi-hop travel up to the gate:
// intents resolve into routes, legs steer toward the entry gate, and arrival
// near the gate attaches a gate transit order
type TravelSystem struct {
	world  *engine.World
	logger *slog.Logger

	statIntents  *atomic.Int64
	statAssigned *atomic.Int64
	statNoRoute  *atomic.Int64
	statFailed   *atomic.Int64
	statArrivals *atomic.Int64
}

func NewTravelSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &TravelSystem{
		world:        world,
		logger:       slog.With("component", "travel"),
		statIntents:  reg.Ints.Get("travel.intents"),
		statAssigned: reg.Ints.Get("travel.assigned"),
		statNoRoute:  reg.Ints.Get("travel.no_route"),
		statFailed:   reg.Ints.Get("travel.failed"),
		statArrivals: reg.Ints.Get("travel.gate_arrivals"),
	}
	s.Init()
	return s
}

func (s *TravelSystem) Init() {}

func (s *TravelSystem) Name() string {
	return "travel"
}

func (s *TravelSystem) Priority() int {
	return parameter.PriorityTravel
}

func (s *TravelSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTravelRequest,
		event.EventTravelCancel,
	}
}

func (s *TravelSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventTravelRequest:
		if p, ok := ev.Payload.(*event.TravelRequestPayload); ok {
			s.handleRequest(p)
		}
	case event.EventTravelCancel:
		if p, ok := ev.Payload.(*event.TravelCancelPayload); ok {
			s.handleCancel(p)
		}
	}
}

// handleRequest replaces any travel in progress with a new intent
func (s *TravelSystem) handleRequest(p *event.TravelRequestPayload) {
	w := s.world
	if !w.Alive(p.Entity) || !w.Components.Galaxy.HasEntity(p.Entity) {
		s.logger.Warn("travel request for unplaced entity", "entity", p.Entity)
		return
	}
	if !w.Components.SolarSystem.HasEntity(p.Destination) {
		s.logger.Warn("travel request to unknown region", "entity", p.Entity, "destination", p.Destination)
		return
	}

	RequestTravel(w.Commands(), p.Entity, p.Destination)
	s.statIntents.Add(1)
}

// handleCancel drops intent, route, destination and any movement mode
func (s *TravelSystem) handleCancel(p *event.TravelCancelPayload) {
	w := s.world
	cmds := w.Commands()
	engine.Remove(cmds, w.Components.TravelIntent, p.Entity)
	engine.Remove(cmds, w.Components.TravelRoute, p.Entity)
	engine.Remove(cmds, w.Components.Destination, p.Entity)
	if mv, ok := w.Components.Movement.GetComponent(p.Entity); ok {
		engine.Remove(cmds, w.Components.Movement, p.Entity)
		if mv.IsWarp() {
			w.PushEvent(event.EventWarpDisengaged, &event.WarpDisengagedPayload{Entity: p.Entity})
		}
	}
	s.logger.Debug("travel cancelled", "entity", p.Entity)
}

func (s *TravelSystem) Update() {
	w := s.world
	if w.Resources.Galaxy.Routes != nil {
		w.ParallelEach(w.Components.TravelIntent.GetAllEntities(), s.resolveIntent)
	}
	w.ParallelEach(w.Components.TravelRoute.GetAllEntities(), s.checkArrival)
}

// resolveIntent turns an intent into a route and the first leg
// Intents wait while no route table exists yet
func (s *TravelSystem) resolveIntent(e core.Entity, cmds *engine.Commands) {
	w := s.world
	intent, ok := w.Components.TravelIntent.GetComponent(e)
	if !ok {
		return
	}
	coord, ok := w.Components.Galaxy.GetComponent(e)
	if !ok {
		engine.Remove(cmds, w.Components.TravelIntent, e)
		return
	}
	origin := coord.Region

	engine.Remove(cmds, w.Components.TravelIntent, e)

	if origin == intent.Destination {
		s.logger.Debug("travel intent already satisfied", "entity", e, "region", origin)
		w.PushEvent(event.EventTravelComplete, &event.TravelCompletePayload{Entity: e, Region: origin})
		return
	}

	hops, ok := w.Resources.Galaxy.Routes.Lookup(origin, intent.Destination)
	if !ok {
		s.statNoRoute.Add(1)
		s.logger.Debug("no route", "entity", e, "origin", origin, "destination", intent.Destination)
		w.PushEvent(event.EventTravelNoRoute, &event.TravelNoRoutePayload{
			Entity: e, Origin: origin, Destination: intent.Destination,
		})
		return
	}

	route := component.TravelRouteComponent{Leg: hops[0], Remaining: hops[1:]}
	if !startLeg(w, cmds, s.logger, s.statFailed, e, origin, &route) {
		return
	}
	engine.Insert(cmds, w.Components.TravelRoute, e, route)

	s.statAssigned.Add(1)
	s.logger.Debug("route assigned", "entity", e, "origin", origin, "destination", intent.Destination, "hops", len(hops))
	w.PushEvent(event.EventTravelRouteAssigned, &event.TravelRouteAssignedPayload{
		Entity: e, Origin: origin, Destination: intent.Destination, Hops: len(hops),
	})
}

// checkArrival attaches a transit order once the ship reaches the entry gate
func (s *TravelSystem) checkArrival(e core.Entity, cmds *engine.Commands) {
	w := s.world
	// Warping ships arrive when the warp ends; transit may already be attached
	if w.Components.Movement.HasEntity(e) {
		return
	}

	route, ok := w.Components.TravelRoute.GetComponent(e)
	if !ok {
		return
	}
	pos, ok := positionOf(w, e)
	if !ok {
		return
	}
	gatePos, ok := positionOf(w, route.EntryGate)
	if !ok {
		failRoute(w, cmds, s.logger, s.statFailed, e, route.EntryGate, route.Leg, "entry gate missing")
		return
	}

	dest, hasDest := w.Components.Destination.GetComponent(e)
	if !hasDest {
		// Destination removed by another collaborator; the route still drives
		SetDestination(cmds, e, w.Resources.Galaxy.Jitter.Around(e, w.FrameNumber(), galaxy.SaltRouteApproach, gatePos, parameter.RouteApproachRadiusMeters))
		return
	}

	target, ok := resolveDestination(w, dest)
	if !ok {
		return
	}
	nearGate := vmath.V3FDist(pos, gatePos) <= galaxy.MetersToSystem(parameter.GateProximityMeters)
	atLeg := vmath.V3FDist(pos, target) <= galaxy.MetersToSystem(parameter.LegArrivalMeters)
	if !nearGate && !atLeg {
		return
	}

	order := component.GateTransitOrder{
		EntryGate: route.EntryGate,
		ExitGate:  route.ExitGate,
		Spool:     component.NewSpoolTimer(parameter.GateSpoolUp),
	}
	engine.Insert(cmds, w.Components.Movement, e, component.NewGateTransitMovement(order))
	// Hold position inside proximity for the spool-up
	SetDestination(cmds, e, w.Resources.Galaxy.Jitter.Around(e, w.FrameNumber(), galaxy.SaltGateApproach, gatePos, parameter.GateApproachRadiusMeters))

	s.statArrivals.Add(1)
	s.logger.Debug("gate transit started", "entity", e, "gate", route.EntryGate, "near_gate", nearGate)
	w.PushEvent(event.EventGateTransitStart, &event.GateTransitStartPayload{
		Entity: e, EntryGate: route.EntryGate, ExitGate: route.ExitGate,
	})
}

// startLeg fills the gate pair of route.Leg from region's gate map and queues
// the approach destination. Shared by route assignment and transit completion
func startLeg(w *engine.World, cmds *engine.Commands, logger *slog.Logger, statFailed *atomic.Int64,
	e, region core.Entity, route *component.TravelRouteComponent) bool {
	pair, ok := gatePairFor(w, region, route.Leg)
	if !ok {
		failRoute(w, cmds, logger, statFailed, e, region, route.Leg, "no gate to waypoint")
		return false
	}
	gatePos, ok := positionOf(w, pair.Local)
	if !ok {
		failRoute(w, cmds, logger, statFailed, e, region, route.Leg, "entry gate has no position")
		return false
	}

	route.EntryGate = pair.Local
	route.ExitGate = pair.Remote
	SetDestination(cmds, e, w.Resources.Galaxy.Jitter.Around(e, w.FrameNumber(), galaxy.SaltRouteApproach, gatePos, parameter.RouteApproachRadiusMeters))
	return true
}

// failRoute handles a gate lookup miss: panic in strict mode, drop the route otherwise
func failRoute(w *engine.World, cmds *engine.Commands, logger *slog.Logger, statFailed *atomic.Int64,
	e, region, waypoint core.Entity, reason string) {
	if w.Resources.Config.Strict {
		panic(fmt.Sprintf("travel: %s: entity %v region %v waypoint %v", reason, e, region, waypoint))
	}

	engine.Remove(cmds, w.Components.TravelRoute, e)
	if mv, ok := w.Components.Movement.GetComponent(e); ok && mv.IsGateTransit() {
		engine.Remove(cmds, w.Components.Movement, e)
	}
	statFailed.Add(1)
	logger.Warn("route dropped", "reason", reason, "entity", e, "region", region, "waypoint", waypoint)
	w.PushEvent(event.EventTravelFailed, &event.TravelFailedPayload{
		Entity: e, Region: region, Waypoint: waypoint, Reason: reason,
	})
}
