package system

import (
	"github.com/lixenwraith/gatewarp/component"
	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/engine"
	"github.com/lixenwraith/gatewarp/vmath"
)

// SetDestination queues a point destination for e
// The revision is stamped when the command applies, so every write is seen as
// a new destination by the warp check
func SetDestination(cmds *engine.Commands, e core.Entity, pos vmath.Vec3F) {
	cmds.Push(e, func(w *engine.World) {
		w.Components.Destination.SetComponent(e, component.DestinationComponent{
			Kind:     component.DestinationPoint,
			Pos:      pos,
			Revision: w.NextRevision(),
		})
	})
}

// FollowEntity queues a destination tracking target's position
func FollowEntity(cmds *engine.Commands, e, target core.Entity) {
	cmds.Push(e, func(w *engine.World) {
		w.Components.Destination.SetComponent(e, component.DestinationComponent{
			Kind:     component.DestinationEntity,
			Target:   target,
			Revision: w.NextRevision(),
		})
	})
}

// RequestTravel queues a travel intent toward region dest, replacing any route
// or pending gate transit of e. A warp in progress is left to the warp check,
// which re-plans once the new route writes a destination
// The intent is resolved by the travel pass of the same tick when queued
// before it, otherwise on the next tick
func RequestTravel(cmds *engine.Commands, e, dest core.Entity) {
	cmds.Push(e, func(w *engine.World) {
		w.Components.TravelRoute.RemoveEntity(e)
		if mv, ok := w.Components.Movement.GetComponent(e); ok && mv.IsGateTransit() {
			w.Components.Movement.RemoveEntity(e)
		}
		w.Components.TravelIntent.SetComponent(e, component.TravelIntentComponent{Destination: dest})
	})
}

// resolveDestination returns the point a destination currently refers to
func resolveDestination(w *engine.World, dest component.DestinationComponent) (vmath.Vec3F, bool) {
	if dest.Kind == component.DestinationEntity {
		pos, ok := w.Components.SimPosition.GetComponent(dest.Target)
		return pos.Pos, ok
	}
	return dest.Pos, true
}

// gatePairFor returns the gate pair leading from region toward next
func gatePairFor(w *engine.World, region, next core.Entity) (component.GatePair, bool) {
	sys, ok := w.Components.SolarSystem.GetComponent(region)
	if !ok {
		return component.GatePair{}, false
	}
	return sys.GatePairTo(next)
}

// positionOf returns the simulation position of e
func positionOf(w *engine.World, e core.Entity) (vmath.Vec3F, bool) {
	p, ok := w.Components.SimPosition.GetComponent(e)
	return p.Pos, ok
}
