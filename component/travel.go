package component

import (
	"github.com/lixenwraith/gatewarp/core"
)

// WarpDriveComponent marks an object able to warp, Speed is the ramp factor k
type WarpDriveComponent struct {
	Speed float64
}

// TravelIntentComponent requests travel to Destination region
// Consumed by the travel state machine when resolved into a route
type TravelIntentComponent struct {
	Destination core.Entity
}

// TravelRouteComponent is an in-progress multi-hop route
// Leg is the region the current hop leads into; Remaining are the hops after it
type TravelRouteComponent struct {
	Leg       core.Entity
	EntryGate core.Entity
	ExitGate  core.Entity
	Remaining []core.Entity
}

// Len returns waypoints still to be visited, including the current leg
func (r *TravelRouteComponent) Len() int {
	if r.Leg.IsNull() {
		return len(r.Remaining)
	}
	return len(r.Remaining) + 1
}

// Final returns the last region of the route
func (r *TravelRouteComponent) Final() core.Entity {
	if n := len(r.Remaining); n > 0 {
		return r.Remaining[n-1]
	}
	return r.Leg
}
