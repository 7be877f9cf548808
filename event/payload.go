package event

import (
	"github.com/lixenwraith/gatewarp/core"
)

// TravelRequestPayload names the ship and its destination region
type TravelRequestPayload struct {
	Entity      core.Entity
	Destination core.Entity
}

// TravelCancelPayload names the ship whose travel is dropped
type TravelCancelPayload struct {
	Entity core.Entity
}

// TravelRouteAssignedPayload describes a resolved route
type TravelRouteAssignedPayload struct {
	Entity      core.Entity
	Origin      core.Entity
	Destination core.Entity
	Hops        int
}

// TravelNoRoutePayload describes a dropped intent
type TravelNoRoutePayload struct {
	Entity      core.Entity
	Origin      core.Entity
	Destination core.Entity
}

// TravelFailedPayload describes a route dropped mid-travel
type TravelFailedPayload struct {
	Entity   core.Entity
	Region   core.Entity
	Waypoint core.Entity
	Reason   string
}

// TravelCompletePayload describes a finished route
type TravelCompletePayload struct {
	Entity core.Entity
	Region core.Entity
}

// GateTransitStartPayload describes an attached transit order
type GateTransitStartPayload struct {
	Entity    core.Entity
	EntryGate core.Entity
	ExitGate  core.Entity
}

// GateTransitCompletePayload describes a completed hop
type GateTransitCompletePayload struct {
	Entity     core.Entity
	FromRegion core.Entity
	ToRegion   core.Entity
	Remaining  int // Waypoints left after the hop
}

// WarpEngagedPayload describes an attached warp state
type WarpEngagedPayload struct {
	Entity   core.Entity
	Distance float64 // Simulation units
}

// WarpDisengagedPayload describes a removed warp state
type WarpDisengagedPayload struct {
	Entity    core.Entity
	Completed bool // False when cancelled by a destination change or removal
}

// GalaxyReadyPayload summarizes the topology the route table was built from
type GalaxyReadyPayload struct {
	Regions int
	Gates   int
	Routes  int
}
