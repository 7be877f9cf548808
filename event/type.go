package event

// EventType represents the type of simulation event
type EventType int

const (
	// EventTick is reserved, never pushed
	EventTick EventType = iota

	// === Travel Input ===

	// EventTravelRequest attaches a destination-region intent to a ship
	// Trigger: AI/behavior collaborators, CLI | Consumer: TravelSystem | Payload: *TravelRequestPayload
	EventTravelRequest

	// EventTravelCancel drops intent, route and active movement mode of a ship
	// Trigger: AI/behavior collaborators | Consumer: TravelSystem | Payload: *TravelCancelPayload
	EventTravelCancel

	// === Travel Output ===

	// EventTravelRouteAssigned signals a resolved route and first leg
	// Trigger: TravelSystem | Consumer: observers | Payload: *TravelRouteAssignedPayload
	EventTravelRouteAssigned

	// EventTravelNoRoute signals a dropped intent (origin and destination disconnected)
	// Trigger: TravelSystem | Consumer: observers | Payload: *TravelNoRoutePayload
	EventTravelNoRoute

	// EventTravelFailed signals a route dropped on a gate pair lookup miss
	// Trigger: TravelSystem, GateTransitSystem | Consumer: observers | Payload: *TravelFailedPayload
	EventTravelFailed

	// EventTravelComplete signals the route is exhausted and removed
	// Trigger: GateTransitSystem | Consumer: observers | Payload: *TravelCompletePayload
	EventTravelComplete

	// EventGateTransitStart signals a gate transit order attached at the entry gate
	// Trigger: TravelSystem | Consumer: observers | Payload: *GateTransitStartPayload
	EventGateTransitStart

	// EventGateTransitComplete signals region change through a gate
	// Trigger: GateTransitSystem | Consumer: observers | Payload: *GateTransitCompletePayload
	EventGateTransitComplete

	// === Warp ===

	// EventWarpEngaged signals a warp state attached
	// Trigger: WarpCheckSystem | Consumer: observers | Payload: *WarpEngagedPayload
	EventWarpEngaged

	// EventWarpDisengaged signals a warp state removed (completed or cancelled)
	// Trigger: WarpSystem, WarpCheckSystem | Consumer: observers | Payload: *WarpDisengagedPayload
	EventWarpDisengaged

	// === Galaxy ===

	// EventGalaxyReady signals a route table built from the current topology
	// Trigger: RouteTableSystem | Consumer: observers, runner | Payload: *GalaxyReadyPayload
	EventGalaxyReady

	eventTypeCount
)

// GameEvent represents a single simulation event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
