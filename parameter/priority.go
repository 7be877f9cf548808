package parameter

// System Execution Priorities (lower runs first)
// Registration passes run before any consumer reads region gate maps
const (
	PriorityGateRegistration    = 10
	PriorityAnomalyRegistration = 20
	PriorityRouteTable          = 30 // After registration, topology must be settled
	PriorityPilot               = 50
	PriorityTravel              = 100
	PriorityGateTransit         = 110 // After Travel, adopts orders attached this tick
	PriorityWarpCheck           = 200 // After all destination writers
	PriorityWarp                = 210
	PrioritySteering            = 220 // After Warp, skips entities still warping
	PriorityDiagnostics         = 1000
)
