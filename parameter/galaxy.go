package parameter

import "time"

// Coordinate space scale
const (
	// MeterScale converts meters into simulation units
	MeterScale = 0.000001

	// AUScale converts astronomical units into simulation units
	AUScale = 150000.0
)

// Gate geometry
const (
	// GateStandoffAU is the distance of a gate from its region origin along the connection direction
	GateStandoffAU = 10.0

	// GateProximityMeters is the distance to the entry gate within which spool-up ticks
	GateProximityMeters = 50.0

	// GateSpoolUp is the delay between arriving at a gate and completing transit
	GateSpoolUp = 1 * time.Second
)

// Travel approach jitter and arrival
const (
	// LegArrivalMeters is the distance to the leg destination point counted as arrival
	LegArrivalMeters = 10.0

	// RouteApproachRadiusMeters randomizes the leg destination around the entry gate
	RouteApproachRadiusMeters = 500.0

	// GateApproachRadiusMeters randomizes the re-approach point when outside gate proximity
	GateApproachRadiusMeters = 25.0

	// GateExitRadiusMeters randomizes the arrival point around the exit gate
	GateExitRadiusMeters = 250.0
)

// Sub-light propulsion defaults
const (
	// DefaultShipMassKg is the mass of a freshly undocked ship
	DefaultShipMassKg = 100000.0

	// DefaultShipThrustN is the thrust of a freshly undocked ship
	DefaultShipThrustN = 500000.0

	// DefaultShipMaxSpeedMS caps sub-light speed in meters per second
	DefaultShipMaxSpeedMS = 300.0
)

// Anomalies
const (
	// DefaultAnomalyLevel is the level assigned to anomalies spawned without one
	DefaultAnomalyLevel = 1
)
