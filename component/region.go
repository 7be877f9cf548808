package component

import (
	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/vmath"
)

// GatePair is the local and remote gate serving one neighbouring region
type GatePair struct {
	Local  core.Entity // Gate in the owning region
	Remote core.Entity // Gate in the destination region
}

// SolarSystemComponent is a region node of the galaxy graph
type SolarSystemComponent struct {
	Name      string
	GalaxyPos vmath.Vec3F // Galaxy-level layout position, only used for gate directions

	// Gates maps destination region to the gate pair leading there
	Gates map[core.Entity]GatePair
	// GateOrder lists destination regions in registration order
	GateOrder []core.Entity

	Anomalies []core.Entity
}

// Neighbours returns destination regions in registration order
func (s *SolarSystemComponent) Neighbours() []core.Entity {
	return s.GateOrder
}

// GatePairTo returns the gate pair leading to region dest
func (s *SolarSystemComponent) GatePairTo(dest core.Entity) (GatePair, bool) {
	pair, ok := s.Gates[dest]
	return pair, ok
}

// GateComponent marks a gate; Region owns it, Destination is where it leads
type GateComponent struct {
	Region      core.Entity
	Destination core.Entity
	Peer        core.Entity // Paired gate in Destination
}

// GateRegistrationComponent tags a gate awaiting adoption into its region's gate map
type GateRegistrationComponent struct{}

// AnomalyComponent is a point of interest inside a region
type AnomalyComponent struct {
	Name  string
	Level int
}

// AnomalyRegistrationComponent tags an anomaly awaiting adoption into Region's list
type AnomalyRegistrationComponent struct {
	Region core.Entity
}
