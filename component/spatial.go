package component

import (
	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/vmath"
)

// SimPositionComponent is the region-local simulation position in system units
type SimPositionComponent struct {
	Pos vmath.Vec3F
}

// GalaxyCoordinateComponent records which region an object currently lives in
// Positions of objects in different regions are not comparable
type GalaxyCoordinateComponent struct {
	Region core.Entity
}

// KineticComponent holds sub-light velocity in system units per second
type KineticComponent struct {
	Vel vmath.Vec3F
}

// ThrusterComponent describes sub-light propulsion
type ThrusterComponent struct {
	ThrustN    float64 // Newtons
	MassKg     float64
	MaxSpeedMS float64 // Meters per second
}

// Acceleration returns thrust/mass in m/s², zero for massless or thrustless hulls
func (t ThrusterComponent) Acceleration() float64 {
	if t.MassKg <= 0 || t.ThrustN <= 0 {
		return 0
	}
	return t.ThrustN / t.MassKg
}
