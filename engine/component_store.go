package engine

import (
	"github.com/lixenwraith/gatewarp/component"
)

// ComponentStore provides cached pointers to typed component stores
type ComponentStore struct {
	// Spatial
	SimPosition *Store[component.SimPositionComponent]
	Galaxy      *Store[component.GalaxyCoordinateComponent]
	Kinetic     *Store[component.KineticComponent]

	// Galaxy graph
	SolarSystem         *Store[component.SolarSystemComponent]
	Gate                *Store[component.GateComponent]
	GateRegistration    *Store[component.GateRegistrationComponent]
	Anomaly             *Store[component.AnomalyComponent]
	AnomalyRegistration *Store[component.AnomalyRegistrationComponent]

	// Propulsion
	Thruster    *Store[component.ThrusterComponent]
	WarpDrive   *Store[component.WarpDriveComponent]
	Destination *Store[component.DestinationComponent]
	Movement    *Store[component.MovementComponent]

	// Travel
	TravelIntent *Store[component.TravelIntentComponent]
	TravelRoute  *Store[component.TravelRouteComponent]
}

// initComponentStores allocates every store and registers it for lifecycle operations
func initComponentStores(w *World) {
	w.Components = ComponentStore{
		SimPosition: registerStore[component.SimPositionComponent](w),
		Galaxy:      registerStore[component.GalaxyCoordinateComponent](w),
		Kinetic:     registerStore[component.KineticComponent](w),

		SolarSystem:         registerStore[component.SolarSystemComponent](w),
		Gate:                registerStore[component.GateComponent](w),
		GateRegistration:    registerStore[component.GateRegistrationComponent](w),
		Anomaly:             registerStore[component.AnomalyComponent](w),
		AnomalyRegistration: registerStore[component.AnomalyRegistrationComponent](w),

		Thruster:    registerStore[component.ThrusterComponent](w),
		WarpDrive:   registerStore[component.WarpDriveComponent](w),
		Destination: registerStore[component.DestinationComponent](w),
		Movement:    registerStore[component.MovementComponent](w),

		TravelIntent: registerStore[component.TravelIntentComponent](w),
		TravelRoute:  registerStore[component.TravelRouteComponent](w),
	}
}

func registerStore[T any](w *World) *Store[T] {
	s := NewStore[T]()
	w.stores = append(w.stores, s)
	return s
}
