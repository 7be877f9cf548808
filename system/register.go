package system

import (
	"github.com/lixenwraith/gatewarp/engine"
)

// RegisterAll adds every simulation pass to world in priority order
func RegisterAll(world *engine.World) {
	for _, ctor := range []func(*engine.World) engine.System{
		NewGateRegistrationSystem,
		NewAnomalyRegistrationSystem,
		NewRouteTableSystem,
		NewTravelSystem,
		NewGateTransitSystem,
		NewWarpCheckSystem,
		NewWarpSystem,
		NewSteeringSystem,
		NewDiagnosticsSystem,
	} {
		world.AddSystem(ctor(world))
	}
}
