package system

import (
	"fmt"

	"github.com/lixenwraith/gatewarp/component"
	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/engine"
	"github.com/lixenwraith/gatewarp/galaxy"
	"github.com/lixenwraith/gatewarp/parameter"
	"github.com/lixenwraith/gatewarp/vmath"
)

// SpawnGalaxy queues regions, anomalies and gate pairs for a layout
// Gates and anomalies are tagged and adopted by the registration passes on the
// next tick. Returned handles are indexed like layout.Regions
func SpawnGalaxy(w *engine.World, layout *galaxy.Layout) ([]core.Entity, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("spawn galaxy: %w", err)
	}

	cmds := w.Commands()
	store := &w.Components
	regions := make([]core.Entity, len(layout.Regions))

	for i, spec := range layout.Regions {
		region := cmds.Spawn()
		regions[i] = region

		engine.Insert(cmds, store.SolarSystem, region, component.SolarSystemComponent{
			Name:      spec.Name,
			GalaxyPos: spec.Pos(),
			Gates:     make(map[core.Entity]component.GatePair),
		})
		engine.Insert(cmds, store.SimPosition, region, component.SimPositionComponent{})

		name := spec.Name
		cmds.Push(region, func(w *engine.World) {
			w.Resources.Galaxy.NameRegion(name, region)
		})

		for _, a := range spec.Anomalies {
			anomaly := cmds.Spawn()
			level := a.Level
			if level == 0 {
				level = parameter.DefaultAnomalyLevel
			}
			engine.Insert(cmds, store.Anomaly, anomaly, component.AnomalyComponent{Name: a.Name, Level: level})
			engine.Insert(cmds, store.SimPosition, anomaly, component.SimPositionComponent{Pos: vmath.Vec3F{
				X: galaxy.MetersToSystem(a.X),
				Y: galaxy.MetersToSystem(a.Y),
				Z: galaxy.MetersToSystem(a.Z),
			}})
			engine.Insert(cmds, store.Galaxy, anomaly, component.GalaxyCoordinateComponent{Region: region})
			engine.Insert(cmds, store.AnomalyRegistration, anomaly, component.AnomalyRegistrationComponent{Region: region})
		}
	}

	for _, edge := range layout.Edges {
		ra, rb := regions[edge.From], regions[edge.To]
		posA, posB, err := galaxy.GatePlacement(layout.Regions[edge.From].Pos(), layout.Regions[edge.To].Pos())
		if err != nil {
			// Validate already rejected this
			return nil, fmt.Errorf("spawn galaxy: %w", err)
		}

		ga, gb := cmds.Spawn(), cmds.Spawn()
		spawnGate(cmds, store, ga, ra, rb, gb, posA)
		spawnGate(cmds, store, gb, rb, ra, ga, posB)
	}

	return regions, nil
}

func spawnGate(cmds *engine.Commands, store *engine.ComponentStore, gate, region, dest, peer core.Entity, pos vmath.Vec3F) {
	engine.Insert(cmds, store.Gate, gate, component.GateComponent{Region: region, Destination: dest, Peer: peer})
	engine.Insert(cmds, store.SimPosition, gate, component.SimPositionComponent{Pos: pos})
	engine.Insert(cmds, store.Galaxy, gate, component.GalaxyCoordinateComponent{Region: region})
	engine.Insert(cmds, store.GateRegistration, gate, component.GateRegistrationComponent{})
}

// ShipSpec describes a ship to spawn; zero propulsion fields take defaults
type ShipSpec struct {
	Region    core.Entity
	Pos       vmath.Vec3F
	Thruster  component.ThrusterComponent
	WarpSpeed float64
	NoWarp    bool
}

// SpawnShip queues a ship at rest in a region
func SpawnShip(w *engine.World, spec ShipSpec) core.Entity {
	cmds := w.Commands()
	store := &w.Components
	ship := cmds.Spawn()

	thr := spec.Thruster
	if thr.MassKg == 0 {
		thr.MassKg = parameter.DefaultShipMassKg
	}
	if thr.ThrustN == 0 {
		thr.ThrustN = parameter.DefaultShipThrustN
	}
	if thr.MaxSpeedMS == 0 {
		thr.MaxSpeedMS = parameter.DefaultShipMaxSpeedMS
	}

	engine.Insert(cmds, store.SimPosition, ship, component.SimPositionComponent{Pos: spec.Pos})
	engine.Insert(cmds, store.Galaxy, ship, component.GalaxyCoordinateComponent{Region: spec.Region})
	engine.Insert(cmds, store.Kinetic, ship, component.KineticComponent{})
	engine.Insert(cmds, store.Thruster, ship, thr)

	if !spec.NoWarp {
		speed := spec.WarpSpeed
		if speed == 0 {
			speed = w.Resources.Config.WarpSpeed
		}
		engine.Insert(cmds, store.WarpDrive, ship, component.WarpDriveComponent{Speed: speed})
	}
	return ship
}
