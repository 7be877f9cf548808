package system

import (
	"github.com/lixenwraith/gatewarp/component"
	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/engine"
	"github.com/lixenwraith/gatewarp/galaxy"
	"github.com/lixenwraith/gatewarp/parameter"
	"github.com/lixenwraith/gatewarp/physics"
	"github.com/lixenwraith/gatewarp/vmath"
)

// SteeringSystem applies sub-light thrust toward the destination, or drifts
// ships without one along their velocity. Warping ships are skipped
type SteeringSystem struct {
	world *engine.World
}

func NewSteeringSystem(world *engine.World) engine.System {
	s := &SteeringSystem{world: world}
	s.Init()
	return s
}

func (s *SteeringSystem) Init() {}

func (s *SteeringSystem) Name() string {
	return "steering"
}

func (s *SteeringSystem) Priority() int {
	return parameter.PrioritySteering
}

func (s *SteeringSystem) Update() {
	s.world.ParallelEach(s.world.Components.Kinetic.GetAllEntities(), s.step)
}

func (s *SteeringSystem) step(e core.Entity, _ *engine.Commands) {
	w := s.world
	if mv, ok := w.Components.Movement.GetComponent(e); ok && mv.IsWarp() {
		return
	}
	pos, ok := positionOf(w, e)
	if !ok {
		return
	}
	kin, _ := w.Components.Kinetic.GetComponent(e)
	dt := w.Resources.Time.DeltaSeconds()

	dest, hasDest := w.Components.Destination.GetComponent(e)
	thr, hasThr := w.Components.Thruster.GetComponent(e)
	if !hasDest || !hasThr {
		if vmath.V3FIsZero(kin.Vel) {
			return
		}
		pos = vmath.V3FAdd(pos, vmath.V3FScale(kin.Vel, dt))
		w.Components.SimPosition.SetComponent(e, component.SimPositionComponent{Pos: pos})
		return
	}

	target, ok := resolveDestination(w, dest)
	if !ok {
		return
	}
	profile := physics.SteerProfile{
		Accel:    galaxy.MetersToSystem(thr.Acceleration()),
		MaxSpeed: galaxy.MetersToSystem(thr.MaxSpeedMS),
	}
	pos, kin.Vel, _ = physics.Steer(pos, kin.Vel, target, profile, dt)

	w.Components.SimPosition.SetComponent(e, component.SimPositionComponent{Pos: pos})
	w.Components.Kinetic.SetComponent(e, kin)
}
