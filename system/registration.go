package system

import (
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/gatewarp/component"
	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/engine"
	"github.com/lixenwraith/gatewarp/parameter"
)

// GateRegistrationSystem adopts tagged gates into their region's gate map
// Runs as a mutation-exclusive pass before anything reads gate maps
type GateRegistrationSystem struct {
	world  *engine.World
	logger *slog.Logger

	statGates    *atomic.Int64
	statRejected *atomic.Int64
}

func NewGateRegistrationSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &GateRegistrationSystem{
		world:        world,
		logger:       slog.With("component", "gate_registration"),
		statGates:    reg.Ints.Get("galaxy.gates"),
		statRejected: reg.Ints.Get("galaxy.gates_rejected"),
	}
	s.Init()
	return s
}

func (s *GateRegistrationSystem) Init() {}

func (s *GateRegistrationSystem) Name() string {
	return "gate_registration"
}

func (s *GateRegistrationSystem) Priority() int {
	return parameter.PriorityGateRegistration
}

func (s *GateRegistrationSystem) Update() {
	w := s.world
	tagged := w.Components.GateRegistration.GetAllEntities()
	if len(tagged) == 0 {
		return
	}

	cmds := w.Commands()
	for _, gate := range tagged {
		cmds.Push(gate, func(w *engine.World) {
			s.register(w, gate)
		})
	}
}

func (s *GateRegistrationSystem) register(w *engine.World, gate core.Entity) {
	w.Components.GateRegistration.RemoveEntity(gate)

	g, ok := w.Components.Gate.GetComponent(gate)
	if !ok {
		s.logger.Warn("registration tag on non-gate", "entity", gate)
		return
	}

	var rejected bool
	found := w.Components.SolarSystem.UpdateComponent(g.Region, func(sys *component.SolarSystemComponent) {
		if sys.Gates == nil {
			sys.Gates = make(map[core.Entity]component.GatePair)
		}
		if existing, dup := sys.Gates[g.Destination]; dup {
			s.logger.Warn("region already has a gate to destination",
				"region", g.Region, "destination", g.Destination, "existing", existing.Local, "gate", gate)
			rejected = true
			return
		}
		sys.Gates[g.Destination] = component.GatePair{Local: gate, Remote: g.Peer}
		sys.GateOrder = append(sys.GateOrder, g.Destination)
		s.statGates.Add(1)
		s.logger.Debug("gate registered", "region", sys.Name, "destination", g.Destination, "gate", gate)
	})
	if !found {
		s.logger.Warn("gate region missing", "gate", gate, "region", g.Region)
		rejected = true
	}
	if rejected {
		// An unowned gate is unreachable from any gate map
		w.DestroyEntity(gate)
		s.statRejected.Add(1)
		return
	}

	w.Resources.Galaxy.Dirty = true
}

// AnomalyRegistrationSystem adopts tagged anomalies into their region's list
type AnomalyRegistrationSystem struct {
	world  *engine.World
	logger *slog.Logger

	statAnomalies *atomic.Int64
}

func NewAnomalyRegistrationSystem(world *engine.World) engine.System {
	s := &AnomalyRegistrationSystem{
		world:         world,
		logger:        slog.With("component", "anomaly_registration"),
		statAnomalies: world.Resources.Status.Ints.Get("galaxy.anomalies"),
	}
	s.Init()
	return s
}

func (s *AnomalyRegistrationSystem) Init() {}

func (s *AnomalyRegistrationSystem) Name() string {
	return "anomaly_registration"
}

func (s *AnomalyRegistrationSystem) Priority() int {
	return parameter.PriorityAnomalyRegistration
}

func (s *AnomalyRegistrationSystem) Update() {
	w := s.world
	cmds := w.Commands()

	for _, anomaly := range w.Components.AnomalyRegistration.GetAllEntities() {
		tag, ok := w.Components.AnomalyRegistration.GetComponent(anomaly)
		if !ok {
			continue
		}
		cmds.Push(anomaly, func(w *engine.World) {
			w.Components.AnomalyRegistration.RemoveEntity(anomaly)
			ok := w.Components.SolarSystem.UpdateComponent(tag.Region, func(sys *component.SolarSystemComponent) {
				sys.Anomalies = append(sys.Anomalies, anomaly)
			})
			if !ok {
				s.logger.Warn("anomaly region missing", "anomaly", anomaly, "region", tag.Region)
				return
			}
			s.statAnomalies.Add(1)
		})
	}
}
