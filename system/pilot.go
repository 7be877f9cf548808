package system

import (
	"log/slog"
	"slices"
	"sync/atomic"

	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/engine"
	"github.com/lixenwraith/gatewarp/event"
	"github.com/lixenwraith/gatewarp/galaxy"
	"github.com/lixenwraith/gatewarp/parameter"
)

// PilotSystem keeps ships busy: each idle pilot is sent to a random region
// other than its current one, and becomes idle again when travel ends
// Travel end is taken from events, or from a busy ship left with no intent,
// route or movement when an event was lost to queue overflow
type PilotSystem struct {
	world  *engine.World
	logger *slog.Logger

	regions []core.Entity
	pilots  map[core.Entity]bool // ship -> idle
	order   []core.Entity

	statTrips    *atomic.Int64
	statStranded *atomic.Int64
}

// NewPilotSystem creates a pilot pass choosing among regions
func NewPilotSystem(world *engine.World, regions []core.Entity) *PilotSystem {
	s := &PilotSystem{
		world:        world,
		logger:       slog.With("component", "pilot"),
		regions:      slices.Clone(regions),
		statTrips:    world.Resources.Status.Ints.Get("pilot.trips"),
		statStranded: world.Resources.Status.Ints.Get("pilot.stranded"),
	}
	s.Init()
	return s
}

func (s *PilotSystem) Init() {
	s.pilots = make(map[core.Entity]bool)
	s.order = s.order[:0]
}

func (s *PilotSystem) Name() string {
	return "pilot"
}

func (s *PilotSystem) Priority() int {
	return parameter.PriorityPilot
}

// AddPilot puts ship under pilot control, idle until the next update
func (s *PilotSystem) AddPilot(ship core.Entity) {
	if _, ok := s.pilots[ship]; ok {
		return
	}
	s.pilots[ship] = true
	s.order = append(s.order, ship)
}

func (s *PilotSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTravelComplete,
		event.EventTravelNoRoute,
		event.EventTravelFailed,
	}
}

func (s *PilotSystem) HandleEvent(ev event.GameEvent) {
	var ship core.Entity
	switch p := ev.Payload.(type) {
	case *event.TravelCompletePayload:
		ship = p.Entity
	case *event.TravelNoRoutePayload:
		ship = p.Entity
	case *event.TravelFailedPayload:
		ship = p.Entity
	default:
		return
	}
	if _, ok := s.pilots[ship]; ok {
		s.pilots[ship] = true
	}
}

func (s *PilotSystem) Update() {
	w := s.world
	if w.Resources.Galaxy.Routes == nil || len(s.regions) < 2 {
		return
	}

	alive := s.order[:0]
	for _, ship := range s.order {
		if !w.Alive(ship) {
			delete(s.pilots, ship)
			continue
		}
		alive = append(alive, ship)
		if !s.pilots[ship] && s.stranded(ship) {
			s.statStranded.Add(1)
			s.pilots[ship] = true
		}
		if s.pilots[ship] {
			s.dispatch(ship)
		}
	}
	s.order = alive
}

// stranded reports a busy ship with no travel state left to make progress
func (s *PilotSystem) stranded(ship core.Entity) bool {
	c := &s.world.Components
	return !c.TravelIntent.HasEntity(ship) && !c.TravelRoute.HasEntity(ship) && !c.Movement.HasEntity(ship)
}

func (s *PilotSystem) dispatch(ship core.Entity) {
	w := s.world
	coord, ok := w.Components.Galaxy.GetComponent(ship)
	if !ok {
		return
	}

	rng := w.Resources.Galaxy.Jitter.Rand(ship, w.FrameNumber(), galaxy.SaltPilot)
	dest := s.regions[rng.IntN(len(s.regions))]
	if dest == coord.Region {
		dest = s.regions[(slices.Index(s.regions, dest)+1+rng.IntN(len(s.regions)-1))%len(s.regions)]
	}

	s.pilots[ship] = false
	s.statTrips.Add(1)
	s.logger.Debug("pilot dispatched", "ship", ship, "from", coord.Region, "to", dest)
	RequestTravel(w.Commands(), ship, dest)
}
