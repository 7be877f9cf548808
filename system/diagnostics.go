package system

import (
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/engine"
	"github.com/lixenwraith/gatewarp/event"
	"github.com/lixenwraith/gatewarp/galaxy"
	"github.com/lixenwraith/gatewarp/parameter"
	"github.com/lixenwraith/gatewarp/status"
)

// Galaxy phase labels
const (
	PhaseBuilding = "building" // Gates registering or route table stale
	PhaseReady    = "ready"
)

// DiagnosticsSystem publishes population gauges and counts travel outcome events
// Per-region ship counts are published as "region.<name>.ships"
type DiagnosticsSystem struct {
	world  *engine.World
	logger *slog.Logger

	statEntities *atomic.Int64
	statIntents  *atomic.Int64
	statRoutes   *atomic.Int64
	statWarps    *atomic.Int64
	statTransits *atomic.Int64
	statFrame    *atomic.Int64
	statSimTime  *status.Gauge
	statLastEvt  *status.Label
	statPhase    *status.Label
	statBusiest  *status.Label
	statWarpAU   *status.Gauge
	statLongest  *status.Gauge

	eventCounts  map[event.EventType]*atomic.Int64
	regionShips  map[core.Entity]*atomic.Int64
	regionCounts map[core.Entity]int
}

func NewDiagnosticsSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &DiagnosticsSystem{
		world:        world,
		logger:       slog.With("component", "diagnostics"),
		statEntities: reg.Ints.Get("engine.entities"),
		statIntents:  reg.Ints.Get("active.intents"),
		statRoutes:   reg.Ints.Get("active.routes"),
		statWarps:    reg.Ints.Get("active.warps"),
		statTransits: reg.Ints.Get("active.transits"),
		statFrame:    reg.Ints.Get("engine.frame"),
		statSimTime:  reg.Gauges.Get("engine.sim_seconds"),
		statLastEvt:  reg.Labels.Get("events.last"),
		statPhase:    reg.Labels.Get("galaxy.phase"),
		statBusiest:  reg.Labels.Get("region.busiest"),
		statWarpAU:   reg.Gauges.Get("warp.distance_au"),
		statLongest:  reg.Gauges.Get("warp.longest_au"),
		eventCounts:  make(map[event.EventType]*atomic.Int64),
		regionShips:  make(map[core.Entity]*atomic.Int64),
		regionCounts: make(map[core.Entity]int),
	}
	for _, t := range s.EventTypes() {
		s.eventCounts[t] = reg.Ints.Get("events." + t.String())
	}
	s.Init()
	return s
}

func (s *DiagnosticsSystem) Init() {}

func (s *DiagnosticsSystem) Name() string {
	return "diagnostics"
}

func (s *DiagnosticsSystem) Priority() int {
	return parameter.PriorityDiagnostics
}

func (s *DiagnosticsSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTravelRouteAssigned,
		event.EventTravelNoRoute,
		event.EventTravelFailed,
		event.EventTravelComplete,
		event.EventGateTransitStart,
		event.EventGateTransitComplete,
		event.EventWarpEngaged,
		event.EventWarpDisengaged,
		event.EventGalaxyReady,
	}
}

func (s *DiagnosticsSystem) HandleEvent(ev event.GameEvent) {
	if c, ok := s.eventCounts[ev.Type]; ok {
		c.Add(1)
	}
	s.statLastEvt.Set(ev.Type.String())

	if p, ok := ev.Payload.(*event.WarpEngagedPayload); ok {
		au := galaxy.SystemToAU(p.Distance)
		s.statWarpAU.Add(au)
		s.statLongest.Max(au)
	}
}

func (s *DiagnosticsSystem) Update() {
	w := s.world
	c := &w.Components

	transits, warps := 0, 0
	for _, e := range c.Movement.GetAllEntities() {
		mv, ok := c.Movement.GetComponent(e)
		switch {
		case !ok:
		case mv.IsWarp():
			warps++
		case mv.IsGateTransit():
			transits++
		}
	}

	s.statEntities.Store(int64(w.EntityCount()))
	s.statIntents.Store(int64(c.TravelIntent.CountEntities()))
	s.statRoutes.Store(int64(c.TravelRoute.CountEntities()))
	s.statWarps.Store(int64(warps))
	s.statTransits.Store(int64(transits))
	s.statFrame.Store(w.FrameNumber())
	s.statSimTime.Set(w.Resources.Time.SimTime.Seconds())

	s.publishRegions()

	phase := PhaseReady
	if g := w.Resources.Galaxy; g.Routes == nil || g.Dirty {
		phase = PhaseBuilding
	}
	if old := s.statPhase.Swap(phase); old != phase {
		s.logger.Info("galaxy phase", "from", old, "to", phase)
	}

	if w.FrameNumber()%parameter.DiagnosticsLogEvery == 0 {
		s.logger.Debug("status", "metrics", w.Resources.Status)
	}
}

// publishRegions counts ships per region and labels the busiest one,
// first in spawn order on ties
func (s *DiagnosticsSystem) publishRegions() {
	c := &s.world.Components
	clear(s.regionCounts)
	for _, ship := range c.Thruster.GetAllEntities() {
		if coord, ok := c.Galaxy.GetComponent(ship); ok {
			s.regionCounts[coord.Region]++
		}
	}

	busiest, most := "", 0
	for _, r := range c.SolarSystem.GetAllEntities() {
		sys, ok := c.SolarSystem.GetComponent(r)
		if !ok {
			continue
		}
		gauge, ok := s.regionShips[r]
		if !ok {
			gauge = s.world.Resources.Status.Ints.Get("region." + sys.Name + ".ships")
			s.regionShips[r] = gauge
		}
		n := s.regionCounts[r]
		gauge.Store(int64(n))
		if n > most {
			busiest, most = sys.Name, n
		}
	}
	s.statBusiest.Set(busiest)
}
