package system

import (
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/gatewarp/engine"
	"github.com/lixenwraith/gatewarp/event"
	"github.com/lixenwraith/gatewarp/galaxy"
	"github.com/lixenwraith/gatewarp/parameter"
)

// RouteTableSystem rebuilds the route table once topology settles
// The table is swapped whole; passes later in the tick read the new one
type RouteTableSystem struct {
	world  *engine.World
	logger *slog.Logger

	statRegions *atomic.Int64
	statRoutes  *atomic.Int64
	statBuilds  *atomic.Int64
}

func NewRouteTableSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &RouteTableSystem{
		world:       world,
		logger:      slog.With("component", "route_table"),
		statRegions: reg.Ints.Get("galaxy.regions"),
		statRoutes:  reg.Ints.Get("galaxy.routes"),
		statBuilds:  reg.Ints.Get("galaxy.route_builds"),
	}
	s.Init()
	return s
}

func (s *RouteTableSystem) Init() {}

func (s *RouteTableSystem) Name() string {
	return "route_table"
}

func (s *RouteTableSystem) Priority() int {
	return parameter.PriorityRouteTable
}

func (s *RouteTableSystem) Update() {
	w := s.world
	g := w.Resources.Galaxy
	if !g.Dirty || w.Components.GateRegistration.CountEntities() > 0 {
		return
	}

	adj := s.adjacency()
	g.Routes = galaxy.BuildRouteTable(adj, galaxy.RouteOptions{TieBreak: w.Resources.Config.TieBreak})
	g.Dirty = false

	s.statRegions.Store(int64(len(adj.Regions)))
	s.statRoutes.Store(int64(g.Routes.Len()))
	s.statBuilds.Add(1)
	s.logger.Info("route table built", "regions", len(adj.Regions), "routes", g.Routes.Len())

	w.PushEvent(event.EventGalaxyReady, &event.GalaxyReadyPayload{
		Regions: len(adj.Regions),
		Gates:   w.Components.Gate.CountEntities(),
		Routes:  g.Routes.Len(),
	})
}

// adjacency reads region gate maps in region spawn order and gate registration order
func (s *RouteTableSystem) adjacency() *galaxy.Adjacency {
	w := s.world
	adj := galaxy.NewAdjacency()
	regions := w.Components.SolarSystem.GetAllEntities()
	for _, r := range regions {
		adj.AddRegion(r)
	}
	for _, r := range regions {
		sys, ok := w.Components.SolarSystem.GetComponent(r)
		if !ok {
			continue
		}
		for _, dest := range sys.Neighbours() {
			adj.AddLink(r, dest)
		}
	}
	return adj
}
