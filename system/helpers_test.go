package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/engine"
	"github.com/lixenwraith/gatewarp/event"
	"github.com/lixenwraith/gatewarp/galaxy"
	"github.com/lixenwraith/gatewarp/vmath"
)

const testTick = 500 * time.Millisecond

// eventRecorder captures output events as they are dispatched
type eventRecorder struct {
	events []event.GameEvent
}

func (r *eventRecorder) Init()         {}
func (r *eventRecorder) Name() string  { return "recorder" }
func (r *eventRecorder) Priority() int { return 0 }
func (r *eventRecorder) Update()       {}
func (r *eventRecorder) EventTypes() []event.EventType {
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
func (r *eventRecorder) HandleEvent(ev event.GameEvent) {
	r.events = append(r.events, ev)
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

type testGalaxy struct {
	w       *engine.World
	regions []core.Entity
	rec     *eventRecorder
}

// newTestGalaxy spawns layout and runs the first tick, which registers gates
// and builds the route table
func newTestGalaxy(t *testing.T, cfg *engine.ConfigResource, layout galaxy.Layout) *testGalaxy {
	t.Helper()

	w := engine.NewWorld(cfg, 7)
	RegisterAll(w)
	rec := &eventRecorder{}
	w.AddSystem(rec)

	regions, err := SpawnGalaxy(w, &layout)
	if err != nil {
		t.Fatalf("SpawnGalaxy: %v", err)
	}
	w.FlushCommands()
	w.Step(testTick)

	if w.Resources.Galaxy.Routes == nil {
		t.Fatal("route table not built after first tick")
	}
	return &testGalaxy{w: w, regions: regions, rec: rec}
}

func (g *testGalaxy) spawnShip(t *testing.T, region core.Entity, pos vmath.Vec3F) core.Entity {
	t.Helper()
	ship := SpawnShip(g.w, ShipSpec{Region: region, Pos: pos})
	g.w.FlushCommands()
	return ship
}

// runUntil steps until done reports true, failing after limit ticks
func (g *testGalaxy) runUntil(t *testing.T, limit int, done func() bool) int {
	t.Helper()
	for i := 0; i < limit; i++ {
		if done() {
			return i
		}
		g.w.Step(testTick)
	}
	t.Fatalf("condition not reached in %d ticks", limit)
	return limit
}

func (g *testGalaxy) region(e core.Entity) core.Entity {
	c, _ := g.w.Components.Galaxy.GetComponent(e)
	return c.Region
}

func (g *testGalaxy) gatePos(t *testing.T, from, to core.Entity) (core.Entity, vmath.Vec3F) {
	t.Helper()
	pair, ok := gatePairFor(g.w, from, to)
	if !ok {
		t.Fatalf("no gate %v -> %v", from, to)
	}
	pos, _ := positionOf(g.w, pair.Local)
	return pair.Local, pos
}
