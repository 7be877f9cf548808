package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/gatewarp/engine"
	"github.com/lixenwraith/gatewarp/galaxy"
	"github.com/lixenwraith/gatewarp/vmath"
)

func TestDiagnosticsRegionLabels(t *testing.T) {
	g := newTestGalaxy(t, engine.DefaultConfigResource(), galaxy.DefaultLayout())
	w := g.w
	reg := w.Resources.Status

	if got := reg.Labels.Get("galaxy.phase").Value(); got != PhaseReady {
		t.Errorf("phase = %q, want %q", got, PhaseReady)
	}

	g.spawnShip(t, g.regions[0], vmath.Vec3F{})
	for i := range 3 {
		g.spawnShip(t, g.regions[1], vmath.Vec3F{X: float64(i)})
	}
	w.Step(testTick)

	if got := reg.Ints.Get("region.A.ships").Load(); got != 1 {
		t.Errorf("region A ships = %d, want 1", got)
	}
	if got := reg.Ints.Get("region.B.ships").Load(); got != 3 {
		t.Errorf("region B ships = %d, want 3", got)
	}
	if got := reg.Ints.Get("region.D.ships").Load(); got != 0 {
		t.Errorf("region D ships = %d, want 0", got)
	}
	if got := reg.Labels.Get("region.busiest").Value(); got != "B" {
		t.Errorf("busiest = %q, want B", got)
	}
	if n := len(reg.SnapshotPrefix("region.")); n != 5 {
		t.Errorf("region metrics = %d, want 4 counts and a label", n)
	}
}

func TestDiagnosticsWarpDistance(t *testing.T) {
	g := newTestGalaxy(t, engine.DefaultConfigResource(), galaxy.DefaultLayout())
	w := g.w
	ship := g.spawnShip(t, g.regions[0], vmath.Vec3F{})

	target := vmath.Vec3F{X: galaxy.AUToSystem(1)}
	SetDestination(w.Commands(), ship, target)
	w.FlushCommands()
	w.Step(testTick) // engages
	w.Step(testTick) // engaged event reaches diagnostics

	reg := w.Resources.Status
	if got := reg.Gauges.Get("warp.distance_au").Value(); math.Abs(got-1) > 1e-9 {
		t.Errorf("warp distance = %v AU, want 1", got)
	}
	if got := reg.Gauges.Get("warp.longest_au").Value(); math.Abs(got-1) > 1e-9 {
		t.Errorf("longest warp = %v AU, want 1", got)
	}
}
