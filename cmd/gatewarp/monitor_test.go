package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gatewarp/engine"
	"github.com/lixenwraith/gatewarp/galaxy"
	"github.com/lixenwraith/gatewarp/parameter"
	"github.com/lixenwraith/gatewarp/system"
)

func newMonitorWorld(t *testing.T, ships int) *engine.World {
	t.Helper()
	w := engine.NewWorld(engine.DefaultConfigResource(), 3)
	system.RegisterAll(w)
	layout := galaxy.DefaultLayout()
	regions, err := system.SpawnGalaxy(w, &layout)
	if err != nil {
		t.Fatalf("SpawnGalaxy: %v", err)
	}
	spawnFleet(w, regions, ships)
	w.Step(parameter.GameUpdateInterval)
	return w
}

func TestMonitorCapture(t *testing.T) {
	w := newMonitorWorld(t, 10)
	m, err := newMonitor(w, tcell.NewSimulationScreen("UTF-8"))
	if err != nil {
		t.Fatal(err)
	}

	w.RunSafe(func() { m.capture(w.FrameNumber()) })
	f := m.latest.Load()
	if f == nil {
		t.Fatal("no frame captured")
	}
	if len(f.regions) != 4 {
		t.Fatalf("regions = %d, want 4", len(f.regions))
	}

	// Fleet is dealt round-robin: A and B get three, C and D two
	want := map[string]int{"A": 3, "B": 3, "C": 2, "D": 2}
	for _, r := range f.regions {
		if r.ships != want[r.name] {
			t.Errorf("region %s ships = %d, want %d", r.name, r.ships, want[r.name])
		}
		if r.warping != 0 || r.transiting != 0 || r.routed != 0 {
			t.Errorf("region %s has travel without requests: %+v", r.name, r)
		}
	}
}

func TestMonitorDraw(t *testing.T) {
	w := newMonitorWorld(t, 2)
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	m, err := newMonitor(w, screen)
	if err != nil {
		t.Fatal(err)
	}
	m.draw()
	if got := screenRow(screen, 0, 80); !strings.HasPrefix(got, "gatewarp  waiting") {
		t.Errorf("header before capture = %q", got)
	}

	w.RunSafe(func() { m.capture(w.FrameNumber()) })
	m.draw()
	header := screenRow(screen, 0, 80)
	if !strings.HasPrefix(header, "gatewarp  frame 1") {
		t.Errorf("header = %q", header)
	}
	// One ship each in A and B; ties go to the first region
	if !strings.Contains(header, "galaxy ready") || !strings.HasSuffix(header, "busiest A") {
		t.Errorf("header labels = %q", header)
	}
	if got := screenRow(screen, 3, 80); !strings.HasPrefix(got, "A ") {
		t.Errorf("first region row = %q", got)
	}
}

func screenRow(s tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := s.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}
