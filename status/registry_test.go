package status

import (
	"sync"
	"testing"
)

func TestRegistrySnapshotSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("travel.routes").Store(3)
	r.Bools.Get("engine.running").Store(true)
	r.Gauges.Get("warp.longest_au").Set(0.5)
	r.Labels.Get("galaxy.phase").Set("ready")

	snap := r.Snapshot()
	want := []Metric{
		{"engine.running", "true"},
		{"galaxy.phase", "ready"},
		{"travel.routes", "3"},
		{"warp.longest_au", "0.5"},
	}
	if len(snap) != len(want) {
		t.Fatalf("snapshot = %v", snap)
	}
	for i := range want {
		if snap[i] != want[i] {
			t.Errorf("snap[%d] = %v, want %v", i, snap[i], want[i])
		}
	}
}

func TestSnapshotPrefixGroupsRegions(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("region.B.ships").Store(2)
	r.Ints.Get("region.A.ships").Store(5)
	r.Labels.Get("region.busiest").Set("A")
	r.Ints.Get("travel.routes").Store(1)

	snap := r.SnapshotPrefix("region.")
	want := []Metric{
		{"region.A.ships", "5"},
		{"region.B.ships", "2"},
		{"region.busiest", "A"},
	}
	if len(snap) != len(want) {
		t.Fatalf("snapshot = %v", snap)
	}
	for i := range want {
		if snap[i] != want[i] {
			t.Errorf("snap[%d] = %v, want %v", i, snap[i], want[i])
		}
	}
}

func TestMetricMapStablePointers(t *testing.T) {
	m := NewMetricMap[Gauge]()

	var wg sync.WaitGroup
	ptrs := make([]*Gauge, 16)
	for i := range ptrs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ptrs[i] = m.Get("warp.distance_au")
			ptrs[i].Add(1)
		}(i)
	}
	wg.Wait()

	for _, p := range ptrs[1:] {
		if p != ptrs[0] {
			t.Fatal("Get returned different pointers for one key")
		}
	}
	if got := ptrs[0].Value(); got != 16 {
		t.Errorf("sum = %v, want 16", got)
	}
	if _, ok := m.Lookup("absent"); ok || m.Count() != 1 {
		t.Error("Lookup registered a key")
	}
}

func TestGaugeMax(t *testing.T) {
	var g Gauge
	if got := g.Max(3); got != 3 {
		t.Errorf("Max(3) = %v", got)
	}
	if got := g.Max(1); got != 3 {
		t.Errorf("Max(1) = %v, want 3 kept", got)
	}
	if g.Value() != 3 {
		t.Errorf("Value = %v", g.Value())
	}
}

func TestLabelSwapAndTruncate(t *testing.T) {
	var l Label
	if l.Value() != "" {
		t.Error("zero value not empty")
	}
	if old := l.Swap("building"); old != "" {
		t.Errorf("first Swap returned %q", old)
	}
	if old := l.Swap("ready"); old != "building" {
		t.Errorf("Swap returned %q, want building", old)
	}

	long := "abcdefghijklmnopqrstuvwxyz0123456789"
	l.Set(long)
	if got := l.Value(); got != long[:MaxLabelLen] {
		t.Errorf("Value = %q", got)
	}
}
