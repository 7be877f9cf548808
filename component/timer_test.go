package component

import (
	"testing"
	"time"

	"github.com/lixenwraith/gatewarp/core"
)

func TestSpoolTimer(t *testing.T) {
	timer := NewSpoolTimer(time.Second)

	timer.Tick(400 * time.Millisecond)
	if timer.Finished() {
		t.Fatal("finished after 400ms of 1s")
	}
	if got := timer.Remaining(); got != 600*time.Millisecond {
		t.Errorf("Remaining = %v, want 600ms", got)
	}

	timer.Tick(-time.Second)
	if timer.Elapsed != 400*time.Millisecond {
		t.Errorf("negative tick changed elapsed to %v", timer.Elapsed)
	}

	timer.Tick(2 * time.Second)
	if !timer.Finished() {
		t.Fatal("not finished after overshoot")
	}
	if timer.Elapsed != time.Second {
		t.Errorf("Elapsed = %v, want saturation at 1s", timer.Elapsed)
	}

	timer.Reset()
	if timer.Finished() || timer.Remaining() != time.Second {
		t.Errorf("Reset left %v elapsed", timer.Elapsed)
	}
}

func TestTravelRouteLen(t *testing.T) {
	var r TravelRouteComponent
	if r.Len() != 0 {
		t.Errorf("empty route Len = %d", r.Len())
	}

	b, d := core.NewEntity(1, 1), core.NewEntity(3, 1)
	r = TravelRouteComponent{Leg: b, Remaining: []core.Entity{d}}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
	if r.Final() != d {
		t.Errorf("Final = %v, want %v", r.Final(), d)
	}
}
