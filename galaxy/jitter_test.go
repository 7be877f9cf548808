package galaxy

import (
	"testing"

	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/vmath"
)

func TestJitterDeterministic(t *testing.T) {
	j := NewJitter(42)
	e := core.NewEntity(5, 2)
	center := vmath.Vec3F{X: 10, Y: -3, Z: 1}

	p1 := j.Around(e, 100, SaltGateExit, center, 250)
	p2 := j.Around(e, 100, SaltGateExit, center, 250)
	if p1 != p2 {
		t.Errorf("same key differs: %v vs %v", p1, p2)
	}

	if p3 := j.Around(e, 101, SaltGateExit, center, 250); p3 == p1 {
		t.Errorf("frame does not change draw: %v", p3)
	}
	if p4 := NewJitter(43).Around(e, 100, SaltGateExit, center, 250); p4 == p1 {
		t.Errorf("seed does not change draw: %v", p4)
	}
}

func TestAroundPosWithinRadius(t *testing.T) {
	j := NewJitter(1)
	center := vmath.Vec3F{X: 1500, Y: 20, Z: -7}
	limit := MetersToSystem(500)

	for i := 0; i < 1000; i++ {
		p := j.Around(core.NewEntity(uint32(i), 1), int64(i), SaltRouteApproach, center, 500)
		if d := vmath.V3FDist(p, center); d >= limit {
			t.Fatalf("draw %d at %v units, limit %v", i, d, limit)
		}
		if p.Z != center.Z {
			t.Fatalf("draw %d left the plane: %v", i, p)
		}
	}
}
