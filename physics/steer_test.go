package physics

import (
	"testing"

	"github.com/lixenwraith/gatewarp/parameter"
	"github.com/lixenwraith/gatewarp/vmath"
)

func meters(m float64) float64 { return m * parameter.MeterScale }

func TestSteerConverges(t *testing.T) {
	profile := SteerProfile{Accel: meters(5), MaxSpeed: meters(300)}
	target := vmath.Vec3F{X: meters(400), Y: meters(-300)}

	for _, dt := range []float64{0.05, 0.5} {
		var pos, vel vmath.Vec3F
		arrived := false
		for i := 0; i < 100_000 && !arrived; i++ {
			pos, vel, arrived = Steer(pos, vel, target, profile, dt)
			if s := vmath.V3FMag(vel); s > profile.MaxSpeed*(1+1e-9) {
				t.Fatalf("dt=%v: speed %v above max %v", dt, s, profile.MaxSpeed)
			}
		}
		if !arrived {
			t.Fatalf("dt=%v: did not arrive, %v units away", dt, vmath.V3FDist(pos, target))
		}
		if pos != target || !vmath.V3FIsZero(vel) {
			t.Errorf("dt=%v: arrival left pos %v vel %v", dt, pos, vel)
		}
	}
}

func TestSteerIdle(t *testing.T) {
	pos := vmath.Vec3F{X: 1}
	target := vmath.Vec3F{X: 2}

	p, v, arrived := Steer(pos, vmath.Vec3F{}, target, SteerProfile{}, 0.1)
	if arrived || p != pos || !vmath.V3FIsZero(v) {
		t.Errorf("zero profile moved: pos %v vel %v arrived %v", p, v, arrived)
	}

	p, _, arrived = Steer(target, vmath.Vec3F{}, target, SteerProfile{Accel: 1, MaxSpeed: 1}, 0.1)
	if !arrived || p != target {
		t.Errorf("at target: arrived %v pos %v", arrived, p)
	}
}
