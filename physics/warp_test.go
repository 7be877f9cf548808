package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/gatewarp/parameter"
	"github.com/lixenwraith/gatewarp/vmath"
)

const fracTolerance = 1e-9

func mustProfile(t *testing.T, speed, distance float64) WarpProfile {
	t.Helper()
	p, err := NewWarpProfile(speed, distance, parameter.WarpRampUnitMeters)
	if err != nil {
		t.Fatalf("NewWarpProfile(%v, %v): %v", speed, distance, err)
	}
	return p
}

func TestWarpProfileConstants(t *testing.T) {
	p := mustProfile(t, 3, 50_000)

	wantRamp := math.Log(parameter.WarpRampUnitMeters) / 3
	if math.Abs(p.RampDuration-wantRamp) > 1e-12 {
		t.Errorf("RampDuration = %v, want %v", p.RampDuration, wantRamp)
	}
	if p.CruiseDuration <= 0 {
		t.Errorf("CruiseDuration = %v, want positive", p.CruiseDuration)
	}

	// Cruise speed matches the ramp's exit velocity k·exp(k·T) meters per second
	exitVel := 3 * math.Exp(3*p.RampDuration) * parameter.MeterScale
	if math.Abs(p.CruiseSpeed-exitVel)/exitVel > 1e-9 {
		t.Errorf("CruiseSpeed = %v, ramp exit velocity %v", p.CruiseSpeed, exitVel)
	}
}

func TestWarpPhaseContinuity(t *testing.T) {
	for _, d := range []float64{3_500, 50_000, 1_500_000} {
		p := mustProfile(t, 3, d)

		accelEnd := p.AccelFraction(p.RampDuration)
		cruiseStart := p.CruiseFraction(0)
		if math.Abs(accelEnd-cruiseStart) > fracTolerance {
			t.Errorf("D=%v: accel end %v != cruise start %v", d, accelEnd, cruiseStart)
		}

		cruiseEnd := p.CruiseFraction(p.CruiseDuration)
		decelStart := p.DecelFraction(p.RampDuration)
		if math.Abs(cruiseEnd-decelStart) > fracTolerance {
			t.Errorf("D=%v: cruise end %v != decel start %v", d, cruiseEnd, decelStart)
		}

		if got := p.AccelFraction(0); got != 0 {
			t.Errorf("D=%v: AccelFraction(0) = %v, want 0", d, got)
		}
		if got := p.DecelFraction(0); got != 1 {
			t.Errorf("D=%v: DecelFraction(0) = %v, want 1", d, got)
		}
	}
}

func TestWarpEndpoint(t *testing.T) {
	start := vmath.Vec3F{X: 100, Y: -200, Z: 5}
	target := vmath.Vec3F{X: 40_100, Y: 29_800, Z: 5}
	dist := vmath.V3FDist(start, target)

	for _, dt := range []float64{0.05, 0.37, 2.5} {
		k := NewWarpKinematics(mustProfile(t, 3, dist))

		var (
			pos  = start
			prev = 0.0
			done bool
			frac float64
		)
		for steps := 0; !done; steps++ {
			if steps > 1_000_000 {
				t.Fatalf("dt=%v: warp did not finish", dt)
			}
			frac, done = k.Step(dt)
			if frac < prev-fracTolerance {
				t.Fatalf("dt=%v: fraction went backwards %v -> %v in %v", dt, prev, frac, k.Phase)
			}
			prev = frac
			pos = vmath.V3FLerp(start, target, frac)
		}

		miss := vmath.V3FDist(pos, target)
		if miss > parameter.WarpRampUnitMeters*parameter.MeterScale {
			t.Errorf("dt=%v: ended %v units from target", dt, miss)
		}
		if miss > 1e-6 {
			t.Errorf("dt=%v: ended %v units from target, want exact", dt, miss)
		}
	}
}

func TestWarpStepSliceIndependent(t *testing.T) {
	p := mustProfile(t, 3, 50_000)
	total := p.RampDuration + p.CruiseDuration/2

	coarse := NewWarpKinematics(p)
	coarse.Step(total)

	fine := NewWarpKinematics(p)
	for i := 0; i < 1000; i++ {
		fine.Step(total / 1000)
	}

	if coarse.Phase != WarpCruising || fine.Phase != WarpCruising {
		t.Fatalf("phases %v/%v, want cruising", coarse.Phase, fine.Phase)
	}
	if math.Abs(coarse.Fraction()-fine.Fraction()) > 1e-9 {
		t.Errorf("coarse %v != fine %v", coarse.Fraction(), fine.Fraction())
	}
}

func TestWarpProfileRejects(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		distance float64
		ramp     float64
		want     error
	}{
		{"zero speed", 0, 50_000, parameter.WarpRampUnitMeters, ErrInvalidWarpSpeed},
		{"negative speed", -1, 50_000, parameter.WarpRampUnitMeters, ErrInvalidWarpSpeed},
		{"nan speed", math.NaN(), 50_000, parameter.WarpRampUnitMeters, ErrInvalidWarpSpeed},
		{"inf speed", math.Inf(1), 50_000, parameter.WarpRampUnitMeters, ErrInvalidWarpSpeed},
		{"unit ramp", 3, 50_000, 1, ErrInvalidRampUnit},
		{"too short", 3, 2_900, parameter.WarpRampUnitMeters, ErrWarpTooShort},
		{"tiny", 3, 50, parameter.WarpRampUnitMeters, ErrWarpTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWarpProfile(tt.speed, tt.distance, tt.ramp)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWarpTriggerValidation(t *testing.T) {
	if err := parameter.ValidateWarpTrigger(parameter.WarpTriggerMeters, parameter.WarpRampUnitMeters); err != nil {
		t.Fatalf("default trigger rejected: %v", err)
	}
	err := parameter.ValidateWarpTrigger(2*parameter.WarpRampUnitMeters, parameter.WarpRampUnitMeters)
	if !errors.Is(err, parameter.ErrWarpTriggerTooSmall) {
		t.Errorf("err = %v, want ErrWarpTriggerTooSmall", err)
	}
}
