package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/gatewarp/parameter"
)

var (
	// ErrInvalidWarpSpeed rejects non-positive or non-finite warp speed factors
	ErrInvalidWarpSpeed = errors.New("warp speed factor must be positive and finite")
	// ErrInvalidRampUnit rejects ramp units that give a non-positive ramp duration
	ErrInvalidRampUnit = errors.New("warp ramp unit must exceed one meter")
	// ErrWarpTooShort rejects distances that do not fit both ramps
	ErrWarpTooShort = errors.New("warp distance shorter than twice the ramp distance")
)

// WarpPhase is the kinematic phase of a warp
type WarpPhase uint8

const (
	WarpAccelerating WarpPhase = iota
	WarpCruising
	WarpDecelerating
	WarpDone
)

func (p WarpPhase) String() string {
	switch p {
	case WarpAccelerating:
		return "accelerating"
	case WarpCruising:
		return "cruising"
	case WarpDecelerating:
		return "decelerating"
	default:
		return "done"
	}
}

// WarpProfile holds the constants of one warp, derived once at creation
// Offsets along the path are exp(k·t)-1 meters during both ramps, so the ramp
// covers RampDistance units in RampDuration seconds and exits at CruiseSpeed
type WarpProfile struct {
	Speed    float64 // Ramp factor k, 1/s
	Distance float64 // Straight-line start to target, system units

	RampUnitMeters float64
	RampDistance   float64 // Units covered by one ramp
	RampDuration   float64 // Seconds, ln(RampUnitMeters)/k
	CruiseSpeed    float64 // Units per second, k·RampUnit
	CruiseDuration float64 // Seconds
}

// NewWarpProfile derives the phase constants for a warp of distance units
func NewWarpProfile(speed, distance, rampUnitMeters float64) (WarpProfile, error) {
	if !(speed > 0) || math.IsInf(speed, 0) {
		return WarpProfile{}, fmt.Errorf("%w: %v", ErrInvalidWarpSpeed, speed)
	}
	if !(rampUnitMeters > 1) || math.IsInf(rampUnitMeters, 0) {
		return WarpProfile{}, fmt.Errorf("%w: %v", ErrInvalidRampUnit, rampUnitMeters)
	}

	rampUnit := rampUnitMeters * parameter.MeterScale
	if !(distance >= 2*rampUnit) || math.IsInf(distance, 0) {
		return WarpProfile{}, fmt.Errorf("%w: distance %v, ramp %v", ErrWarpTooShort, distance, rampUnit)
	}

	p := WarpProfile{
		Speed:          speed,
		Distance:       distance,
		RampUnitMeters: rampUnitMeters,
		RampDistance:   (rampUnitMeters - 1) * parameter.MeterScale,
		RampDuration:   math.Log(rampUnitMeters) / speed,
		CruiseSpeed:    speed * rampUnit,
	}
	p.CruiseDuration = (distance - 2*p.RampDistance) / p.CruiseSpeed
	return p, nil
}

// rampOffset returns the distance in units covered after t seconds of ramp
func (p *WarpProfile) rampOffset(t float64) float64 {
	t = max(0, min(t, p.RampDuration))
	return (math.Exp(p.Speed*t) - 1) * parameter.MeterScale
}

// AccelFraction returns the path fraction after t seconds of acceleration
func (p *WarpProfile) AccelFraction(t float64) float64 {
	return p.rampOffset(t) / p.Distance
}

// CruiseFraction returns the path fraction after t seconds of cruise
func (p *WarpProfile) CruiseFraction(t float64) float64 {
	start := p.RampDistance / p.Distance
	if p.CruiseDuration <= 0 {
		return start
	}
	progress := max(0, min(t/p.CruiseDuration, 1))
	return start + progress*(p.Distance-2*p.RampDistance)/p.Distance
}

// DecelFraction returns the path fraction with t seconds of deceleration left
func (p *WarpProfile) DecelFraction(t float64) float64 {
	return 1 - p.rampOffset(t)/p.Distance
}

// WarpKinematics is the phase state machine of one warp
// Ramping counts up while accelerating and back down while decelerating;
// Cruise accumulates independently
type WarpKinematics struct {
	Profile WarpProfile
	Phase   WarpPhase
	Ramping float64
	Cruise  float64
}

// NewWarpKinematics starts a warp at the beginning of acceleration
func NewWarpKinematics(profile WarpProfile) WarpKinematics {
	return WarpKinematics{Profile: profile}
}

// Fraction returns the path fraction of the current state
func (w *WarpKinematics) Fraction() float64 {
	switch w.Phase {
	case WarpAccelerating:
		return w.Profile.AccelFraction(w.Ramping)
	case WarpCruising:
		return w.Profile.CruiseFraction(w.Cruise)
	case WarpDecelerating:
		return w.Profile.DecelFraction(w.Ramping)
	default:
		return 1
	}
}

// Step advances the warp by dt seconds and returns the new path fraction
// Time left over at a phase boundary carries into the next phase, so the
// path is independent of how the elapsed time is sliced
func (w *WarpKinematics) Step(dt float64) (float64, bool) {
	if dt < 0 {
		dt = 0
	}

	for dt > 0 && w.Phase != WarpDone {
		switch w.Phase {
		case WarpAccelerating:
			w.Ramping += dt
			dt = 0
			if w.Ramping >= w.Profile.RampDuration {
				dt = w.Ramping - w.Profile.RampDuration
				w.Ramping = w.Profile.RampDuration
				w.Phase = WarpCruising
			}

		case WarpCruising:
			w.Cruise += dt
			dt = 0
			if w.Cruise >= w.Profile.CruiseDuration {
				dt = w.Cruise - w.Profile.CruiseDuration
				w.Cruise = w.Profile.CruiseDuration
				w.Phase = WarpDecelerating
			}

		case WarpDecelerating:
			w.Ramping -= dt
			dt = 0
			if w.Ramping <= 0 {
				w.Ramping = 0
				w.Phase = WarpDone
			}
		}
	}

	return w.Fraction(), w.Phase == WarpDone
}

// Done reports whether deceleration completed
func (w *WarpKinematics) Done() bool {
	return w.Phase == WarpDone
}
