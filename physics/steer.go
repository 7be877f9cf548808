package physics

import (
	"math"

	"github.com/lixenwraith/gatewarp/vmath"
)

// SteerProfile bounds sub-light steering, in system units
type SteerProfile struct {
	Accel    float64 // Units per second squared
	MaxSpeed float64 // Units per second
}

// Steer advances pos and vel toward target with an arrive controller
// Desired speed tapers as sqrt(2·a·d) so the hull can brake in time; velocity
// change per step is bounded by a·dt. A step that would reach or pass the
// target snaps onto it with zero velocity and reports arrival
func Steer(pos, vel, target vmath.Vec3F, profile SteerProfile, dt float64) (vmath.Vec3F, vmath.Vec3F, bool) {
	delta := vmath.V3FSub(target, pos)
	dist := vmath.V3FMag(delta)
	if dist == 0 {
		return target, vmath.Vec3F{}, true
	}
	if profile.Accel <= 0 || profile.MaxSpeed <= 0 || dt <= 0 {
		return pos, vel, false
	}

	dir := vmath.V3FScale(delta, 1/dist)
	desiredSpeed := math.Min(profile.MaxSpeed, math.Sqrt(2*profile.Accel*dist))
	desired := vmath.V3FScale(dir, desiredSpeed)

	dv := vmath.V3FClampMag(vmath.V3FSub(desired, vel), profile.Accel*dt)
	vel = vmath.V3FClampMag(vmath.V3FAdd(vel, dv), profile.MaxSpeed)

	step := vmath.V3FScale(vel, dt)
	if vmath.V3FDot(step, dir) >= dist {
		return target, vmath.Vec3F{}, true
	}
	return vmath.V3FAdd(pos, step), vel, false
}
