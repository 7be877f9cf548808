package parameter

import (
	"errors"
	"fmt"
)

// Warp drive
const (
	// WarpRampUnitMeters is the distance covered by each exponential ramp phase
	WarpRampUnitMeters = 1_500_000_000.0

	// DefaultWarpSpeed is the warp speed factor k of a freshly undocked ship
	DefaultWarpSpeed = 3.0

	// WarpTriggerMeters is the straight-line distance above which warp engages
	WarpTriggerMeters = 10_000_000_000.0
)

// ErrWarpTriggerTooSmall is returned when the trigger distance does not leave room for both ramps
var ErrWarpTriggerTooSmall = errors.New("warp trigger distance must exceed twice the ramp distance")

// ValidateWarpTrigger checks that any distance passing the trigger can hold both ramp phases
func ValidateWarpTrigger(triggerMeters, rampUnitMeters float64) error {
	if rampUnitMeters <= 1 {
		return fmt.Errorf("ramp unit %g m: must exceed 1 m", rampUnitMeters)
	}
	if triggerMeters <= 2*rampUnitMeters {
		return fmt.Errorf("%w: trigger %g m, ramp %g m", ErrWarpTriggerTooSmall, triggerMeters, rampUnitMeters)
	}
	return nil
}
