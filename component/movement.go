package component

import (
	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/physics"
	"github.com/lixenwraith/gatewarp/vmath"
)

// MovementMode tags the active exclusive movement mode
// Absence of MovementComponent means ordinary sub-light steering
type MovementMode uint8

const (
	MovementNone MovementMode = iota
	MovementWarp
	MovementGateTransit
)

func (m MovementMode) String() string {
	switch m {
	case MovementWarp:
		return "warp"
	case MovementGateTransit:
		return "gate_transit"
	default:
		return "steering"
	}
}

// WarpState is an in-progress warp between two region-local points
type WarpState struct {
	Start      vmath.Vec3F
	Target     vmath.Vec3F
	Kinematics physics.WarpKinematics
}

// GateTransitOrder is an in-progress hop through EntryGate
type GateTransitOrder struct {
	EntryGate core.Entity
	ExitGate  core.Entity
	Spool     SpoolTimer
}

// MovementComponent holds exactly one of Warp or Transit, selected by Mode
type MovementComponent struct {
	Mode    MovementMode
	Warp    WarpState
	Transit GateTransitOrder
}

// NewWarpMovement wraps a warp state
func NewWarpMovement(state WarpState) MovementComponent {
	return MovementComponent{Mode: MovementWarp, Warp: state}
}

// NewGateTransitMovement wraps a transit order
func NewGateTransitMovement(order GateTransitOrder) MovementComponent {
	return MovementComponent{Mode: MovementGateTransit, Transit: order}
}

// IsWarp reports warp mode
func (m MovementComponent) IsWarp() bool { return m.Mode == MovementWarp }

// IsGateTransit reports gate transit mode
func (m MovementComponent) IsGateTransit() bool { return m.Mode == MovementGateTransit }
