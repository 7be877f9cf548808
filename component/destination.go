package component

import (
	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/vmath"
)

// DestinationKind selects how a steering destination resolves to a point
type DestinationKind uint8

const (
	// DestinationPoint is a fixed region-local position
	DestinationPoint DestinationKind = iota
	// DestinationEntity follows the SimPosition of Target
	DestinationEntity
)

// DestinationComponent is the desired steering destination
// Revision is stamped when the command inserting it is applied; a new
// revision is how steering collaborators detect a newly set or changed destination
type DestinationComponent struct {
	Kind     DestinationKind
	Pos      vmath.Vec3F
	Target   core.Entity
	Revision uint64
}
