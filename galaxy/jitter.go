package galaxy

import (
	"encoding/binary"
	"math/rand/v2"

	"lukechampine.com/blake3"

	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/vmath"
)

// Salts keep independent draws for the same entity and frame apart
const (
	SaltRouteApproach uint64 = iota + 1
	SaltGateApproach
	SaltGateExit
	SaltSpawn
	SaltPilot
)

// Jitter derives deterministic random sources from (seed, entity, frame, salt)
// Every draw hashes its own key, so parallel per-entity passes need no shared state
type Jitter struct {
	seed uint64
}

// NewJitter creates a jitter source for a simulation seed
func NewJitter(seed uint64) Jitter {
	return Jitter{seed: seed}
}

// Seed returns the simulation seed
func (j Jitter) Seed() uint64 {
	return j.seed
}

// Rand returns a PCG source keyed by blake3 over the draw coordinates
func (j Jitter) Rand(e core.Entity, frame int64, salt uint64) *rand.Rand {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:], j.seed)
	binary.LittleEndian.PutUint64(buf[8:], uint64(e))
	binary.LittleEndian.PutUint64(buf[16:], uint64(frame))
	binary.LittleEndian.PutUint64(buf[24:], salt)

	sum := blake3.Sum256(buf[:])
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(sum[0:8]),
		binary.LittleEndian.Uint64(sum[8:16]),
	))
}

// Around is AroundPos with a keyed source
func (j Jitter) Around(e core.Entity, frame int64, salt uint64, pos vmath.Vec3F, radiusMeters float64) vmath.Vec3F {
	return AroundPos(j.Rand(e, frame, salt), pos, radiusMeters)
}
