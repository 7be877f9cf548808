package core

import "fmt"

// Entity is a generation-checked handle into the world's flat entity store
// Low 32 bits hold the slot index, high 32 bits the slot generation
// Zero value is the null handle; issued handles always carry generation >= 1
type Entity uint64

// NullEntity is the zero handle, never issued by the allocator
const NullEntity Entity = 0

// NewEntity packs a slot index and generation into a handle
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation the handle was issued with
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// IsNull reports whether the handle is the null handle
func (e Entity) IsNull() bool {
	return e == NullEntity
}

func (e Entity) String() string {
	if e.IsNull() {
		return "entity(null)"
	}
	return fmt.Sprintf("entity(%d:%d)", e.Index(), e.Generation())
}
