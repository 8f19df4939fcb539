package ecs

import "fmt"

// Entity is a generational handle into a Store. A handle stays invalid after its
// entity is removed, even when the slot is reused.
type Entity struct {
	Index      uint32
	Generation uint32
}

// ID packs the handle into a single integer, used as the octree item id
func (e Entity) ID() uint64 {
	return uint64(e.Generation)<<32 | uint64(e.Index)
}

// EntityFromID reverses ID
func EntityFromID(id uint64) Entity {
	return Entity{Index: uint32(id), Generation: uint32(id >> 32)}
}

func (e Entity) String() string {
	return fmt.Sprintf("Entity(%d:%d)", e.Index, e.Generation)
}
