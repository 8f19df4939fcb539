package ecs

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/df07/go-voxel-core/pkg/core"
	"github.com/df07/go-voxel-core/pkg/geometry"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// ErrDeadEntity is returned when an operation targets a removed or unknown entity
var ErrDeadEntity = errors.New("entity is not alive")

// unitBox is the local bounding box of a unit cube centered on its origin
var unitBox = core.NewAabb(mgl32.Vec3{}, mgl32.Vec3{0.5, 0.5, 0.5})

// Store is an arena of entities and their components. Component presence is tracked
// with bitsets indexed by entity slot. Any change that affects bounds or membership
// bumps Version so indexes built over the store know when to rebuild.
type Store struct {
	generations []uint32
	free        []uint32

	alive        *bitset.BitSet
	hasTransform *bitset.BitSet
	hasAabb      *bitset.BitSet
	hasGeometry  *bitset.BitSet
	hasBlock     *bitset.BitSet
	dirty        *bitset.BitSet // Transform or geometry changed since bounds were computed

	transforms []core.Transform
	aabbs      []core.Aabb
	geometries []geometry.Primitive
	blocks     []BlockType

	version uint64
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		alive:        bitset.New(0),
		hasTransform: bitset.New(0),
		hasAabb:      bitset.New(0),
		hasGeometry:  bitset.New(0),
		hasBlock:     bitset.New(0),
		dirty:        bitset.New(0),
	}
}

// Version increases whenever an entity is created, removed, moved or re-bounded
func (s *Store) Version() uint64 {
	return s.version
}

// Len returns the number of live entities
func (s *Store) Len() int {
	return int(s.alive.Count())
}

// Alive reports whether e refers to a live entity
func (s *Store) Alive(e Entity) bool {
	return int(e.Index) < len(s.generations) &&
		s.generations[e.Index] == e.Generation &&
		s.alive.Test(uint(e.Index))
}

// NewEntity creates an entity with no components
func (s *Store) NewEntity() Entity {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.generations))
		s.generations = append(s.generations, 0)
		s.transforms = append(s.transforms, core.Transform{})
		s.aabbs = append(s.aabbs, core.Aabb{})
		s.geometries = append(s.geometries, nil)
		s.blocks = append(s.blocks, BlockNone)
	}
	s.alive.Set(uint(idx))
	s.version++
	return Entity{Index: idx, Generation: s.generations[idx]}
}

// NewWithTransform creates an entity with only a transform
func (s *Store) NewWithTransform(t core.Transform) Entity {
	e := s.NewEntity()
	s.setTransform(e.Index, t)
	return e
}

// NewUnitCube creates a unit cube entity with its transform, geometry and bounds set
func (s *Store) NewUnitCube(t core.Transform) Entity {
	e := s.NewEntity()
	s.transforms[e.Index] = t
	s.hasTransform.Set(uint(e.Index))
	s.geometries[e.Index] = geometry.NewUnitCube(1)
	s.hasGeometry.Set(uint(e.Index))
	s.aabbs[e.Index] = s.computeBounds(e.Index)
	s.hasAabb.Set(uint(e.Index))
	return e
}

// NewBlock creates a unit cube entity tagged with a block type
func (s *Store) NewBlock(t core.Transform, block BlockType) Entity {
	e := s.NewUnitCube(t)
	s.blocks[e.Index] = block
	s.hasBlock.Set(uint(e.Index))
	return e
}

// Clone creates a new entity carrying copies of e's components
func (s *Store) Clone(e Entity) (Entity, error) {
	if !s.Alive(e) {
		return Entity{}, errors.Wrapf(ErrDeadEntity, "clone %v", e)
	}
	c := s.NewEntity()
	src, dst := uint(e.Index), uint(c.Index)
	if s.hasTransform.Test(src) {
		s.transforms[dst] = s.transforms[src]
		s.hasTransform.Set(dst)
	}
	if s.hasAabb.Test(src) {
		s.aabbs[dst] = s.aabbs[src]
		s.hasAabb.Set(dst)
	}
	if s.hasGeometry.Test(src) {
		s.geometries[dst] = s.geometries[src]
		s.hasGeometry.Set(dst)
	}
	if s.hasBlock.Test(src) {
		s.blocks[dst] = s.blocks[src]
		s.hasBlock.Set(dst)
	}
	if s.dirty.Test(src) {
		s.dirty.Set(dst)
	}
	return c, nil
}

// Remove deletes e and frees its slot. Removing a dead entity is a no-op.
func (s *Store) Remove(e Entity) bool {
	if !s.Alive(e) {
		return false
	}
	idx := uint(e.Index)
	s.alive.Clear(idx)
	s.hasTransform.Clear(idx)
	s.hasAabb.Clear(idx)
	s.hasGeometry.Clear(idx)
	s.hasBlock.Clear(idx)
	s.dirty.Clear(idx)
	s.geometries[idx] = nil
	s.blocks[idx] = BlockNone
	s.generations[idx]++
	s.free = append(s.free, e.Index)
	s.version++
	return true
}

// Transform returns e's transform
func (s *Store) Transform(e Entity) (core.Transform, bool) {
	if !s.Alive(e) || !s.hasTransform.Test(uint(e.Index)) {
		return core.Transform{}, false
	}
	return s.transforms[e.Index], true
}

// SetTransform replaces or adds e's transform and marks its bounds dirty
func (s *Store) SetTransform(e Entity, t core.Transform) error {
	if !s.Alive(e) {
		return errors.Wrapf(ErrDeadEntity, "set transform on %v", e)
	}
	s.setTransform(e.Index, t)
	return nil
}

func (s *Store) setTransform(idx uint32, t core.Transform) {
	s.transforms[idx] = t
	s.hasTransform.Set(uint(idx))
	s.dirty.Set(uint(idx))
	s.version++
}

// Aabb returns e's world-space bounding box
func (s *Store) Aabb(e Entity) (core.Aabb, bool) {
	if !s.Alive(e) || !s.hasAabb.Test(uint(e.Index)) {
		return core.Aabb{}, false
	}
	return s.aabbs[e.Index], true
}

// SetAabb replaces or adds e's bounding box
func (s *Store) SetAabb(e Entity, box core.Aabb) error {
	if !s.Alive(e) {
		return errors.Wrapf(ErrDeadEntity, "set aabb on %v", e)
	}
	s.aabbs[e.Index] = box
	s.hasAabb.Set(uint(e.Index))
	s.version++
	return nil
}

// Geometry returns e's primitive geometry
func (s *Store) Geometry(e Entity) (geometry.Primitive, bool) {
	if !s.Alive(e) || !s.hasGeometry.Test(uint(e.Index)) {
		return nil, false
	}
	return s.geometries[e.Index], true
}

// SetGeometry replaces or adds e's geometry and marks its bounds dirty
func (s *Store) SetGeometry(e Entity, g geometry.Primitive) error {
	if !s.Alive(e) {
		return errors.Wrapf(ErrDeadEntity, "set geometry on %v", e)
	}
	if g == nil {
		return errors.New("set geometry: nil primitive")
	}
	s.geometries[e.Index] = g
	s.hasGeometry.Set(uint(e.Index))
	s.dirty.Set(uint(e.Index))
	s.version++
	return nil
}

// Block returns e's block type
func (s *Store) Block(e Entity) (BlockType, bool) {
	if !s.Alive(e) || !s.hasBlock.Test(uint(e.Index)) {
		return BlockNone, false
	}
	return s.blocks[e.Index], true
}

// Position returns the translation of e's transform
func (s *Store) Position(e Entity) (mgl32.Vec3, bool) {
	t, ok := s.Transform(e)
	if !ok {
		return mgl32.Vec3{}, false
	}
	return t.Translation, true
}

// PositionAabb returns the center of e's bounding box
func (s *Store) PositionAabb(e Entity) (mgl32.Vec3, bool) {
	box, ok := s.Aabb(e)
	if !ok {
		return mgl32.Vec3{}, false
	}
	return box.Center, true
}

// Each calls fn for every live entity in slot order until fn returns false
func (s *Store) Each(fn func(Entity) bool) {
	for i, ok := s.alive.NextSet(0); ok; i, ok = s.alive.NextSet(i + 1) {
		if !fn(Entity{Index: uint32(i), Generation: s.generations[i]}) {
			return
		}
	}
}

// Blocks returns every live block entity in slot order
func (s *Store) Blocks() []Entity {
	var out []Entity
	for i, ok := s.hasBlock.NextSet(0); ok; i, ok = s.hasBlock.NextSet(i + 1) {
		out = append(out, Entity{Index: uint32(i), Generation: s.generations[i]})
	}
	return out
}

// Dirty returns the number of entities waiting for a bounds update
func (s *Store) Dirty() int {
	return int(s.dirty.Count())
}

// computeBounds derives the world bounds of a slot: the primitive's bounding box when
// it has geometry, otherwise the unit box moved to the transform's translation.
func (s *Store) computeBounds(idx uint32) core.Aabb {
	t := s.transforms[idx]
	if s.hasGeometry.Test(uint(idx)) {
		return s.geometries[idx].BoundingBox(t)
	}
	return unitBox.Transform(t)
}
