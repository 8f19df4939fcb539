package ecs

import "github.com/df07/go-voxel-core/pkg/core"

// BoundsSystem recomputes bounding boxes for entities whose transform or geometry
// changed since the last run
type BoundsSystem struct {
	logger core.Logger
}

// NewBoundsSystem creates a bounds system. A nil logger disables logging.
func NewBoundsSystem(logger core.Logger) *BoundsSystem {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &BoundsSystem{logger: logger}
}

// Run updates every dirty entity that has a transform and clears the dirty set.
// Returns the number of bounding boxes written.
func (b *BoundsSystem) Run(s *Store) int {
	updated := 0
	for i, ok := s.dirty.NextSet(0); ok; i, ok = s.dirty.NextSet(i + 1) {
		if !s.alive.Test(i) || !s.hasTransform.Test(i) {
			continue
		}
		s.aabbs[i] = s.computeBounds(uint32(i))
		s.hasAabb.Set(i)
		updated++
	}
	s.dirty.ClearAll()
	if updated > 0 {
		s.version++
		b.logger.Printf("bounds: updated %d entities\n", updated)
	}
	return updated
}
