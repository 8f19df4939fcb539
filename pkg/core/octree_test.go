package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitItem returns a unit cube item whose min corner is at (x, y, z)
func unitItem(id uint64, x, y, z float32) Item {
	return Item{ID: id, Bounds: NewAabbMinMax(mgl32.Vec3{x, y, z}, mgl32.Vec3{x + 1, y + 1, z + 1})}
}

func TestOctree_LeafThresholdBoundary(t *testing.T) {
	// Test behavior around the leaf threshold (8 items)

	// Create exactly leafThreshold items - should create single leaf
	items := make([]Item, 8)
	for i := 0; i < 8; i++ {
		items[i] = unitItem(uint64(i), float32(i), 0, 0)
	}

	tree := NewOctree(items, 0)
	stats := tree.getStats()

	if stats.totalNodes != 1 {
		t.Errorf("Expected 1 node for %d items, got %d", len(items), stats.totalNodes)
	}
	if stats.leafNodes != 1 {
		t.Errorf("Expected 1 leaf node for %d items, got %d", len(items), stats.leafNodes)
	}

	// Test with leafThreshold + 1 items - should split
	items = append(items, unitItem(8, 8, 0, 0))

	tree = NewOctree(items, 0)
	stats = tree.getStats()

	if stats.totalNodes == 1 {
		t.Errorf("Expected split for %d items, but got single node", len(items))
	}
	if stats.leafNodes < 2 {
		t.Errorf("Expected at least 2 leaf nodes after split, got %d", stats.leafNodes)
	}
	if stats.totalItems != len(items) {
		t.Errorf("Expected %d items in leaves, got %d", len(items), stats.totalItems)
	}
}

func TestOctree_EmptyAndSingleItem(t *testing.T) {
	tree := NewOctree(nil, 0)
	if tree.Root != nil {
		t.Error("Expected nil root for empty octree")
	}

	ray := NewRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0})
	if _, _, isHit := tree.Hit(ray, 0.001, 1000); isHit {
		t.Error("Expected no hit for empty octree")
	}
	if found := tree.Query(NewInfiniteAabb()); found != nil {
		t.Errorf("Expected no items, got %v", found)
	}

	tree = NewOctree([]Item{unitItem(7, 2, 0, 0)}, 0)
	item, tHit, isHit := tree.Hit(ray, 0.001, 1000)
	require.True(t, isHit)
	assert.Equal(t, uint64(7), item.ID)
	assert.InDelta(t, 2, tHit, 1e-5)
	assert.Equal(t, 1, tree.Len())
}

func TestOctree_ClosestHit(t *testing.T) {
	// A 4x4x4 grid of unit cubes with gaps between them
	var items []Item
	id := uint64(0)
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			for z := 0; z < 4; z++ {
				items = append(items, unitItem(id, float32(x*2), float32(y*2), float32(z*2)))
				id++
			}
		}
	}
	tree := NewOctree(items, 0)
	require.Greater(t, tree.getStats().maxDepth, 0)

	tests := []struct {
		name      string
		ray       Ray
		expectMin mgl32.Vec3
		expectT   float32
	}{
		{"along +X through first row", NewRay(mgl32.Vec3{-5, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}), mgl32.Vec3{0, 0, 0}, 5},
		{"along -X through first row", NewRay(mgl32.Vec3{20, 0.5, 0.5}, mgl32.Vec3{-1, 0, 0}), mgl32.Vec3{6, 0, 0}, 13},
		{"down onto top layer", NewRay(mgl32.Vec3{4.5, 30, 2.5}, mgl32.Vec3{0, -1, 0}), mgl32.Vec3{4, 6, 2}, 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, tHit, ok := tree.Hit(tt.ray, 0.001, 1000)
			require.True(t, ok)
			assert.True(t, Vec3AlmostEqual(item.Bounds.Min(), tt.expectMin), "hit %v", item.Bounds.Min())
			assert.InDelta(t, tt.expectT, tHit, 1e-4)
		})
	}

	// Through the gaps
	_, _, ok := tree.Hit(NewRay(mgl32.Vec3{-5, 1.5, 1.5}, mgl32.Vec3{1, 0, 0}), 0.001, 1000)
	assert.False(t, ok)
}

func TestOctree_Query(t *testing.T) {
	var items []Item
	for i := 0; i < 30; i++ {
		items = append(items, unitItem(uint64(i), float32(i*2), 0, 0))
	}
	tree := NewOctree(items, 0)

	found := tree.Query(NewAabbMinMax(mgl32.Vec3{3.5, 0, 0}, mgl32.Vec3{8.5, 1, 1}))
	ids := make(map[uint64]bool)
	for _, item := range found {
		ids[item.ID] = true
	}
	assert.Equal(t, map[uint64]bool{2: true, 3: true, 4: true}, ids)
}

func TestOctree_IdenticalBounds(t *testing.T) {
	// Items sharing one center cannot be separated; the build must still terminate
	items := make([]Item, 20)
	for i := range items {
		items[i] = unitItem(uint64(i), 0, 0, 0)
	}

	tree := NewOctree(items, 0)
	stats := tree.getStats()
	if stats.totalItems != 20 {
		t.Errorf("Expected 20 items, got %d", stats.totalItems)
	}

	item, _, ok := tree.Hit(NewRay(mgl32.Vec3{-1, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}), 0.001, 1000)
	if !ok {
		t.Fatal("Expected hit")
	}
	// Ties keep the first item
	if item.ID != 0 {
		t.Errorf("Expected item 0, got %d", item.ID)
	}
}

func TestOctree_InfiniteItemStaysInLeaf(t *testing.T) {
	items := []Item{{ID: 99, Bounds: NewInfiniteAabb()}}
	for i := 0; i < 12; i++ {
		items = append(items, unitItem(uint64(i), float32(i), 0, 0))
	}

	tree := NewOctree(items, 0)
	require.Equal(t, 1, tree.getStats().totalNodes)
	assert.Len(t, tree.Query(unitItem(0, 100, 100, 100).Bounds), 1)
}
