package scene

import (
	"testing"

	"github.com/df07/go-voxel-core/pkg/camera"
	"github.com/df07/go-voxel-core/pkg/core"
	"github.com/df07/go-voxel-core/pkg/ecs"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRowScene(t *testing.T) (*Scene, []ecs.Entity) {
	t.Helper()
	s := New("row", camera.NewPose(mgl32.Vec3{0, 2, -5}, core.ZAxis))
	var blocks []ecs.Entity
	for x := 0; x < 3; x++ {
		blocks = append(blocks, s.AddBlock(mgl32.Vec3{float32(x), 0, 0}, ecs.BlockStone))
	}
	return s, blocks
}

func TestScene_Pick(t *testing.T) {
	s, blocks := newRowScene(t)

	tests := []struct {
		name         string
		ray          core.Ray
		expected     ecs.Entity
		expectedFace core.Face
		expectedT    float32
	}{
		{"from above", core.NewRay(mgl32.Vec3{1, 5, 0}, mgl32.Vec3{0, -1, 0}), blocks[1], core.FaceTop, 4.5},
		{"from the left", core.NewRay(mgl32.Vec3{-5, 0, 0}, mgl32.Vec3{1, 0, 0}), blocks[0], core.FaceLeft, 4.5},
		{"from the right", core.NewRay(mgl32.Vec3{7, 0.2, 0.1}, mgl32.Vec3{-1, 0, 0}), blocks[2], core.FaceRight, 4.5},
		{"from behind", core.NewRay(mgl32.Vec3{2, 0, -3}, mgl32.Vec3{0, 0, 1}), blocks[2], core.FaceBack, 2.5},
		{"from inside", core.NewRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}), blocks[0], core.FaceBack, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pick, ok := s.Pick(tt.ray, 100)
			require.True(t, ok)
			assert.Equal(t, tt.expected, pick.Entity)
			assert.Equal(t, tt.expectedFace, pick.Face)
			assert.InDelta(t, tt.expectedT, pick.Distance, 1e-4)
		})
	}

	_, ok := s.Pick(core.NewRay(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, 1, 0}), 100)
	assert.False(t, ok, "looking away")

	_, ok = s.Pick(core.NewRay(mgl32.Vec3{-5, 0, 0}, mgl32.Vec3{1, 0, 0}), 4)
	assert.False(t, ok, "out of reach")
}

func TestScene_IndexRebuildsOnChange(t *testing.T) {
	s, _ := newRowScene(t)

	first := s.Index()
	assert.Equal(t, 3, first.Len())
	assert.Same(t, first, s.Index(), "unchanged store reuses the tree")

	s.AddBlock(mgl32.Vec3{0, 1, 0}, ecs.BlockDirt)
	second := s.Index()
	assert.NotSame(t, first, second)
	assert.Equal(t, 4, second.Len())

	bounds, ok := s.Bounds()
	require.True(t, ok)
	assert.True(t, core.Vec3AlmostEqual(bounds.Min(), mgl32.Vec3{-0.5, -0.5, -0.5}))
	assert.True(t, core.Vec3AlmostEqual(bounds.Max(), mgl32.Vec3{2.5, 1.5, 0.5}))
}

func TestScene_PlaceAdjacent(t *testing.T) {
	s, blocks := newRowScene(t)

	pick, ok := s.Pick(core.NewRay(mgl32.Vec3{1, 5, 0}, mgl32.Vec3{0, -1, 0}), 100)
	require.True(t, ok)

	placed, err := s.PlaceAdjacent(pick, ecs.BlockGrass)
	require.NoError(t, err)
	pos, _ := s.Store.Position(placed)
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, pos)

	found, ok := s.BlockAt(mgl32.Vec3{1, 1, 0})
	require.True(t, ok)
	assert.Equal(t, placed, found)

	// The picked face now has a neighbour
	_, err = s.PlaceAdjacent(pick, ecs.BlockGrass)
	assert.True(t, errors.Is(err, ErrOccupied), "got %v", err)

	// Picking the same column again lands on the new block
	pick, ok = s.Pick(core.NewRay(mgl32.Vec3{1, 5, 0}, mgl32.Vec3{0, -1, 0}), 100)
	require.True(t, ok)
	assert.Equal(t, placed, pick.Entity)

	// Placing against the side of the row
	side := PickResult{Entity: blocks[0], Face: core.FaceLeft}
	placed, err = s.PlaceAdjacent(side, ecs.BlockSand)
	require.NoError(t, err)
	pos, _ = s.Store.Position(placed)
	assert.Equal(t, mgl32.Vec3{-1, 0, 0}, pos)

	_, err = s.PlaceAdjacent(PickResult{Entity: blocks[0]}, ecs.BlockSand)
	assert.Error(t, err, "no face")
}

func TestScene_RemoveBlock(t *testing.T) {
	s, blocks := newRowScene(t)
	ray := core.NewRay(mgl32.Vec3{-5, 0, 0}, mgl32.Vec3{1, 0, 0})

	assert.True(t, s.RemoveBlock(blocks[0]))
	assert.False(t, s.RemoveBlock(blocks[0]))

	pick, ok := s.Pick(ray, 100)
	require.True(t, ok)
	assert.Equal(t, blocks[1], pick.Entity, "ray passes the removed block")

	_, ok = s.BlockAt(mgl32.Vec3{0, 0, 0})
	assert.False(t, ok)

	bare := s.Store.NewWithTransform(core.IdentityTransform())
	assert.False(t, s.RemoveBlock(bare), "only blocks are removed")
}

func TestScene_Meshes(t *testing.T) {
	s, blocks := newRowScene(t)

	meshes, err := s.Meshes()
	require.NoError(t, err)
	require.Len(t, meshes, 3)
	for _, m := range meshes {
		assert.Equal(t, "stone", m.Material)
		assert.Len(t, m.Positions, 36)
		assert.NotNil(t, m.Color)
	}

	selection, ok := s.SelectionMesh(blocks[1])
	require.True(t, ok)
	assert.True(t, selection.Lines)
}
