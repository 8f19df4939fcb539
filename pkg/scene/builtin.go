package scene

import (
	"github.com/df07/go-voxel-core/pkg/ecs"
	"github.com/df07/go-voxel-core/pkg/loaders"
	"github.com/go-gl/mathgl/mgl32"
)

// NewFlatScene creates a 16x16 grass floor
func NewFlatScene() *loaders.SceneFile {
	return &loaders.SceneFile{
		Name:        "flat",
		Description: "16x16 grass floor",
		Camera:      loaders.DefaultCamera,
		Fills: []loaders.FillSpec{
			{From: mgl32.Vec3{-8, 0, -8}, To: mgl32.Vec3{7, 0, 7}, Type: ecs.BlockGrass},
		},
	}
}

// NewPyramidScene creates a stepped stone pyramid on a dirt floor
func NewPyramidScene() *loaders.SceneFile {
	f := &loaders.SceneFile{
		Name:        "pyramid",
		Description: "Stepped stone pyramid on a dirt floor",
		Camera: loaders.CameraSpec{
			Position:  mgl32.Vec3{0, 5, -7},
			Direction: mgl32.Vec3{0, -0.6, 1},
		},
		Fills: []loaders.FillSpec{
			{From: mgl32.Vec3{-6, 0, -6}, To: mgl32.Vec3{6, 0, 6}, Type: ecs.BlockDirt},
		},
	}
	for level := 0; level < 4; level++ {
		half := float32(3 - level)
		y := float32(level + 1)
		f.Fills = append(f.Fills, loaders.FillSpec{
			From: mgl32.Vec3{-half, y, -half},
			To:   mgl32.Vec3{half, y, half},
			Type: ecs.BlockStone,
		})
	}
	return f
}

// NewPillarsScene creates a grid of cobblestone pillars of increasing height on sand
func NewPillarsScene() *loaders.SceneFile {
	f := &loaders.SceneFile{
		Name:        "pillars",
		Description: "Cobblestone pillars of varying height on sand",
		Camera: loaders.CameraSpec{
			Position:  mgl32.Vec3{-1, 5, -7},
			Direction: mgl32.Vec3{0, -0.5, 1},
		},
		Fills: []loaders.FillSpec{
			{From: mgl32.Vec3{-5, 0, -5}, To: mgl32.Vec3{5, 0, 5}, Type: ecs.BlockSand},
		},
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			x := float32(-3 + 2*i)
			z := float32(-3 + 2*j)
			height := float32(1 + (i+j)%4)
			f.Fills = append(f.Fills, loaders.FillSpec{
				From: mgl32.Vec3{x, 1, z},
				To:   mgl32.Vec3{x, height, z},
				Type: ecs.BlockCobblestone,
			})
		}
	}
	return f
}
