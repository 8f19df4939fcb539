package camera

import (
	"math"
	"testing"

	"github.com/df07/go-voxel-core/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewPose_Direction(t *testing.T) {
	tests := []struct {
		name string
		dir  mgl32.Vec3
	}{
		{"forward", mgl32.Vec3{0, 0, 1}},
		{"right of forward", mgl32.Vec3{-1, 0, 0}},
		{"backward", mgl32.Vec3{0, 0, -1}},
		{"looking down", mgl32.Vec3{0, -1, 1}},
		{"looking up", mgl32.Vec3{1, 2, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pose := NewPose(mgl32.Vec3{}, tt.dir)
			assert.True(t, core.Vec3AlmostEqual(pose.Direction(), tt.dir.Normalize()),
				"direction %v, want %v", pose.Direction(), tt.dir.Normalize())
		})
	}
}

func TestCamera_Right(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1})
	assert.True(t, core.Vec3AlmostEqual(cam.Right(), mgl32.Vec3{-1, 0, 0}), "got %v", cam.Right())
	assert.True(t, core.Vec3AlmostEqual(cam.Up(), core.YAxis), "got %v", cam.Up())
}

func TestCamera_Rotate(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1})

	cam.Rotate(math.Pi/2, 0)
	assert.True(t, core.Vec3AlmostEqual(cam.Direction(), mgl32.Vec3{1, 0, 0}), "yaw: got %v", cam.Direction())

	cam.Rotate(0, math.Pi/4)
	assert.InDelta(t, math.Pi/4, cam.PitchAngle(), 1e-5)
	assert.Less(t, cam.Direction().Y(), float32(0), "positive pitch looks down")

	// Pitch never passes the limit
	cam.Rotate(0, math.Pi)
	assert.InDelta(t, cam.PitchLimit, cam.PitchAngle(), 1e-5)
	cam.Rotate(0, -2*math.Pi)
	assert.InDelta(t, -cam.PitchLimit, cam.PitchAngle(), 1e-5)
}

func TestCamera_ViewMatrix(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{3, 1, -2}, mgl32.Vec3{1, 0, 0})
	ahead := cam.Position.Add(cam.Direction().Mul(5))

	view := cam.ViewMatrix().Mul4x1(ahead.Vec4(1)).Vec3()
	assert.True(t, core.Vec3AlmostEqual(view, mgl32.Vec3{0, 0, -5}), "got %v", view)
}

func TestCamera_Ray(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 2, 0}, mgl32.Vec3{0, -1, 0})
	ray := cam.Ray()
	assert.Equal(t, cam.Position, ray.Origin)
	assert.True(t, core.Vec3AlmostEqual(ray.At(2), mgl32.Vec3{0, 0, 0}), "got %v", ray.At(2))
}
