package camera

import (
	"math"
	"testing"

	"github.com/df07/go-voxel-core/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yawDirection(degrees float64) mgl32.Vec3 {
	rad := degrees * math.Pi / 180
	return mgl32.Vec3{float32(math.Sin(rad)), 0, float32(math.Cos(rad))}
}

func TestNewAnimation_RejectsNonPositiveDuration(t *testing.T) {
	pose := NewPose(mgl32.Vec3{}, core.ZAxis)
	for _, d := range []float32{0, -1, float32(math.NaN())} {
		anim, err := NewAnimation(pose, mgl32.Vec3{1, 0, 0}, core.ZAxis, 0, d)
		assert.Nil(t, anim)
		assert.True(t, errors.Is(err, ErrNonPositiveDuration), "duration %v: got %v", d, err)
	}
}

func TestAnimation_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		start     Pose
		targetPos mgl32.Vec3
		targetDir mgl32.Vec3
	}{
		{"turn and move", NewPose(mgl32.Vec3{0, 1, 0}, core.ZAxis), mgl32.Vec3{5, 2, -3}, mgl32.Vec3{1, -1, 0}},
		{"look up", NewPose(mgl32.Vec3{}, mgl32.Vec3{0, -1, 1}), mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 1}},
		{"turn around", NewPose(mgl32.Vec3{}, core.ZAxis), mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0.01, 0, -1}},
		{"no change", NewPose(mgl32.Vec3{2, 2, 2}, core.XAxis), mgl32.Vec3{2, 2, 2}, core.XAxis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anim, err := NewAnimation(tt.start, tt.targetPos, tt.targetDir, 10, 2)
			require.NoError(t, err)

			assert.InDelta(t, 12, anim.EndTime(), 1e-6)
			assert.Equal(t, tt.start, anim.StartPose())
			assert.True(t, anim.At(10).ApproxEqual(anim.StartPose()), "pose at start time differs from start pose")
			assert.True(t, anim.At(12).ApproxEqual(anim.EndPose()), "pose at end time differs from end pose")

			end := anim.EndPose()
			assert.True(t, core.Vec3AlmostEqual(end.Position, tt.targetPos), "end position %v", end.Position)
			assert.True(t, core.Vec3AlmostEqual(end.Direction(), tt.targetDir.Normalize()),
				"end direction %v, want %v", end.Direction(), tt.targetDir.Normalize())
		})
	}
}

func TestAnimation_YawTakesShortestPath(t *testing.T) {
	tests := []struct {
		name          string
		from, to      float64 // yaw in degrees
		expectedTotal float64
	}{
		{"across the wrap", 170, -170, 20},
		{"across the wrap reversed", -170, 170, 20},
		{"quarter turn", 0, 90, 90},
		{"just under half", 10, -160, 170},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := NewPose(mgl32.Vec3{}, yawDirection(tt.from))
			anim, err := NewAnimation(start, mgl32.Vec3{}, yawDirection(tt.to), 0, 1)
			require.NoError(t, err)

			const steps = 100
			var travelled float64
			prev, _ := core.YawPitch(anim.At(0).Direction())
			for i := 1; i <= steps; i++ {
				cur, _ := core.YawPitch(anim.At(float32(i) / steps).Direction())
				travelled += math.Abs(float64(core.WrapAngle(cur - prev)))
				prev = cur
			}

			assert.InDelta(t, tt.expectedTotal*math.Pi/180, travelled, 1e-3)
			assert.LessOrEqual(t, travelled, math.Pi+1e-3)
			assert.InDelta(t, tt.expectedTotal*math.Pi/180, core.AngleBetween(anim.StartYaw, anim.EndYaw), 1e-3)
		})
	}
}

func TestAnimation_EasedProgress(t *testing.T) {
	start := NewPose(mgl32.Vec3{}, core.ZAxis)
	anim, err := NewAnimation(start, mgl32.Vec3{10, 0, 0}, core.ZAxis, 0, 4)
	require.NoError(t, err)

	assert.InDelta(t, 5, anim.At(2).Position.X(), 1e-4, "midpoint")
	assert.Less(t, anim.At(1).Position.X(), float32(2.5), "slow start")
	assert.Greater(t, anim.At(3).Position.X(), float32(7.5), "slow finish")
}

func TestAnimation_NotClamped(t *testing.T) {
	start := NewPose(mgl32.Vec3{}, core.ZAxis)
	anim, err := NewAnimation(start, mgl32.Vec3{10, 0, 0}, core.ZAxis, 0, 2)
	require.NoError(t, err)

	assert.False(t, anim.Finished(1.999))
	assert.True(t, anim.Finished(2))

	// Past the end the cosine curve swings back instead of holding the end pose
	late := anim.At(3)
	assert.False(t, core.Vec3AlmostEqual(late.Position, anim.EndPose().Position), "got %v", late.Position)
	assert.InDelta(t, 1.5, anim.Progress(3), 1e-6)
}
