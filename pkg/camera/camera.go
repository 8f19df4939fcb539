package camera

import (
	"math"

	"github.com/df07/go-voxel-core/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultPitchLimit keeps free-look just short of straight up or down
const DefaultPitchLimit = 89 * math.Pi / 180

// Pose is a camera position with its yaw and pitch orientations
type Pose struct {
	Position mgl32.Vec3
	Yaw      mgl32.Quat // Rotation about the vertical axis
	Pitch    mgl32.Quat // Rotation about the local horizontal axis
}

// NewPose creates a pose at position looking along direction
func NewPose(position, direction mgl32.Vec3) Pose {
	yaw, pitch := core.YawPitch(direction)
	return Pose{
		Position: position,
		Yaw:      mgl32.QuatRotate(yaw, core.YAxis),
		Pitch:    mgl32.QuatRotate(pitch, core.XAxis),
	}
}

// Orientation returns the combined rotation, pitch applied first
func (p Pose) Orientation() mgl32.Quat {
	return p.Yaw.Mul(p.Pitch).Normalize()
}

// Direction returns the unit facing direction; the rest orientation looks along +Z
func (p Pose) Direction() mgl32.Vec3 {
	return p.Orientation().Rotate(core.ZAxis)
}

// Up returns the camera's unit up vector
func (p Pose) Up() mgl32.Vec3 {
	return p.Orientation().Rotate(core.YAxis)
}

// ApproxEqual compares two poses within core.Tolerance
func (p Pose) ApproxEqual(other Pose) bool {
	return core.Vec3AlmostEqual(p.Position, other.Position) &&
		core.QuatAlmostEqual(p.Yaw, other.Yaw) &&
		core.QuatAlmostEqual(p.Pitch, other.Pitch)
}

// Camera is the live first-person camera
type Camera struct {
	Pose
	PitchLimit float32 // Free-look pitch bound in radians
}

// NewCamera creates a camera at position looking along direction
func NewCamera(position, direction mgl32.Vec3) *Camera {
	return &Camera{
		Pose:       NewPose(position, direction),
		PitchLimit: DefaultPitchLimit,
	}
}

// SetPose replaces position and orientation
func (c *Camera) SetPose(p Pose) {
	c.Pose = p
}

// Right returns the unit vector to the camera's right (direction × up)
func (c *Camera) Right() mgl32.Vec3 {
	return c.Direction().Cross(c.Up()).Normalize()
}

// PitchAngle returns the current pitch in radians, positive looking down
func (c *Camera) PitchAngle() float32 {
	q := c.Pitch.Normalize()
	return core.WrapAngle(2 * float32(math.Atan2(float64(q.V.X()), float64(q.W))))
}

// Rotate applies free-look input: dyaw about the world vertical axis and dpitch about
// the camera's horizontal axis. Pitch is clamped to ±PitchLimit.
func (c *Camera) Rotate(dyaw, dpitch float32) {
	c.Yaw = mgl32.QuatRotate(dyaw, core.YAxis).Mul(c.Yaw).Normalize()

	pitch := c.PitchAngle() + dpitch
	if c.PitchLimit > 0 {
		pitch = mgl32.Clamp(pitch, -c.PitchLimit, c.PitchLimit)
	}
	c.Pitch = mgl32.QuatRotate(pitch, core.XAxis)
}

// Move translates the camera by delta
func (c *Camera) Move(delta mgl32.Vec3) {
	c.Position = c.Position.Add(delta)
}

// ViewMatrix returns the world-to-view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Direction()), c.Up())
}

// Ray returns the ray through the center of the view, used for picking
func (c *Camera) Ray() core.Ray {
	return core.NewRay(c.Position, c.Direction())
}
