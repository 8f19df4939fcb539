package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Tolerance is the absolute tolerance used by the almost-equal predicates
const Tolerance float32 = 1e-5

// Axis unit vectors. Y is up, Z is forward, X is right.
var (
	XAxis = mgl32.Vec3{1, 0, 0}
	YAxis = mgl32.Vec3{0, 1, 0}
	ZAxis = mgl32.Vec3{0, 0, 1}
)

// AlmostEqual reports whether a and b differ by at most Tolerance
func AlmostEqual(a, b float32) bool {
	if a == b {
		return true // also covers matching infinities
	}
	return mgl32.Abs(a-b) <= Tolerance
}

// Vec3AlmostEqual compares two vectors componentwise with AlmostEqual
func Vec3AlmostEqual(a, b mgl32.Vec3) bool {
	return AlmostEqual(a[0], b[0]) && AlmostEqual(a[1], b[1]) && AlmostEqual(a[2], b[2])
}

// QuatAlmostEqual reports whether two unit quaternions describe the same orientation.
// q and -q are treated as equal.
func QuatAlmostEqual(a, b mgl32.Quat) bool {
	dot := mgl32.Abs(a.Normalize().Dot(b.Normalize()))
	return dot >= 1-Tolerance
}

// MinVec3 returns the componentwise minimum of a and b
func MinVec3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(math.Min(float64(a[0]), float64(b[0]))),
		float32(math.Min(float64(a[1]), float64(b[1]))),
		float32(math.Min(float64(a[2]), float64(b[2]))),
	}
}

// MaxVec3 returns the componentwise maximum of a and b
func MaxVec3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(math.Max(float64(a[0]), float64(b[0]))),
		float32(math.Max(float64(a[1]), float64(b[1]))),
		float32(math.Max(float64(a[2]), float64(b[2]))),
	}
}

// WrapAngle moves an angle into (-π, π] by adding or subtracting 2π once.
// Inputs further than 3π from zero stay outside the range.
func WrapAngle(angle float32) float32 {
	if angle > math.Pi {
		return angle - 2*math.Pi
	} else if angle <= -math.Pi {
		return angle + 2*math.Pi
	}
	return angle
}

// YawPitch returns the yaw (about +Y, zero along +Z) and pitch (positive looking down)
// of a direction. A zero vector has yaw and pitch 0.
func YawPitch(dir mgl32.Vec3) (yaw, pitch float32) {
	if dir.Len() == 0 {
		return 0, 0
	}
	dir = dir.Normalize()
	yaw = float32(math.Atan2(float64(dir.X()), float64(dir.Z())))
	pitch = float32(math.Asin(float64(mgl32.Clamp(-dir.Y(), -1, 1))))
	return yaw, pitch
}

// YawPitchDiff returns the signed yaw and pitch needed to turn from v1 to v2, in radians.
// The yaw difference is wrapped into (-π, π].
func YawPitchDiff(v1, v2 mgl32.Vec3) (dyaw, dpitch float32) {
	y1, p1 := YawPitch(v1)
	y2, p2 := YawPitch(v2)
	return WrapAngle(y2 - y1), p2 - p1
}

// CosineEase maps t to (1 - cos(πt)) / 2. It is not clamped: values outside [0, 1]
// follow the cosine curve.
func CosineEase(t float32) float32 {
	return float32((1 - math.Cos(math.Pi*float64(t))) / 2)
}

// CosineLerp interpolates from a to b with ease-in/ease-out
func CosineLerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(CosineEase(t)))
}

// EasedSlerp spherically interpolates between two unit quaternions at the eased parameter
func EasedSlerp(a, b mgl32.Quat, t float32) mgl32.Quat {
	return mgl32.QuatSlerp(a, b, CosineEase(t))
}

// AngleBetween returns the rotation angle, in radians, taking orientation a to b
// along the shorter arc.
func AngleBetween(a, b mgl32.Quat) float32 {
	dot := mgl32.Clamp(mgl32.Abs(a.Normalize().Dot(b.Normalize())), 0, 1)
	return 2 * float32(math.Acos(float64(dot)))
}
