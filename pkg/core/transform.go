package core

import "github.com/go-gl/mathgl/mgl32"

// Transform is a rigid transform: a rotation followed by a translation
type Transform struct {
	Rotation    mgl32.Quat
	Translation mgl32.Vec3
}

// IdentityTransform returns the transform that leaves every point in place
func IdentityTransform() Transform {
	return Transform{Rotation: mgl32.QuatIdent()}
}

// NewTransform creates a transform from a rotation and a translation
func NewTransform(rotation mgl32.Quat, translation mgl32.Vec3) Transform {
	return Transform{Rotation: rotation.Normalize(), Translation: translation}
}

// Translation creates a pure translation
func Translation(v mgl32.Vec3) Transform {
	return Transform{Rotation: mgl32.QuatIdent(), Translation: v}
}

// Rotation creates a pure rotation of angle radians about axis
func Rotation(angle float32, axis mgl32.Vec3) Transform {
	return Transform{Rotation: mgl32.QuatRotate(angle, axis.Normalize())}
}

// TransformPoint rotates then translates p
func (t Transform) TransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	return t.Rotation.Rotate(p).Add(t.Translation)
}

// TransformVector rotates v; translation does not apply to directions
func (t Transform) TransformVector(v mgl32.Vec3) mgl32.Vec3 {
	return t.Rotation.Rotate(v)
}

// Mul returns the transform that applies other first, then t
func (t Transform) Mul(other Transform) Transform {
	return Transform{
		Rotation:    t.Rotation.Mul(other.Rotation).Normalize(),
		Translation: t.TransformPoint(other.Translation),
	}
}

// Inverse returns the transform undoing t
func (t Transform) Inverse() Transform {
	inv := t.Rotation.Inverse()
	return Transform{
		Rotation:    inv,
		Translation: inv.Rotate(t.Translation.Mul(-1)),
	}
}

// Mat4 returns t as a column-major 4x4 matrix
func (t Transform) Mat4() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).Mul4(t.Rotation.Mat4())
}

// ApproxEqual compares two transforms within Tolerance
func (t Transform) ApproxEqual(other Transform) bool {
	return QuatAlmostEqual(t.Rotation, other.Rotation) && Vec3AlmostEqual(t.Translation, other.Translation)
}
