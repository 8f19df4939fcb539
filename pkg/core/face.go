package core

import "github.com/go-gl/mathgl/mgl32"

// Face identifies one of the six faces of an Aabb
type Face int

const (
	FaceNone Face = iota
	FaceTop
	FaceBottom
	FaceFront
	FaceBack
	FaceLeft
	FaceRight
)

var faceNames = [...]string{
	FaceNone:   "none",
	FaceTop:    "top",
	FaceBottom: "bottom",
	FaceFront:  "front",
	FaceBack:   "back",
	FaceLeft:   "left",
	FaceRight:  "right",
}

func (f Face) String() string {
	if f < FaceNone || f > FaceRight {
		return "unknown"
	}
	return faceNames[f]
}

// Normal returns the outward unit normal of the face, or the zero vector for FaceNone
func (f Face) Normal() mgl32.Vec3 {
	switch f {
	case FaceTop:
		return YAxis
	case FaceBottom:
		return YAxis.Mul(-1)
	case FaceFront:
		return ZAxis
	case FaceBack:
		return ZAxis.Mul(-1)
	case FaceLeft:
		return XAxis.Mul(-1)
	case FaceRight:
		return XAxis
	default:
		return mgl32.Vec3{}
	}
}

// axis returns the index of the axis the face is perpendicular to and whether its
// normal points along the positive direction
func (f Face) axis() (int, bool) {
	switch f {
	case FaceTop:
		return 1, true
	case FaceBottom:
		return 1, false
	case FaceFront:
		return 2, true
	case FaceBack:
		return 2, false
	case FaceLeft:
		return 0, false
	default:
		return 0, true
	}
}

// Opposite returns the face on the other side of the box
func (f Face) Opposite() Face {
	switch f {
	case FaceTop:
		return FaceBottom
	case FaceBottom:
		return FaceTop
	case FaceFront:
		return FaceBack
	case FaceBack:
		return FaceFront
	case FaceLeft:
		return FaceRight
	case FaceRight:
		return FaceLeft
	default:
		return FaceNone
	}
}

// faceOrder is the order in which Aabb.Face tests the planes. On edges and corners the
// first matching face wins.
var faceOrder = [...]Face{FaceTop, FaceBottom, FaceFront, FaceBack, FaceLeft, FaceRight}
