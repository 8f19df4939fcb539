package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Aabb is an axis-aligned bounding box stored as a center and non-negative half-extents.
// Aabb is an immutable value; every operation returns a new box.
type Aabb struct {
	Center  mgl32.Vec3 // Geometric center
	Extents mgl32.Vec3 // Half-widths along each axis, always >= 0
}

// NewAabb creates a box from its center and half-extents.
// It panics if any extent is negative or NaN.
func NewAabb(center, extents mgl32.Vec3) Aabb {
	for _, e := range extents {
		if !(e >= 0) {
			panic(errors.Wrapf(ErrNegativeExtents, "extents %v", extents))
		}
	}
	return Aabb{Center: center, Extents: extents}
}

// NewAabbMinMax creates a box spanning two corner points given in any order.
// An axis with an infinite bound becomes unbounded in both directions.
func NewAabbMinMax(a, b mgl32.Vec3) Aabb {
	min := MinVec3(a, b)
	max := MaxVec3(a, b)

	var box Aabb
	for axis := 0; axis < 3; axis++ {
		if math.IsInf(float64(min[axis]), 0) || math.IsInf(float64(max[axis]), 0) {
			box.Center[axis] = 0
			box.Extents[axis] = float32(math.Inf(1))
			continue
		}
		box.Center[axis] = (min[axis] + max[axis]) / 2
		box.Extents[axis] = (max[axis] - min[axis]) / 2
	}
	return box
}

// NewAabbFromPoints creates the smallest box containing all points.
// It returns ErrEmptyMerge when no points are given.
func NewAabbFromPoints(points ...mgl32.Vec3) (Aabb, error) {
	if len(points) == 0 {
		return Aabb{}, ErrEmptyMerge
	}

	min := points[0]
	max := points[0]
	for _, p := range points[1:] {
		min = MinVec3(min, p)
		max = MaxVec3(max, p)
	}
	return NewAabbMinMax(min, max), nil
}

// NewInfiniteAabb returns an unbounded box, used as a world boundary sentinel
func NewInfiniteAabb() Aabb {
	inf := float32(math.Inf(1))
	return Aabb{Extents: mgl32.Vec3{inf, inf, inf}}
}

// IsInfinite reports whether any extent is infinite
func (a Aabb) IsInfinite() bool {
	for _, e := range a.Extents {
		if math.IsInf(float64(e), 0) {
			return true
		}
	}
	return false
}

// Min returns the minimum corner
func (a Aabb) Min() mgl32.Vec3 {
	return a.Center.Sub(a.Extents)
}

// Max returns the maximum corner
func (a Aabb) Max() mgl32.Vec3 {
	return a.Center.Add(a.Extents)
}

// Size returns the full width of the box along each axis
func (a Aabb) Size() mgl32.Vec3 {
	return a.Extents.Mul(2)
}

// Merge returns the smallest box containing both a and b
func Merge(a, b Aabb) Aabb {
	return NewAabbMinMax(MinVec3(a.Min(), b.Min()), MaxVec3(a.Max(), b.Max()))
}

// Merge returns the smallest box containing both a and other
func (a Aabb) Merge(other Aabb) Aabb {
	return Merge(a, other)
}

// MergeMany folds Merge over boxes from left to right. A single box is returned
// unchanged. An empty list is a caller error and returns ErrEmptyMerge.
func MergeMany(boxes []Aabb) (Aabb, error) {
	if len(boxes) == 0 {
		return Aabb{}, ErrEmptyMerge
	}

	merged := boxes[0]
	for _, box := range boxes[1:] {
		merged = Merge(merged, box)
	}
	return merged, nil
}

// MustMergeMany is like MergeMany but panics on an empty list
func MustMergeMany(boxes []Aabb) Aabb {
	merged, err := MergeMany(boxes)
	if err != nil {
		panic(err)
	}
	return merged
}

// Transform applies t to the center only; extents are left unchanged.
// This is exact for translations and for rotations that keep the box axes on the
// world axes. For any other rotation the result under-approximates the rotated box.
func (a Aabb) Transform(t Transform) Aabb {
	return Aabb{Center: t.TransformPoint(a.Center), Extents: a.Extents}
}

// Contains reports whether p is inside the box. Points on a face count as inside.
func (a Aabb) Contains(p mgl32.Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		if mgl32.Abs(p[axis]-a.Center[axis]) > a.Extents[axis] {
			return false
		}
	}
	return true
}

// Intersects reports whether two boxes overlap, touching faces included
func (a Aabb) Intersects(other Aabb) bool {
	for axis := 0; axis < 3; axis++ {
		if mgl32.Abs(a.Center[axis]-other.Center[axis]) > a.Extents[axis]+other.Extents[axis] {
			return false
		}
	}
	return true
}

// Face classifies a point on the boundary of the box. The signed distance from p to
// each face plane along its outward normal is compared with zero using AlmostEqual,
// in the order Top, Bottom, Front, Back, Left, Right; the first match wins.
// It returns FaceNone and false when p is on none of the planes.
func (a Aabb) Face(p mgl32.Vec3) (Face, bool) {
	min, max := a.Min(), a.Max()
	for _, face := range faceOrder {
		axis, positive := face.axis()
		plane := min[axis]
		if positive {
			plane = max[axis]
		}
		// Only the face's own axis is compared so unbounded axes never produce NaN
		if AlmostEqual(p[axis]-plane, 0) {
			return face, true
		}
	}
	return FaceNone, false
}

// Points returns six of the eight corners: min, the three corners sharing min.x with
// one or two max coordinates, (max.x, min.y, min.z), and max.
// The corners (max.x, min.y, max.z) and (max.x, max.y, min.z) are not included.
func (a Aabb) Points() []mgl32.Vec3 {
	min, max := a.Min(), a.Max()
	return []mgl32.Vec3{
		min,
		{min.X(), min.Y(), max.Z()},
		{min.X(), max.Y(), min.Z()},
		{min.X(), max.Y(), max.Z()},
		{max.X(), min.Y(), min.Z()},
		max,
	}
}

// Hit tests if a ray intersects the box using the slab method.
// It returns the entry parameter, clipped to tMin when the origin is inside.
func (a Aabb) Hit(ray Ray, tMin, tMax float32) (float32, bool) {
	min, max := a.Min(), a.Max()
	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin[axis]
		direction := ray.Direction[axis]

		// Ray is parallel to this slab
		if mgl32.Abs(direction) < 1e-8 {
			if origin < min[axis] || origin > max[axis] {
				return 0, false
			}
			continue
		}

		invDirection := 1 / direction
		t1 := (min[axis] - origin) * invDirection
		t2 := (max[axis] - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
