package geometry

import (
	"github.com/df07/go-voxel-core/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
)

// Rectangle is a flat rectangle centered on the origin in the XZ plane, facing +Y
type Rectangle struct {
	Width float32 // Extent along X
	Depth float32 // Extent along Z
}

// NewRectangle creates a rectangle of the given width (X) and depth (Z)
func NewRectangle(width, depth float32) Rectangle {
	return Rectangle{Width: width, Depth: depth}
}

// rectangleUVs are the texture coordinates of the four corners in Vertices order
var rectangleUVs = [4]mgl32.Vec2{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

// rectangleIndices split the rectangle into two counter-clockwise triangles
var rectangleIndices = [6]int{0, 1, 2, 0, 2, 3}

// Vertices returns the corners in the order (-x,-z), (-x,+z), (+x,+z), (+x,-z)
func (r Rectangle) Vertices(transform core.Transform) []mgl32.Vec3 {
	hw, hd := r.Width/2, r.Depth/2
	local := [4]mgl32.Vec3{
		{-hw, 0, -hd},
		{-hw, 0, hd},
		{hw, 0, hd},
		{hw, 0, -hd},
	}

	vertices := make([]mgl32.Vec3, len(local))
	for i, v := range local {
		vertices[i] = transform.TransformPoint(v)
	}
	return vertices
}

// Triangles returns the two triangles covering the rectangle
func (r Rectangle) Triangles(transform core.Transform) []mgl32.Vec3 {
	vertices := r.Vertices(transform)
	triangles := make([]mgl32.Vec3, 0, len(rectangleIndices))
	for _, i := range rectangleIndices {
		triangles = append(triangles, vertices[i])
	}
	return triangles
}

// VertexData returns the two triangles with texture coordinates
func (r Rectangle) VertexData(transform core.Transform) []float32 {
	vertices := r.Vertices(transform)
	data := make([]float32, 0, len(rectangleIndices)*FloatsPerVertex)
	for _, i := range rectangleIndices {
		data = appendVertex(data, vertices[i], rectangleUVs[i])
	}
	return data
}

// BoundingBox returns the box enclosing the transformed rectangle
func (r Rectangle) BoundingBox(transform core.Transform) core.Aabb {
	return boundingBox(r.Vertices(transform))
}
