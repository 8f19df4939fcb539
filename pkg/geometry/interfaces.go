package geometry

import (
	"github.com/df07/go-voxel-core/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the stride of VertexData: position xyz followed by texture uv
const FloatsPerVertex = 5

// Primitive is a shape that produces vertex and boundary data under a transform
type Primitive interface {
	// Vertices returns the distinct corners of the shape
	Vertices(transform core.Transform) []mgl32.Vec3
	// Triangles returns a counter-clockwise triangle list, three points per triangle
	Triangles(transform core.Transform) []mgl32.Vec3
	// VertexData returns the triangle list interleaved with texture coordinates
	VertexData(transform core.Transform) []float32
	// BoundingBox returns the box enclosing the transformed vertices
	BoundingBox(transform core.Transform) core.Aabb
}

// boundingBox encloses a non-empty point list
func boundingBox(points []mgl32.Vec3) core.Aabb {
	box, err := core.NewAabbFromPoints(points...)
	if err != nil {
		panic(err)
	}
	return box
}

// appendVertex appends one interleaved vertex to data
func appendVertex(data []float32, p mgl32.Vec3, uv mgl32.Vec2) []float32 {
	return append(data, p.X(), p.Y(), p.Z(), uv.X(), uv.Y())
}
