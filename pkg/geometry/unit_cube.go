package geometry

import (
	"math"

	"github.com/df07/go-voxel-core/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
)

// UnitCube is an axis-aligned cube centered on the origin, made up of six squares
type UnitCube struct {
	Side  float32
	faces [6]cubeFace // The 6 square faces
}

// cubeFace places one square on the cube
type cubeFace struct {
	face      core.Face
	transform core.Transform
}

// NewUnitCube creates a cube with the given side length
func NewUnitCube(side float32) UnitCube {
	c := UnitCube{Side: side}
	c.generateFaces()
	return c
}

// generateFaces orients a +Y facing square onto each face of the cube
func (c *UnitCube) generateFaces() {
	h := c.Side / 2
	c.faces = [6]cubeFace{
		{core.FaceTop, core.Translation(mgl32.Vec3{0, h, 0})},
		{core.FaceBottom, core.NewTransform(mgl32.QuatRotate(math.Pi, core.XAxis), mgl32.Vec3{0, -h, 0})},
		{core.FaceFront, core.NewTransform(mgl32.QuatRotate(math.Pi/2, core.XAxis), mgl32.Vec3{0, 0, h})},
		{core.FaceBack, core.NewTransform(mgl32.QuatRotate(-math.Pi/2, core.XAxis), mgl32.Vec3{0, 0, -h})},
		{core.FaceLeft, core.NewTransform(mgl32.QuatRotate(math.Pi/2, core.ZAxis), mgl32.Vec3{-h, 0, 0})},
		{core.FaceRight, core.NewTransform(mgl32.QuatRotate(-math.Pi/2, core.ZAxis), mgl32.Vec3{h, 0, 0})},
	}
}

// Vertices returns the eight corners of the cube
func (c UnitCube) Vertices(transform core.Transform) []mgl32.Vec3 {
	h := c.Side / 2
	vertices := make([]mgl32.Vec3, 0, 8)
	for _, x := range []float32{-h, h} {
		for _, y := range []float32{-h, h} {
			for _, z := range []float32{-h, h} {
				vertices = append(vertices, transform.TransformPoint(mgl32.Vec3{x, y, z}))
			}
		}
	}
	return vertices
}

// Triangles returns twelve outward-facing triangles, two per face
func (c UnitCube) Triangles(transform core.Transform) []mgl32.Vec3 {
	square := NewSquare(c.Side)
	triangles := make([]mgl32.Vec3, 0, 36)
	for _, f := range c.faces {
		triangles = append(triangles, square.Triangles(transform.Mul(f.transform))...)
	}
	return triangles
}

// VertexData returns the triangles with per-face texture coordinates
func (c UnitCube) VertexData(transform core.Transform) []float32 {
	square := NewSquare(c.Side)
	data := make([]float32, 0, 36*FloatsPerVertex)
	for _, f := range c.faces {
		data = append(data, square.VertexData(transform.Mul(f.transform))...)
	}
	return data
}

// BoundingBox returns the box enclosing the transformed corners
func (c UnitCube) BoundingBox(transform core.Transform) core.Aabb {
	return boundingBox(c.Vertices(transform))
}

// FaceTriangles returns the two triangles of a single face
func (c UnitCube) FaceTriangles(face core.Face, transform core.Transform) []mgl32.Vec3 {
	for _, f := range c.faces {
		if f.face == face {
			return NewSquare(c.Side).Triangles(transform.Mul(f.transform))
		}
	}
	return nil
}
