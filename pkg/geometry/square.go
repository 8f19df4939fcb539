package geometry

import (
	"github.com/df07/go-voxel-core/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
)

// Square is a Rectangle with equal sides
type Square struct {
	rect Rectangle
}

// NewSquare creates a square with the given side length
func NewSquare(side float32) Square {
	return Square{rect: NewRectangle(side, side)}
}

// Side returns the side length
func (s Square) Side() float32 {
	return s.rect.Width
}

func (s Square) Vertices(transform core.Transform) []mgl32.Vec3 {
	return s.rect.Vertices(transform)
}

func (s Square) Triangles(transform core.Transform) []mgl32.Vec3 {
	return s.rect.Triangles(transform)
}

func (s Square) VertexData(transform core.Transform) []float32 {
	return s.rect.VertexData(transform)
}

func (s Square) BoundingBox(transform core.Transform) core.Aabb {
	return s.rect.BoundingBox(transform)
}
