package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-voxel-core/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Primitive = Rectangle{}
var _ Primitive = Square{}
var _ Primitive = UnitCube{}

func TestSquare_Translate(t *testing.T) {
	s := NewSquare(1.0)
	vertices := s.Vertices(core.Translation(mgl32.Vec3{0, 2, 0}))

	expected := []mgl32.Vec3{
		{-0.5, 2, -0.5},
		{-0.5, 2, 0.5},
		{0.5, 2, 0.5},
		{0.5, 2, -0.5},
	}
	for i := range expected {
		if !core.Vec3AlmostEqual(vertices[i], expected[i]) {
			t.Errorf("Vertex %d: expected %v, got %v", i, expected[i], vertices[i])
		}
	}
}

func TestSquare_RotateAndTranslate(t *testing.T) {
	s := NewSquare(1.0)
	transform := core.NewTransform(mgl32.QuatRotate(math.Pi/2, core.XAxis), mgl32.Vec3{0, 0, 0.5})
	vertices := s.Vertices(transform)

	expected := []mgl32.Vec3{
		{-0.5, 0.5, 0.5},
		{-0.5, -0.5, 0.5},
		{0.5, -0.5, 0.5},
		{0.5, 0.5, 0.5},
	}
	for i := range expected {
		if !core.Vec3AlmostEqual(vertices[i], expected[i]) {
			t.Errorf("Vertex %d: expected %v, got %v", i, expected[i], vertices[i])
		}
	}
}

func TestRectangle_VertexData(t *testing.T) {
	r := NewRectangle(2, 4)
	data := r.VertexData(core.IdentityTransform())
	require.Len(t, data, 6*FloatsPerVertex)

	// First vertex is the (-x, -z) corner with uv (0, 0)
	assert.Equal(t, []float32{-1, 0, -2, 0, 0}, data[:FloatsPerVertex])

	box := r.BoundingBox(core.IdentityTransform())
	assert.True(t, core.Vec3AlmostEqual(box.Extents, mgl32.Vec3{1, 0, 2}))
}

// triangleNormal returns the unnormalized counter-clockwise normal
func triangleNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	return b.Sub(a).Cross(c.Sub(a))
}

func TestUnitCube_TrianglesFaceOutward(t *testing.T) {
	cube := NewUnitCube(1)
	triangles := cube.Triangles(core.IdentityTransform())
	require.Len(t, triangles, 36)

	for i := 0; i < len(triangles); i += 3 {
		a, b, c := triangles[i], triangles[i+1], triangles[i+2]
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		normal := triangleNormal(a, b, c)
		assert.Greater(t, normal.Dot(centroid), float32(0), "triangle %d faces inward", i/3)
	}

	box := core.NewAabb(mgl32.Vec3{}, mgl32.Vec3{0.5, 0.5, 0.5})
	for _, face := range []core.Face{core.FaceTop, core.FaceBottom, core.FaceFront, core.FaceBack, core.FaceLeft, core.FaceRight} {
		faceTriangles := cube.FaceTriangles(face, core.IdentityTransform())
		require.Len(t, faceTriangles, 6)
		normal := triangleNormal(faceTriangles[0], faceTriangles[1], faceTriangles[2]).Normalize()
		assert.True(t, core.Vec3AlmostEqual(normal, face.Normal()), "%s normal %v", face, normal)
		for _, p := range faceTriangles {
			assert.True(t, box.Contains(p))
		}
	}
	assert.Nil(t, cube.FaceTriangles(core.FaceNone, core.IdentityTransform()))
}

func TestUnitCube_BoundingBox(t *testing.T) {
	cube := NewUnitCube(1)

	tests := []struct {
		name          string
		transform     core.Transform
		expectCenter  mgl32.Vec3
		expectExtents mgl32.Vec3
	}{
		{"identity", core.IdentityTransform(), mgl32.Vec3{}, mgl32.Vec3{0.5, 0.5, 0.5}},
		{"translated", core.Translation(mgl32.Vec3{3, 0, -1}), mgl32.Vec3{3, 0, -1}, mgl32.Vec3{0.5, 0.5, 0.5}},
		{
			"rotated 45 degrees about Y",
			core.Rotation(math.Pi/4, core.YAxis),
			mgl32.Vec3{},
			mgl32.Vec3{float32(math.Sqrt2) / 2, 0.5, float32(math.Sqrt2) / 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := cube.BoundingBox(tt.transform)
			if !core.Vec3AlmostEqual(box.Center, tt.expectCenter) {
				t.Errorf("Expected center %v, got %v", tt.expectCenter, box.Center)
			}
			if !core.Vec3AlmostEqual(box.Extents, tt.expectExtents) {
				t.Errorf("Expected extents %v, got %v", tt.expectExtents, box.Extents)
			}
		})
	}
}

func TestUnitCube_VertexData(t *testing.T) {
	cube := NewUnitCube(2)
	data := cube.VertexData(core.Translation(mgl32.Vec3{0, 10, 0}))
	require.Len(t, data, 36*FloatsPerVertex)

	for i := 0; i < len(data); i += FloatsPerVertex {
		y := data[i+1]
		if y < 9-core.Tolerance || y > 11+core.Tolerance {
			t.Errorf("Vertex %d: y=%f outside the translated cube", i/FloatsPerVertex, y)
		}
		u, v := data[i+3], data[i+4]
		if u < 0 || u > 1 || v < 0 || v > 1 {
			t.Errorf("Vertex %d: uv (%f, %f) outside [0, 1]", i/FloatsPerVertex, u, v)
		}
	}
	assert.Len(t, cube.Vertices(core.IdentityTransform()), 8)
}
