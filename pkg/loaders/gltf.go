package loaders

import (
	"bytes"
	"io"

	"github.com/df07/go-voxel-core/pkg/core"
	"github.com/df07/go-voxel-core/pkg/geometry"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Mesh is one exported node: a triangle list, or a line list when Lines is set
type Mesh struct {
	Name      string
	Material  string      // Meshes with the same material name share one glTF material
	Color     *[4]float32 // Optional base color factor
	Texture   *Texture    // Optional base color texture, needs UVs
	Positions []mgl32.Vec3
	UVs       []mgl32.Vec2 // Empty, or one per position
	Lines     bool
}

// MeshFromVertexData builds a triangle mesh from interleaved position and UV floats
// as produced by geometry.Primitive.VertexData
func MeshFromVertexData(name, material string, data []float32) (Mesh, error) {
	if len(data)%geometry.FloatsPerVertex != 0 {
		return Mesh{}, errors.Errorf("mesh %q: %d floats is not a whole number of vertices", name, len(data))
	}

	n := len(data) / geometry.FloatsPerVertex
	mesh := Mesh{
		Name:      name,
		Material:  material,
		Positions: make([]mgl32.Vec3, n),
		UVs:       make([]mgl32.Vec2, n),
	}
	for i := 0; i < n; i++ {
		v := data[i*geometry.FloatsPerVertex:]
		mesh.Positions[i] = mgl32.Vec3{v[0], v[1], v[2]}
		mesh.UVs[i] = mgl32.Vec2{v[3], v[4]}
	}
	return mesh, nil
}

// WireframeMesh builds the twelve edges of a box as a line mesh
func WireframeMesh(name, material string, box core.Aabb) Mesh {
	lo, hi := box.Min(), box.Max()
	corner := func(i int) mgl32.Vec3 {
		c := lo
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) != 0 {
				c[axis] = hi[axis]
			}
		}
		return c
	}

	mesh := Mesh{Name: name, Material: material, Lines: true}
	for i := 0; i < 8; i++ {
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) == 0 {
				mesh.Positions = append(mesh.Positions, corner(i), corner(i|1<<axis))
			}
		}
	}
	return mesh
}

func (m Mesh) validate() error {
	stride := 3
	if m.Lines {
		stride = 2
	}
	if len(m.Positions) == 0 || len(m.Positions)%stride != 0 {
		return errors.Errorf("mesh %q: %d positions is not a whole number of primitives", m.Name, len(m.Positions))
	}
	if len(m.UVs) != 0 && len(m.UVs) != len(m.Positions) {
		return errors.Errorf("mesh %q: %d uvs for %d positions", m.Name, len(m.UVs), len(m.Positions))
	}
	if m.Texture != nil && len(m.UVs) == 0 {
		return errors.Errorf("mesh %q: texture without uvs", m.Name)
	}
	return nil
}

// BuildDocument creates a glTF document with one node per mesh in the default scene
func BuildDocument(meshes []Mesh) (*gltf.Document, error) {
	doc := gltf.NewDocument()
	materials := make(map[string]uint32)
	textures := make(map[*Texture]uint32)

	for _, m := range meshes {
		if err := m.validate(); err != nil {
			return nil, err
		}

		positions := make([][3]float32, len(m.Positions))
		indices := make([]uint32, len(m.Positions))
		for i, p := range m.Positions {
			positions[i] = p
			indices[i] = uint32(i)
		}

		attributes := map[string]uint32{
			"POSITION": modeler.WritePosition(doc, positions),
		}
		if len(m.UVs) > 0 {
			uvs := make([][2]float32, len(m.UVs))
			for i, uv := range m.UVs {
				uvs[i] = uv
			}
			attributes["TEXCOORD_0"] = modeler.WriteTextureCoord(doc, uvs)
		}
		if !m.Lines {
			attributes["NORMAL"] = modeler.WriteNormal(doc, faceNormals(m.Positions))
		}
		indicesAccessor := modeler.WriteIndices(doc, indices)

		primitive := &gltf.Primitive{
			Indices:    &indicesAccessor,
			Attributes: attributes,
		}
		if m.Lines {
			primitive.Mode = gltf.PrimitiveLines
		}

		if m.Material != "" {
			idx, ok := materials[m.Material]
			if !ok {
				var err error
				idx, err = writeMaterial(doc, m, textures)
				if err != nil {
					return nil, err
				}
				materials[m.Material] = idx
			}
			primitive.Material = gltf.Index(idx)
		}

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name:       m.Name,
			Primitives: []*gltf.Primitive{primitive},
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)))
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: m.Name,
			Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
		})
	}

	return doc, nil
}

func writeMaterial(doc *gltf.Document, m Mesh, textures map[*Texture]uint32) (uint32, error) {
	material := &gltf.Material{
		Name:        m.Material,
		DoubleSided: true,
	}
	if m.Color != nil || m.Texture != nil {
		material.PBRMetallicRoughness = &gltf.PBRMetallicRoughness{BaseColorFactor: m.Color}
	}

	if m.Texture != nil {
		texIdx, ok := textures[m.Texture]
		if !ok {
			imgIdx, err := modeler.WriteImage(doc, m.Texture.Name+"_image", m.Texture.MimeType, bytes.NewReader(m.Texture.Data))
			if err != nil {
				return 0, errors.Wrapf(err, "failed to write texture %q", m.Texture.Name)
			}
			doc.Samplers = append(doc.Samplers, &gltf.Sampler{
				Name:      m.Texture.Name + "_sampler",
				MinFilter: gltf.MinNearest,
				MagFilter: gltf.MagNearest,
				WrapS:     gltf.WrapRepeat,
				WrapT:     gltf.WrapRepeat,
			})
			texIdx = uint32(len(doc.Textures))
			doc.Textures = append(doc.Textures, &gltf.Texture{
				Name:    m.Texture.Name,
				Sampler: gltf.Index(uint32(len(doc.Samplers) - 1)),
				Source:  gltf.Index(imgIdx),
			})
			textures[m.Texture] = texIdx
		}
		material.PBRMetallicRoughness.BaseColorTexture = &gltf.TextureInfo{Index: texIdx}
	}

	doc.Materials = append(doc.Materials, material)
	return uint32(len(doc.Materials) - 1), nil
}

// faceNormals gives every vertex of a triangle list the normal of its triangle
func faceNormals(positions []mgl32.Vec3) [][3]float32 {
	normals := make([][3]float32, len(positions))
	for i := 0; i+2 < len(positions); i += 3 {
		n := positions[i+1].Sub(positions[i]).Cross(positions[i+2].Sub(positions[i]))
		if n.Len() > 0 {
			n = n.Normalize()
		}
		normals[i], normals[i+1], normals[i+2] = n, n, n
	}
	return normals
}

// ExportGLTF writes meshes as a glTF document, binary (.glb) or JSON
func ExportGLTF(w io.Writer, meshes []Mesh, binary bool) error {
	doc, err := BuildDocument(meshes)
	if err != nil {
		return err
	}

	if !binary {
		for _, buffer := range doc.Buffers {
			buffer.EmbeddedResource()
		}
	}

	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = binary
	if err := encoder.Encode(doc); err != nil {
		return errors.Wrap(err, "failed to encode gltf")
	}
	return nil
}
