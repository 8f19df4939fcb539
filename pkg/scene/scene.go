package scene

import (
	"github.com/df07/go-voxel-core/pkg/camera"
	"github.com/df07/go-voxel-core/pkg/core"
	"github.com/df07/go-voxel-core/pkg/ecs"
	"github.com/df07/go-voxel-core/pkg/loaders"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// ErrOccupied is returned when placing a block where one already exists
var ErrOccupied = errors.New("position is occupied")

// blockProbe is the half-size of the box used to look up a block by grid position
const blockProbe = 0.25

// Scene contains the block world and where the camera starts
type Scene struct {
	Name        string
	Description string
	Store       *ecs.Store
	Start       camera.Pose
	Textures    map[ecs.BlockType]*loaders.Texture

	bounds      *ecs.BoundsSystem
	octree      *core.Octree
	indexed     uint64 // Store version the octree was built from
	octreeDepth int
	logger      core.Logger
}

// PickResult describes the block under a ray
type PickResult struct {
	Entity   ecs.Entity
	Point    mgl32.Vec3 // Where the ray enters the block's bounds
	Distance float32    // Ray parameter at Point
	Face     core.Face  // Face of the block the ray entered through
}

// New creates an empty scene
func New(name string, start camera.Pose) *Scene {
	return &Scene{
		Name:     name,
		Store:    ecs.NewStore(),
		Start:    start,
		Textures: make(map[ecs.BlockType]*loaders.Texture),
		bounds:   ecs.NewBoundsSystem(nil),
		logger:   core.NopLogger{},
	}
}

// FromFile builds a scene from a parsed scene file, loading any referenced textures
func FromFile(f *loaders.SceneFile) (*Scene, error) {
	s := New(f.Name, camera.NewPose(f.Camera.Position, f.Camera.Direction))
	s.Description = f.Description

	for _, b := range f.Placements() {
		s.AddBlock(b.Position, b.Type)
	}

	for name := range f.Textures {
		block, err := ecs.ParseBlockType(name)
		if err != nil {
			return nil, err
		}
		path, ok := f.TexturePath(block)
		if !ok {
			return nil, errors.Errorf("no texture path for %s", block)
		}
		texture, err := loaders.LoadTexture(path)
		if err != nil {
			return nil, errors.Wrapf(err, "texture for %s", block)
		}
		s.Textures[block] = texture
	}
	return s, nil
}

// SetLogger sets the logger used for index rebuilds
func (s *Scene) SetLogger(logger core.Logger) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	s.logger = logger
	s.bounds = ecs.NewBoundsSystem(logger)
}

// SetOctreeDepth sets the maximum octree depth; <= 0 uses the default
func (s *Scene) SetOctreeDepth(depth int) {
	s.octreeDepth = depth
	s.octree = nil
}

// AddBlock places a block with its center at pos
func (s *Scene) AddBlock(pos mgl32.Vec3, block ecs.BlockType) ecs.Entity {
	return s.Store.NewBlock(core.Translation(pos), block)
}

// Index brings bounds up to date and returns the octree over every entity with bounds.
// The tree is rebuilt only when the store changed since the last call.
func (s *Scene) Index() *core.Octree {
	s.bounds.Run(s.Store)
	if s.octree != nil && s.indexed == s.Store.Version() {
		return s.octree
	}

	var items []core.Item
	s.Store.Each(func(e ecs.Entity) bool {
		if box, ok := s.Store.Aabb(e); ok {
			items = append(items, core.Item{ID: e.ID(), Bounds: box})
		}
		return true
	})

	s.octree = core.NewOctree(items, s.octreeDepth)
	s.indexed = s.Store.Version()
	s.logger.Printf("scene %s: indexed %d entities\n", s.Name, len(items))
	return s.octree
}

// Pick returns the closest block the ray enters within maxDistance
func (s *Scene) Pick(ray core.Ray, maxDistance float32) (PickResult, bool) {
	item, t, ok := s.Index().Hit(ray, 0, maxDistance)
	if !ok {
		return PickResult{}, false
	}

	point := ray.At(t)
	face, onFace := item.Bounds.Face(point)
	if !onFace {
		face = faceAgainst(ray.Direction)
	}
	return PickResult{
		Entity:   ecs.EntityFromID(item.ID),
		Point:    point,
		Distance: t,
		Face:     face,
	}, true
}

// faceAgainst returns the face whose outward normal most directly opposes dir. It is
// used when the ray starts inside the box and so enters through no face.
func faceAgainst(dir mgl32.Vec3) core.Face {
	axis := 1
	for a := 0; a < 3; a++ {
		if mgl32.Abs(dir[a]) > mgl32.Abs(dir[axis]) {
			axis = a
		}
	}
	negative := dir[axis] < 0
	switch axis {
	case 0:
		if negative {
			return core.FaceRight
		}
		return core.FaceLeft
	case 2:
		if negative {
			return core.FaceFront
		}
		return core.FaceBack
	default:
		if negative {
			return core.FaceTop
		}
		return core.FaceBottom
	}
}

// BlockAt returns the block whose center is at the grid position pos
func (s *Scene) BlockAt(pos mgl32.Vec3) (ecs.Entity, bool) {
	probe := core.NewAabb(pos, mgl32.Vec3{blockProbe, blockProbe, blockProbe})
	for _, item := range s.Index().Query(probe) {
		e := ecs.EntityFromID(item.ID)
		if _, isBlock := s.Store.Block(e); isBlock && item.Bounds.Contains(pos) {
			return e, true
		}
	}
	return ecs.Entity{}, false
}

// PlaceAdjacent adds a block next to the picked one, on the side of the picked face
func (s *Scene) PlaceAdjacent(pick PickResult, block ecs.BlockType) (ecs.Entity, error) {
	if pick.Face == core.FaceNone {
		return ecs.Entity{}, errors.New("place: pick has no face")
	}
	pos, ok := s.Store.Position(pick.Entity)
	if !ok {
		return ecs.Entity{}, errors.Wrapf(ecs.ErrDeadEntity, "place next to %v", pick.Entity)
	}

	target := pos.Add(pick.Face.Normal())
	if existing, found := s.BlockAt(target); found {
		return ecs.Entity{}, errors.Wrapf(ErrOccupied, "%v at %v", existing, target)
	}
	return s.AddBlock(target, block), nil
}

// RemoveBlock deletes a block entity. It reports false if e was not a live block.
func (s *Scene) RemoveBlock(e ecs.Entity) bool {
	if _, isBlock := s.Store.Block(e); !isBlock {
		return false
	}
	return s.Store.Remove(e)
}

// Meshes returns one textured mesh per block, for export
func (s *Scene) Meshes() ([]loaders.Mesh, error) {
	var meshes []loaders.Mesh
	for _, e := range s.Store.Blocks() {
		g, hasGeometry := s.Store.Geometry(e)
		t, hasTransform := s.Store.Transform(e)
		if !hasGeometry || !hasTransform {
			continue
		}
		block, _ := s.Store.Block(e)

		mesh, err := loaders.MeshFromVertexData(e.String(), block.String(), g.VertexData(t))
		if err != nil {
			return nil, err
		}
		mesh.Texture = s.Textures[block]
		mesh.Color = blockColors[block]
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// SelectionMesh returns the wireframe around an entity's bounds
func (s *Scene) SelectionMesh(e ecs.Entity) (loaders.Mesh, bool) {
	box, ok := s.Store.Aabb(e)
	if !ok {
		return loaders.Mesh{}, false
	}
	return loaders.WireframeMesh("selection", "selection", box), true
}

// Bounds returns the merged bounds of every entity, or false for an empty scene
func (s *Scene) Bounds() (core.Aabb, bool) {
	tree := s.Index()
	if tree.Root == nil {
		return core.Aabb{}, false
	}
	return tree.Root.Bounds, true
}

var blockColors = map[ecs.BlockType]*[4]float32{
	ecs.BlockCobblestone: {0.45, 0.45, 0.45, 1},
	ecs.BlockStone:       {0.6, 0.6, 0.6, 1},
	ecs.BlockDirt:        {0.45, 0.3, 0.18, 1},
	ecs.BlockGrass:       {0.3, 0.6, 0.2, 1},
	ecs.BlockSand:        {0.85, 0.8, 0.55, 1},
}
