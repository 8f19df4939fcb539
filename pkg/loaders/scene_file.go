package loaders

import (
	"io"
	"os"
	"path/filepath"

	"github.com/df07/go-voxel-core/pkg/ecs"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MaxFillBlocks bounds the number of blocks a single fill region may produce
const MaxFillBlocks = 1 << 16

// SceneFile is the YAML description of a block scene
type SceneFile struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Camera      CameraSpec        `yaml:"camera"`
	Textures    map[string]string `yaml:"textures,omitempty"` // Block type name -> image path
	Fills       []FillSpec        `yaml:"fills,omitempty"`
	Blocks      []BlockSpec       `yaml:"blocks,omitempty"`

	dir string // Directory the file was loaded from, for relative texture paths
}

// CameraSpec is the starting camera placement
type CameraSpec struct {
	Position  mgl32.Vec3 `yaml:"position"`
	Direction mgl32.Vec3 `yaml:"direction"`
}

// BlockSpec places one block on the integer grid
type BlockSpec struct {
	Position mgl32.Vec3    `yaml:"position"`
	Type     ecs.BlockType `yaml:"type"`
}

// FillSpec fills every grid cell between two corners, inclusive
type FillSpec struct {
	From mgl32.Vec3    `yaml:"from"`
	To   mgl32.Vec3    `yaml:"to"`
	Type ecs.BlockType `yaml:"type"`
}

// DefaultCamera is used when a scene file leaves the camera direction unset
var DefaultCamera = CameraSpec{
	Position:  mgl32.Vec3{0, 3, -8},
	Direction: mgl32.Vec3{0, -0.5, 1},
}

// LoadSceneFile reads and validates a YAML scene file
func LoadSceneFile(filename string) (*SceneFile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open scene file")
	}
	defer file.Close()

	scene, err := ParseSceneFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "scene file %s", filename)
	}
	scene.dir = filepath.Dir(filename)
	return scene, nil
}

// ParseSceneFile decodes and validates a scene description. Unknown keys are errors.
func ParseSceneFile(r io.Reader) (*SceneFile, error) {
	var scene SceneFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&scene); err != nil {
		return nil, errors.Wrap(err, "failed to parse scene")
	}
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return &scene, nil
}

// Validate checks fills and fills in defaults
func (f *SceneFile) Validate() error {
	if f.Camera.Direction.Len() == 0 {
		if f.Camera.Position.Len() == 0 {
			f.Camera = DefaultCamera
		} else {
			f.Camera.Direction = DefaultCamera.Direction
		}
	}
	for i, fill := range f.Fills {
		if n := fill.count(); n > MaxFillBlocks {
			return errors.Errorf("fill %d covers %d blocks, limit is %d", i, n, MaxFillBlocks)
		}
	}
	textures := make(map[string]string, len(f.Textures))
	for name, path := range f.Textures {
		block, err := ecs.ParseBlockType(name)
		if err != nil {
			return errors.Wrapf(err, "texture key")
		}
		if _, dup := textures[block.String()]; dup {
			return errors.Errorf("texture for %s is given more than once", block)
		}
		textures[block.String()] = path
	}
	if f.Textures != nil {
		f.Textures = textures
	}
	return nil
}

// Placements expands fills and explicit blocks into one list. A later entry at the
// same grid position replaces an earlier one; fills come before blocks.
func (f *SceneFile) Placements() []BlockSpec {
	type cell [3]int
	index := make(map[cell]int)
	var out []BlockSpec

	place := func(b BlockSpec) {
		key := cell{round(b.Position[0]), round(b.Position[1]), round(b.Position[2])}
		b.Position = mgl32.Vec3{float32(key[0]), float32(key[1]), float32(key[2])}
		if i, ok := index[key]; ok {
			out[i] = b
			return
		}
		index[key] = len(out)
		out = append(out, b)
	}

	for _, fill := range f.Fills {
		lo, hi := fill.bounds()
		for x := lo[0]; x <= hi[0]; x++ {
			for y := lo[1]; y <= hi[1]; y++ {
				for z := lo[2]; z <= hi[2]; z++ {
					place(BlockSpec{Position: mgl32.Vec3{float32(x), float32(y), float32(z)}, Type: fill.Type})
				}
			}
		}
	}
	for _, b := range f.Blocks {
		place(b)
	}
	return out
}

// TexturePath resolves a texture entry against the scene file's directory
func (f *SceneFile) TexturePath(block ecs.BlockType) (string, bool) {
	path, ok := f.Textures[block.String()]
	if !ok {
		return "", false
	}
	if !filepath.IsAbs(path) && f.dir != "" {
		path = filepath.Join(f.dir, path)
	}
	return path, true
}

// Write encodes the scene as YAML
func (f *SceneFile) Write(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(f); err != nil {
		return errors.Wrap(err, "failed to write scene")
	}
	return encoder.Close()
}

func (fill FillSpec) bounds() (lo, hi [3]int) {
	for axis := 0; axis < 3; axis++ {
		a, b := round(fill.From[axis]), round(fill.To[axis])
		if a > b {
			a, b = b, a
		}
		lo[axis], hi[axis] = a, b
	}
	return lo, hi
}

func (fill FillSpec) count() int {
	lo, hi := fill.bounds()
	n := 1
	for axis := 0; axis < 3; axis++ {
		n *= hi[axis] - lo[axis] + 1
		if n > MaxFillBlocks {
			return n
		}
	}
	return n
}

func round(v float32) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
