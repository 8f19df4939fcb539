package ecs

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// BlockType identifies the material of a block entity
type BlockType int

const (
	BlockNone BlockType = iota
	BlockCobblestone
	BlockStone
	BlockDirt
	BlockGrass
	BlockSand
)

var blockNames = map[BlockType]string{
	BlockNone:        "none",
	BlockCobblestone: "cobblestone",
	BlockStone:       "stone",
	BlockDirt:        "dirt",
	BlockGrass:       "grass",
	BlockSand:        "sand",
}

// ErrUnknownBlockType is returned when parsing an unrecognized block name
var ErrUnknownBlockType = errors.New("unknown block type")

func (b BlockType) String() string {
	if name, ok := blockNames[b]; ok {
		return name
	}
	return "unknown"
}

// ParseBlockType converts a block name (case-insensitive) to a BlockType
func ParseBlockType(name string) (BlockType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range blockNames {
		if n == name {
			return b, nil
		}
	}
	return BlockNone, errors.Wrapf(ErrUnknownBlockType, "%q", name)
}

// UnmarshalYAML decodes a block type from its name
func (b *BlockType) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseBlockType(name)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	*b = parsed
	return nil
}

// MarshalYAML encodes a block type as its name
func (b BlockType) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}
