package engine

import (
	"os"

	"github.com/df07/go-voxel-core/pkg/ecs"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config contains the tunables of the update loop
type Config struct {
	MoveSpeed          float32       `yaml:"move_speed"`          // Units per second for WASD movement
	MouseDivisor       float32       `yaml:"mouse_divisor"`       // Mouse delta is divided by this to get radians
	PitchLimitDegrees  float32       `yaml:"pitch_limit_degrees"` // Free-look pitch bound
	TransitionDuration float32       `yaml:"transition_duration"` // Seconds for focus transitions
	FocusDistance      float32       `yaml:"focus_distance"`      // Distance kept from a focused block
	PickDistance       float32       `yaml:"pick_distance"`       // Reach of the selection ray
	OctreeDepth        int           `yaml:"octree_depth"`        // Max octree depth (0 = default)
	PlaceBlock         ecs.BlockType `yaml:"place_block"`         // Block type placed on click
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MoveSpeed:          3,
		MouseDivisor:       500,
		PitchLimitDegrees:  89,
		TransitionDuration: 1,
		FocusDistance:      3,
		PickDistance:       8,
		OctreeDepth:        0, // Use core.DefaultOctreeDepth
		PlaceBlock:         ecs.BlockCobblestone,
	}
}

// LoadConfig reads a YAML config file over the defaults. Keys missing from the file
// keep their default values; unknown keys are errors.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	file, err := os.Open(filename)
	if err != nil {
		return config, errors.Wrap(err, "failed to open config")
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return config, errors.Wrapf(err, "failed to parse config %s", filename)
	}
	return config, config.Validate()
}

// Validate checks that every value is usable
func (c Config) Validate() error {
	switch {
	case c.MoveSpeed < 0:
		return errors.Errorf("move_speed must not be negative, got %v", c.MoveSpeed)
	case !(c.MouseDivisor > 0):
		return errors.Errorf("mouse_divisor must be positive, got %v", c.MouseDivisor)
	case c.PitchLimitDegrees <= 0 || c.PitchLimitDegrees > 90:
		return errors.Errorf("pitch_limit_degrees must be in (0, 90], got %v", c.PitchLimitDegrees)
	case !(c.TransitionDuration > 0):
		return errors.Errorf("transition_duration must be positive, got %v", c.TransitionDuration)
	case c.FocusDistance < 0:
		return errors.Errorf("focus_distance must not be negative, got %v", c.FocusDistance)
	case !(c.PickDistance > 0):
		return errors.Errorf("pick_distance must be positive, got %v", c.PickDistance)
	case c.OctreeDepth < 0:
		return errors.Errorf("octree_depth must not be negative, got %v", c.OctreeDepth)
	}
	return nil
}
