package engine

import (
	"math"
	"time"

	"github.com/df07/go-voxel-core/pkg/camera"
	"github.com/df07/go-voxel-core/pkg/core"
	"github.com/df07/go-voxel-core/pkg/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// ErrNoSelection is returned when focusing without a selected block
var ErrNoSelection = errors.New("no block selected")

// Engine runs the per-frame update: camera transitions, free-look, movement,
// selection and block editing
type Engine struct {
	scene     *scene.Scene
	camera    *camera.Camera
	config    Config
	animation *camera.Animation
	selection scene.PickResult
	selected  bool
	frame     int
	logger    core.Logger
}

// NewEngine creates an engine with the camera at the scene's start pose
func NewEngine(s *scene.Scene, config Config, logger core.Logger) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	cam := &camera.Camera{
		Pose:       s.Start,
		PitchLimit: config.PitchLimitDegrees * math.Pi / 180,
	}
	s.SetOctreeDepth(config.OctreeDepth)

	return &Engine{
		scene:  s,
		camera: cam,
		config: config,
		logger: logger,
	}, nil
}

// Camera returns the live camera
func (e *Engine) Camera() *camera.Camera {
	return e.camera
}

// Scene returns the scene being edited
func (e *Engine) Scene() *scene.Scene {
	return e.scene
}

// Animation returns the running transition, or nil
func (e *Engine) Animation() *camera.Animation {
	return e.animation
}

// Selection returns the block under the crosshair as of the last Step
func (e *Engine) Selection() (scene.PickResult, bool) {
	return e.selection, e.selected
}

// StartTransition begins moving the camera to pos while turning to face dir.
// A running transition is replaced, starting from the current pose.
func (e *Engine) StartTransition(elapsed time.Duration, pos, dir mgl32.Vec3) error {
	anim, err := camera.NewAnimation(e.camera.Pose, pos, dir, seconds(elapsed), e.config.TransitionDuration)
	if err != nil {
		return err
	}
	e.animation = anim
	e.logger.Printf("transition: %v -> %v over %.2fs\n", e.camera.Position, pos, anim.Duration)
	return nil
}

// FocusSelection starts a transition that ends FocusDistance away from the selected
// block, looking at its center
func (e *Engine) FocusSelection(elapsed time.Duration) error {
	if !e.selected {
		return ErrNoSelection
	}
	target, ok := e.scene.Store.PositionAabb(e.selection.Entity)
	if !ok {
		e.selected = false
		return errors.Wrapf(ErrNoSelection, "%v has no bounds", e.selection.Entity)
	}

	dir := target.Sub(e.camera.Position)
	if dir.Len() == 0 {
		dir = e.camera.Direction()
	}
	dir = dir.Normalize()
	return e.StartTransition(elapsed, target.Sub(dir.Mul(e.config.FocusDistance)), dir)
}

// Step advances one frame. While a transition runs it owns the camera orientation and
// mouse input is ignored; once elapsed reaches its end time the camera snaps to the
// end pose and the transition is dropped.
func (e *Engine) Step(in FrameInput) FrameStats {
	e.frame++
	stats := FrameStats{Frame: e.frame}
	now := seconds(in.Elapsed)

	if e.animation != nil {
		if e.animation.Finished(now) {
			e.camera.SetPose(e.animation.EndPose())
			e.animation = nil
			stats.TransitionFinished = true
			e.logger.Printf("transition: finished at %v\n", e.camera.Position)
		} else {
			e.camera.SetPose(e.animation.At(now))
		}
	} else {
		dyaw := float32(in.MouseDelta[0]) / e.config.MouseDivisor
		dpitch := float32(in.MouseDelta[1]) / e.config.MouseDivisor
		e.camera.Rotate(-dyaw, dpitch)
	}

	e.move(in)
	e.updateSelection()

	if in.RightClicked && e.selected {
		if e.scene.RemoveBlock(e.selection.Entity) {
			stats.Removed = true
			e.logger.Printf("removed %v\n", e.selection.Entity)
			e.updateSelection()
		}
	}
	if in.Clicked && e.selected {
		placed, err := e.scene.PlaceAdjacent(e.selection, e.config.PlaceBlock)
		if err != nil {
			e.logger.Printf("place: %v\n", err)
		} else {
			stats.Placed, stats.PlacedBlock = placed, true
			e.logger.Printf("placed %s %v\n", e.config.PlaceBlock, placed)
			e.updateSelection()
		}
	}
	if in.pressed(KeyF) && e.animation == nil && e.selected {
		if err := e.FocusSelection(in.Elapsed); err != nil {
			e.logger.Printf("focus: %v\n", err)
		}
	}

	stats.Pose = e.camera.Pose
	stats.Animating = e.animation != nil
	stats.Selection, stats.Selected = e.selection, e.selected
	return stats
}

// move applies WASD movement at MoveSpeed along the view direction and its right vector
func (e *Engine) move(in FrameInput) {
	speed := e.config.MoveSpeed * seconds(in.Delta)
	if speed == 0 {
		return
	}
	forward := e.camera.Direction()
	right := e.camera.Right()

	for _, key := range in.Pressed {
		switch key {
		case KeyW:
			e.camera.Move(forward.Mul(speed))
		case KeyS:
			e.camera.Move(forward.Mul(-speed))
		case KeyA:
			e.camera.Move(right.Mul(-speed))
		case KeyD:
			e.camera.Move(right.Mul(speed))
		}
	}
}

func (e *Engine) updateSelection() {
	pick, ok := e.scene.Pick(e.camera.Ray(), e.config.PickDistance)
	if ok != e.selected || pick.Entity != e.selection.Entity {
		if ok {
			e.logger.Printf("selected %v (%s face)\n", pick.Entity, pick.Face)
		} else if e.selected {
			e.logger.Printf("selection cleared\n")
		}
	}
	e.selection, e.selected = pick, ok
}
