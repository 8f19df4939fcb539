package engine

import (
	"github.com/df07/go-voxel-core/pkg/camera"
	"github.com/df07/go-voxel-core/pkg/ecs"
	"github.com/df07/go-voxel-core/pkg/scene"
)

// FrameStats describes what happened during one Step
type FrameStats struct {
	Frame              int         // Frame number, starting at 1
	Pose               camera.Pose // Camera pose at the end of the frame
	Animating          bool        // A transition is still running
	TransitionFinished bool        // A transition reached its end this frame
	Selected           bool        // Selection holds the block under the crosshair
	Selection          scene.PickResult
	Placed             ecs.Entity // Valid when PlacedBlock is set
	PlacedBlock        bool
	Removed            bool
}

// SessionStats accumulates frame statistics over a session
type SessionStats struct {
	Frames      int
	Transitions int // Transitions that ran to completion
	Placed      int
	Removed     int
}

// Add folds one frame into the totals
func (s *SessionStats) Add(f FrameStats) {
	s.Frames++
	if f.TransitionFinished {
		s.Transitions++
	}
	if f.PlacedBlock {
		s.Placed++
	}
	if f.Removed {
		s.Removed++
	}
}
