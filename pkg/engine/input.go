package engine

import "time"

// Key is a keyboard key the engine reacts to
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyF // Focus the selected block
)

// FrameInput is everything the engine reads for one frame
type FrameInput struct {
	Elapsed      time.Duration // Time since the session started
	Delta        time.Duration // Time since the previous frame
	MouseDelta   [2]float64    // Accumulated mouse motion, x right and y down
	Pressed      []Key         // Keys held during the frame
	Clicked      bool          // Place a block against the selected face
	RightClicked bool          // Remove the selected block
}

func (in FrameInput) pressed(key Key) bool {
	for _, k := range in.Pressed {
		if k == key {
			return true
		}
	}
	return false
}

func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}
