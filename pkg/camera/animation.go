package camera

import (
	"github.com/df07/go-voxel-core/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// ErrNonPositiveDuration is returned when an animation is given a duration <= 0
var ErrNonPositiveDuration = errors.New("camera: animation duration must be positive")

// Animation moves a camera from its pose at construction time to a target position
// and facing direction over a fixed duration. It is immutable once created.
type Animation struct {
	StartPos   mgl32.Vec3
	EndPos     mgl32.Vec3
	StartYaw   mgl32.Quat
	EndYaw     mgl32.Quat
	StartPitch mgl32.Quat
	EndPitch   mgl32.Quat
	StartTime  float32 // Seconds
	Duration   float32 // Seconds, always > 0
}

// NewAnimation creates a transition from the current pose to targetPos, ending with the
// camera facing targetDir. The yaw change takes the short way around.
func NewAnimation(current Pose, targetPos, targetDir mgl32.Vec3, startTime, duration float32) (*Animation, error) {
	if !(duration > 0) {
		return nil, errors.Wrapf(ErrNonPositiveDuration, "duration %v", duration)
	}

	dyaw, dpitch := core.YawPitchDiff(current.Direction(), targetDir)
	dyaw = core.WrapAngle(dyaw)

	rotYaw := mgl32.QuatRotate(dyaw, core.YAxis)
	rotPitch := mgl32.QuatRotate(dpitch, core.XAxis)

	return &Animation{
		StartPos:   current.Position,
		EndPos:     targetPos,
		StartYaw:   current.Yaw,
		EndYaw:     rotYaw.Mul(current.Yaw).Normalize(),
		StartPitch: current.Pitch,
		EndPitch:   rotPitch.Mul(current.Pitch).Normalize(),
		StartTime:  startTime,
		Duration:   duration,
	}, nil
}

// Progress returns the normalized time (time - StartTime) / Duration. It is not clamped.
func (a *Animation) Progress(time float32) float32 {
	return (time - a.StartTime) / a.Duration
}

// At returns the interpolated pose at time. Position uses cosine easing, yaw and pitch
// are slerped independently at the same eased parameter. Times outside the animation
// extrapolate; callers stop at EndTime.
func (a *Animation) At(time float32) Pose {
	t := a.Progress(time)
	return Pose{
		Position: core.CosineLerp(a.StartPos, a.EndPos, t),
		Yaw:      core.EasedSlerp(a.StartYaw, a.EndYaw, t),
		Pitch:    core.EasedSlerp(a.StartPitch, a.EndPitch, t),
	}
}

// EndTime returns StartTime + Duration
func (a *Animation) EndTime() float32 {
	return a.StartTime + a.Duration
}

// StartPose returns the pose captured at construction
func (a *Animation) StartPose() Pose {
	return Pose{Position: a.StartPos, Yaw: a.StartYaw, Pitch: a.StartPitch}
}

// EndPose returns the exact target pose. Callers snap to it once time reaches EndTime.
func (a *Animation) EndPose() Pose {
	return Pose{Position: a.EndPos, Yaw: a.EndYaw, Pitch: a.EndPitch}
}

// Finished reports whether time has reached EndTime
func (a *Animation) Finished(time float32) bool {
	return time >= a.EndTime()
}
