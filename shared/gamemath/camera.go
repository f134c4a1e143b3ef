package gamemath

import "github.com/go-gl/mathgl/mgl64"

// CameraPose is a camera position and the point it looks at.
type CameraPose struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
}

// FollowPose places the camera distance units behind the target's heading and
// height units above it, looking at the target.
func FollowPose(target Pose, distance, height float64) CameraPose {
	pos := target.Position.Sub(Heading(target.Yaw).Mul(distance))
	pos[1] = target.Position[1] + height
	return CameraPose{
		Position: pos,
		Target:   target.Position,
	}
}

// View returns the look-at matrix for the camera.
func (c CameraPose) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, Up)
}
