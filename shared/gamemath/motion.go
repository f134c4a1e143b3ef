package gamemath

import (
	"math"

	"github.com/automoto/gamepad-gun/shared/controller"
	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world's vertical axis.
var Up = mgl64.Vec3{0, 1, 0}

// Pose is a position on the field plus a yaw rotation about Up.
type Pose struct {
	Position mgl64.Vec3
	Yaw      float64
}

// MotionParams controls how stick input maps onto a Pose.
type MotionParams struct {
	MoveSpeed        float64
	SprintMultiplier float64
	RotationSpeed    float64
	YawDeadzone      float64

	MoveXAxis    int // strafe
	MoveYAxis    int // forward/back
	YawAxis      int
	SprintButton int
}

// Heading is the direction the nose points for a yaw. Pushing the stick up
// (negative MoveYAxis) moves along it, and projectiles fly along it.
func Heading(yaw float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(yaw), 0, math.Cos(yaw)}
}

// Basis returns the stick-space forward and right vectors for a yaw.
// forward = (-sin yaw, 0, -cos yaw); right = -(forward x Up).
func Basis(yaw float64) (forward, right mgl64.Vec3) {
	forward = mgl64.Vec3{-math.Sin(yaw), 0, -math.Cos(yaw)}
	right = forward.Cross(Up).Mul(-1)
	return forward, right
}

// StepMotion applies one tick of stick input to a pose. Position and yaw are
// never clamped.
func StepMotion(pose Pose, snap controller.Snapshot, p MotionParams, dtScale float64) Pose {
	speed := p.MoveSpeed
	if snap.Pressed(p.SprintButton) {
		speed *= p.SprintMultiplier
	}
	speed *= dtScale

	forward, right := Basis(pose.Yaw)
	pose.Position = pose.Position.
		Add(forward.Mul(snap.Axis(p.MoveYAxis) * speed)).
		Add(right.Mul(snap.Axis(p.MoveXAxis) * speed))

	if yaw := snap.Axis(p.YawAxis); math.Abs(yaw) > p.YawDeadzone {
		pose.Yaw -= yaw * p.RotationSpeed * dtScale
	}
	return pose
}
