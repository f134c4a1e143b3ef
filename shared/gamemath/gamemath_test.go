package gamemath

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/gamepad-gun/shared/controller"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var params = MotionParams{
	MoveSpeed:        0.1,
	SprintMultiplier: 10,
	RotationSpeed:    0.05,
	YawDeadzone:      0.1,
	MoveXAxis:        0,
	MoveYAxis:        1,
	YawAxis:          2,
	SprintButton:     10,
}

func axes(values ...float64) controller.Snapshot {
	return controller.NewSnapshot(values, nil)
}

func TestStepMotion_YawDeadzone(t *testing.T) {
	for _, v := range []float64{-0.1, -0.05, 0, 0.05, 0.1} {
		pose := StepMotion(Pose{Yaw: 1.5}, axes(0, 0, v), params, 1)
		assert.Equal(t, 1.5, pose.Yaw, "axis %.2f is inside the dead zone", v)
	}
}

func TestStepMotion_RotatesOutsideDeadzone(t *testing.T) {
	pose := StepMotion(Pose{}, axes(0, 0, 0.5), params, 1)
	assert.InDelta(t, -0.025, pose.Yaw, 1e-9)

	pose = StepMotion(Pose{}, axes(0, 0, -1), params, 1)
	assert.InDelta(t, 0.05, pose.Yaw, 1e-9)
}

func TestStepMotion_StickUpMovesAlongHeading(t *testing.T) {
	pose := StepMotion(Pose{}, axes(0, -1), params, 1)

	want := Heading(0).Mul(0.1)
	assert.True(t, pose.Position.ApproxEqual(want), "got %v want %v", pose.Position, want)
}

func TestStepMotion_Strafe(t *testing.T) {
	pose := StepMotion(Pose{}, axes(1, 0), params, 1)

	_, right := Basis(0)
	assert.True(t, pose.Position.ApproxEqual(right.Mul(0.1)))
	assert.InDelta(t, 0, pose.Position.Dot(Heading(0)), 1e-9, "strafe is perpendicular to heading")
}

func TestStepMotion_Sprint(t *testing.T) {
	buttons := make([]controller.ButtonState, 11)
	buttons[10] = controller.ButtonState{Pressed: true, Value: 1}
	snap := controller.NewSnapshot([]float64{0, -1}, buttons)

	pose := StepMotion(Pose{}, snap, params, 1)
	assert.InDelta(t, 1.0, pose.Position.Len(), 1e-9)
}

func TestStepMotion_NoClamp(t *testing.T) {
	start := Pose{Position: mgl64.Vec3{0, 0, 1000}, Yaw: 100}
	pose := StepMotion(start, axes(0, -1, 1), params, 1)

	assert.Greater(t, pose.Position.Len(), 1000.0)
	assert.InDelta(t, 99.95, pose.Yaw, 1e-9)
}

func TestBasis_RightIsPerpendicular(t *testing.T) {
	for _, yaw := range []float64{0, 0.7, math.Pi / 2, -2} {
		forward, right := Basis(yaw)
		assert.InDelta(t, 0, forward.Dot(right), 1e-9)
		assert.InDelta(t, 1, right.Len(), 1e-9)
	}
}

func TestFireInterval(t *testing.T) {
	min, max := 100*time.Millisecond, 800*time.Millisecond

	assert.Equal(t, min, FireInterval(1, min, max))
	assert.Equal(t, max, FireInterval(0, min, max))
	assert.Equal(t, 450*time.Millisecond, FireInterval(0.5, min, max))
	assert.Equal(t, min, FireInterval(3, min, max))
}

func TestAutoFireReady_IsStrict(t *testing.T) {
	assert.False(t, AutoFireReady(100*time.Millisecond, 0, 100*time.Millisecond))
	assert.True(t, AutoFireReady(101*time.Millisecond, 0, 100*time.Millisecond))
}

func TestLaunch(t *testing.T) {
	b := Launch(Pose{Position: mgl64.Vec3{3, 0.25, 4}, Yaw: math.Pi / 2}, 0.5, 1)

	assert.True(t, b.Position.ApproxEqual(mgl64.Vec3{3, 1, 4}))
	assert.InDelta(t, 0.5, b.Velocity.Len(), 1e-9)
	assert.InDelta(t, 0.5, b.Velocity.X(), 1e-9)
}

func TestAdvanceAndCull(t *testing.T) {
	step := mgl64.Vec3{0, 0, 1}
	all := []Tracked[string]{
		{Key: "crosses", Ballistic: Ballistic{Position: mgl64.Vec3{0, 1, 50}, Velocity: step}},
		{Key: "on-bound", Ballistic: Ballistic{Position: mgl64.Vec3{0, 1, 49}, Velocity: step}},
		{Key: "outside", Ballistic: Ballistic{Position: mgl64.Vec3{0, 1, -60}, Velocity: step}},
		{Key: "inside", Ballistic: Ballistic{Position: mgl64.Vec3{10, 1, 0}, Velocity: step}},
	}

	survivors := AdvanceAndCull(all, 1, 50)

	require.Len(t, survivors, 2)
	assert.Equal(t, "on-bound", survivors[0].Key)
	assert.Equal(t, 50.0, survivors[0].Position.Z())
	assert.Equal(t, "inside", survivors[1].Key)
	assert.Equal(t, 1.0, survivors[1].Position.Z())
	assert.Equal(t, 50.0, all[0].Position.Z(), "input is not mutated")
}

func TestAdvanceAndCull_AdjacentRemovals(t *testing.T) {
	out := Ballistic{Position: mgl64.Vec3{50, 0, 0}, Velocity: mgl64.Vec3{1, 0, 0}}
	in := Ballistic{Position: mgl64.Vec3{0, 0, 0}, Velocity: mgl64.Vec3{1, 0, 0}}

	survivors := AdvanceAndCull([]Tracked[int]{
		{0, out}, {1, out}, {2, in}, {3, out}, {4, in},
	}, 1, 50)

	require.Len(t, survivors, 2)
	assert.Equal(t, 2, survivors[0].Key)
	assert.Equal(t, 4, survivors[1].Key)
}

func TestOutOfBounds_AnyAxis(t *testing.T) {
	assert.False(t, OutOfBounds(mgl64.Vec3{50, -50, 50}, 50))
	assert.True(t, OutOfBounds(mgl64.Vec3{0, 51, 0}, 50))
	assert.True(t, OutOfBounds(mgl64.Vec3{-50.01, 0, 0}, 50))
}

func TestFollowPose(t *testing.T) {
	target := Pose{Position: mgl64.Vec3{2, 0.25, 3}, Yaw: 0}
	cam := FollowPose(target, 5, 2)

	assert.True(t, cam.Position.ApproxEqual(mgl64.Vec3{2, 2.25, -2}))
	assert.Equal(t, target.Position, cam.Target)
}

func TestFollowPose_IsPure(t *testing.T) {
	target := Pose{Position: mgl64.Vec3{-7, 1, 12}, Yaw: 2.1}

	first := FollowPose(target, 5, 2)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FollowPose(target, 5, 2))
	}
	assert.Equal(t, first.View(), FollowPose(target, 5, 2).View())
}
