package systems

import (
	"github.com/automoto/gamepad-gun/components"
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/automoto/gamepad-gun/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// motionParams builds the stick mapping from configuration.
func motionParams() gamemath.MotionParams {
	return gamemath.MotionParams{
		MoveSpeed:        cfg.Movement.MoveSpeed,
		SprintMultiplier: cfg.Movement.SprintMultiplier,
		RotationSpeed:    cfg.Movement.RotationSpeed,
		YawDeadzone:      cfg.Movement.YawDeadzone,
		MoveXAxis:        cfg.Axis(cfg.AxisMoveX),
		MoveYAxis:        cfg.Axis(cfg.AxisMoveY),
		YawAxis:          cfg.Axis(cfg.AxisYaw),
		SprintButton:     cfg.Button(cfg.ActionSprint),
	}
}

// UpdateMotion moves and turns every connected player from its sticks.
func UpdateMotion(ecs *ecs.ECS) {
	params := motionParams()
	scale := GetOrCreateClock(ecs).Scale()

	eachConnected(ecs, func(e *donburi.Entry, c *components.ControllerData) {
		tf := components.Transform.Get(e)
		tf.Pose = gamemath.StepMotion(tf.Pose, c.Snapshot, params, scale)
	})
}
