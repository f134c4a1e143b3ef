package systems

import (
	"github.com/automoto/gamepad-gun/components"
	"github.com/automoto/gamepad-gun/config"
	"github.com/automoto/gamepad-gun/shared/gamemath"
	"github.com/automoto/gamepad-gun/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera places every camera behind the player it follows.
// Must run AFTER UpdateMotion so the camera sees this tick's pose.
func UpdateCamera(e *ecs.ECS) {
	components.Camera.Each(e.World, func(cameraEntry *donburi.Entry) {
		camera := components.Camera.Get(cameraEntry)

		playerEntry, ok := factory.PlayerForSlot(e, camera.Slot)
		if !ok {
			return // nothing to follow yet
		}
		target := components.Transform.Get(playerEntry).Pose

		camera.CameraPose = gamemath.FollowPose(target, config.Camera.Distance, config.Camera.Height)
	})
}

// GetCamera returns the first camera, if any.
func GetCamera(e *ecs.ECS) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}
