package factory

import (
	"github.com/automoto/gamepad-gun/archetypes"
	"github.com/automoto/gamepad-gun/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns a camera following the entity of slot.
func CreateCamera(ecs *ecs.ECS, slot int) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Slot: slot})
	return camera
}
