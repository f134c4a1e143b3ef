package factory

import (
	"github.com/automoto/gamepad-gun/archetypes"
	"github.com/automoto/gamepad-gun/components"
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/yohamta/donburi/ecs"
)

// CreateScenery spawns the configured hills.
func CreateScenery(ecs *ecs.ECS) {
	for _, box := range cfg.World.Hills {
		hill := archetypes.Hill.Spawn(ecs)
		components.Scenery.SetValue(hill, components.SceneryData{Box: box})
	}
}
