package factory

import (
	"github.com/automoto/gamepad-gun/archetypes"
	"github.com/automoto/gamepad-gun/components"
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/automoto/gamepad-gun/shared/controller"
	"github.com/automoto/gamepad-gun/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// playerSpacing separates the start positions of additional slots.
const playerSpacing = 3.0

// CreatePlayer spawns the controlled aircraft for a controller slot. edges is
// the slot's tracker from the runtime's EdgeStore.
func CreatePlayer(ecs *ecs.ECS, slot int, edges *controller.EdgeState, toggles components.TogglesData) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Controller.SetValue(player, components.ControllerData{
		Slot:  slot,
		Edges: edges,
	})
	components.Transform.SetValue(player, components.TransformData{
		Pose: gamemath.Pose{
			Position: mgl64.Vec3{float64(slot) * playerSpacing, cfg.Movement.StartHeight, 0},
		},
	})
	components.Weapon.SetValue(player, components.WeaponData{
		State:         components.FireIdle,
		CanFireSingle: true,
		// First trigger pull fires immediately
		LastAutoFire: -cfg.Weapon.MaxFireInterval - 1,
		Mode:         cfg.Weapon.DefaultMode,
		ModeButton:   -1,
	})
	components.Toggles.SetValue(player, toggles)

	return player
}

// PlayerForSlot returns the player entity bound to slot.
func PlayerForSlot(ecs *ecs.ECS, slot int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		if found == nil && components.Controller.Get(e).Slot == slot {
			found = e
		}
	})
	return found, found != nil
}
