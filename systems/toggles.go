package systems

import (
	"github.com/automoto/gamepad-gun/components"
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateToggles flips the vibration and sound flags on button presses.
func UpdateToggles(ecs *ecs.ECS) {
	vibration := cfg.Button(cfg.ActionToggleVibration)
	sound := cfg.Button(cfg.ActionToggleSound)

	eachConnected(ecs, func(e *donburi.Entry, c *components.ControllerData) {
		t := components.Toggles.Get(e)

		if v := c.Toggle(t.VibrationEnabled, vibration); v != t.VibrationEnabled {
			t.VibrationEnabled = v
			components.ToggleChanged.Publish(ecs.World, components.ToggleChangedEvent{
				Slot: c.Slot, Toggle: components.ToggleVibration, Enabled: v,
			})
		}

		if s := c.Toggle(t.SoundEnabled, sound); s != t.SoundEnabled {
			t.SoundEnabled = s
			components.ToggleChanged.Publish(ecs.World, components.ToggleChangedEvent{
				Slot: c.Slot, Toggle: components.ToggleSound, Enabled: s,
			})
		}
	})
}
