package systems

import (
	"github.com/automoto/gamepad-gun/components"
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/automoto/gamepad-gun/shared/gamemath"
	"github.com/automoto/gamepad-gun/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWeapons runs mode selection, single fire and trigger fire for every
// connected player. Mode selection runs first so a shot on the same tick
// already uses the new color.
func UpdateWeapons(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)

	eachConnected(ecs, func(e *donburi.Entry, c *components.ControllerData) {
		w := components.Weapon.Get(e)

		updateMode(ecs, c, w)
		updateSingleFire(ecs, e, c, w)
		updateTriggerFire(ecs, e, c, w, clock)
	})
}

// TrackModeButtons records which mode-select button went down last. It runs
// while paused too, so a press made during the pause still counts.
func TrackModeButtons(ecs *ecs.ECS) {
	blue := cfg.Button(cfg.ActionModeBlue)
	red := cfg.Button(cfg.ActionModeRed)

	eachConnected(ecs, func(e *donburi.Entry, c *components.ControllerData) {
		w := components.Weapon.Get(e)

		blueRise, redRise := c.JustPressed(blue), c.JustPressed(red)
		switch {
		case blueRise && redRise:
			w.ModeButton = -1
		case blueRise:
			w.ModeButton = blue
		case redRise:
			w.ModeButton = red
		}
	})
}

// updateMode applies the mode-select buttons. While both are held the one
// pressed last wins; if both went down on the same tick the mode is kept.
func updateMode(ecs *ecs.ECS, c *components.ControllerData, w *components.WeaponData) {
	blue := cfg.Button(cfg.ActionModeBlue)
	red := cfg.Button(cfg.ActionModeRed)

	mode := w.Mode
	bluePressed, redPressed := c.Pressed(blue), c.Pressed(red)
	switch {
	case bluePressed && redPressed:
		if w.ModeButton == blue {
			mode = cfg.BulletBlue
		} else if w.ModeButton == red {
			mode = cfg.BulletRed
		}
	case bluePressed:
		mode = cfg.BulletBlue
	case redPressed:
		mode = cfg.BulletRed
	}

	if mode == w.Mode {
		return
	}
	w.Mode = mode
	components.ModeChanged.Publish(ecs.World, components.ModeChangedEvent{
		Slot: c.Slot,
		Mode: mode,
	})
}

// updateSingleFire fires once per press of the single-fire button.
func updateSingleFire(ecs *ecs.ECS, e *donburi.Entry, c *components.ControllerData, w *components.WeaponData) {
	pressed := c.Pressed(cfg.Button(cfg.ActionFireSingle))

	switch w.State {
	case components.FireIdle:
		if pressed && w.CanFireSingle {
			shoot(ecs, e, c, w, false)
			w.State = components.FireSingleHeld
			w.CanFireSingle = false
		}
	case components.FireSingleHeld:
		if !pressed {
			w.State = components.FireIdle
			w.CanFireSingle = true
		}
	}
}

// updateTriggerFire fires continuously while the analog trigger is held,
// faster the deeper it is pulled.
func updateTriggerFire(ecs *ecs.ECS, e *donburi.Entry, c *components.ControllerData, w *components.WeaponData, clock *components.ClockData) {
	trigger := cfg.Button(cfg.ActionFireAuto)
	if !c.Pressed(trigger) {
		return
	}

	interval := gamemath.FireInterval(c.Snapshot.Value(trigger), cfg.Weapon.MinFireInterval, cfg.Weapon.MaxFireInterval)
	if !gamemath.AutoFireReady(clock.Now, w.LastAutoFire, interval) {
		return
	}
	shoot(ecs, e, c, w, true)
	w.LastAutoFire = clock.Now
}

// shoot spawns a projectile and requests the shot's sound and rumble.
func shoot(ecs *ecs.ECS, e *donburi.Entry, c *components.ControllerData, w *components.WeaponData, auto bool) {
	pose := components.Transform.Get(e).Pose
	toggles := components.Toggles.Get(e)

	p := factory.CreateProjectile(ecs, pose, w.Mode, c.Slot)
	w.ShotsFired++

	components.ShotFired.Publish(ecs.World, components.ShotFiredEvent{
		Slot:       c.Slot,
		Mode:       w.Mode,
		Projectile: p.Entity(),
		Origin:     components.Transform.Get(p).Position,
		Auto:       auto,
	})
	components.SoundRequested.Publish(ecs.World, components.SoundRequestEvent{
		Slot:    c.Slot,
		Sound:   cfg.SoundGunshot,
		Enabled: toggles.SoundEnabled,
	})
	components.HapticRequested.Publish(ecs.World, components.HapticRequestEvent{
		Slot:    c.Slot,
		Enabled: toggles.VibrationEnabled,
	})
}
