package systems

import (
	"github.com/automoto/gamepad-gun/components"
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/automoto/gamepad-gun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause on a press of any connected pause button.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	button := cfg.Button(cfg.ActionPause)

	eachConnected(ecs, func(e *donburi.Entry, c *components.ControllerData) {
		if c.JustPressed(button) {
			TogglePause(ecs, c.Slot)
		}
	})
}

// TogglePause flips the pause state on behalf of slot, or
// components.KeyboardSlot for the window hotkey.
func TogglePause(ecs *ecs.ECS, slot int) {
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = !pause.IsPaused
	pause.PausedBy = slot
	log.Debug().Bool("paused", pause.IsPaused).Int("slot", slot).Msg("Pause toggled")
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(screen, 0, 0, width, height, cfg.UI.BackdropColor, false)

	face := fonts.HUDBanner.Get()
	msg := "PAUSED"
	bounds := text.BoundString(face, msg)
	text.Draw(screen, msg, face, (int(width)-bounds.Dx())/2, int(height)/2, cfg.UI.TextColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a simulation system with the pause check and
// panic recovery.
func WithGameplayChecks(name string, system ecs.System) ecs.System {
	return WithRecover(name, WithPauseCheck(system))
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused: false,
			PausedBy: components.KeyboardSlot,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
