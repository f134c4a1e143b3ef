package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/gamepad-gun/components"
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/automoto/gamepad-gun/effects"
	"github.com/automoto/gamepad-gun/gamepad"
	"github.com/automoto/gamepad-gun/shared/controller"
	"github.com/automoto/gamepad-gun/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GunScene is the windowed demo: one simulation plus its renderers.
type GunScene struct {
	ecs        *ecs.ECS
	source     controller.Source
	dispatcher *effects.Dispatcher
	players    int
	once       sync.Once
}

// NewGunScene creates the scene. dispatcher may be nil to run without
// sound and rumble.
func NewGunScene(src controller.Source, dispatcher *effects.Dispatcher, players int) *GunScene {
	return &GunScene{
		source:     src,
		dispatcher: dispatcher,
		players:    players,
	}
}

func (gs *GunScene) Update() {
	gs.once.Do(gs.configure)

	// Keyboard hotkeys
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		hud := systems.GetOrCreateHUD(gs.ecs)
		hud.ShowController = !hud.ShowController
	}
	if anyJustPressed(cfg.Input.PauseKeys, inpututil.IsKeyJustPressed) {
		systems.TogglePause(gs.ecs, components.KeyboardSlot)
	}

	gs.ecs.Update()
}

func (gs *GunScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GunScene) configure() {
	gs.ecs = NewSimulation(gs.source, gs.players)

	if gs.dispatcher != nil {
		gs.dispatcher.Subscribe(gs.ecs.World)
	}
	systems.SubscribePersistence(gs.ecs)

	if pads, ok := gs.source.(*gamepad.Source); ok {
		components.ControllerConnection.Subscribe(gs.ecs.World, func(w donburi.World, ev components.ControllerConnectionEvent) {
			if ev.Connected {
				log.Info().Int("slot", ev.Slot).Stringer("kind", pads.Kind(ev.Slot)).Msg("Controller identified")
			}
		})
	}

	// Add renderers
	gs.ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawControllerState)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawPause)
}

// anyJustPressed reports whether any of keys went down this frame.
func anyJustPressed(keys []ebiten.Key, justPressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if justPressed(k) {
			return true
		}
	}
	return false
}
