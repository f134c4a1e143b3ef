package scenes

import (
	"github.com/automoto/gamepad-gun/shared/controller"
	"github.com/automoto/gamepad-gun/systems"
	"github.com/automoto/gamepad-gun/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewSimulation builds a world reading src with players controller slots and
// registers the simulation systems in tick order. Renderers are not added.
func NewSimulation(src controller.Source, players int) *ecs.ECS {
	if players < 1 {
		players = 1
	}

	e := ecs.NewECS(donburi.NewWorld())
	systems.SetInputSource(e, src)
	systems.GetOrCreateClock(e)
	systems.GetOrCreatePause(e)
	systems.GetOrCreateHUD(e)

	// Input always runs so edges stay current while paused
	e.AddSystem(systems.WithGameplayChecks("clock", systems.UpdateClock))
	e.AddSystem(systems.WithRecover("input", systems.UpdateInput))
	e.AddSystem(systems.WithRecover("pause", systems.UpdatePause))
	e.AddSystem(systems.WithRecover("toggles", systems.UpdateToggles))
	e.AddSystem(systems.WithRecover("mode buttons", systems.TrackModeButtons))

	e.AddSystem(systems.WithGameplayChecks("motion", systems.UpdateMotion))
	e.AddSystem(systems.WithGameplayChecks("weapons", systems.UpdateWeapons))
	e.AddSystem(systems.WithGameplayChecks("projectiles", systems.UpdateProjectiles))
	e.AddSystem(systems.WithGameplayChecks("camera", systems.UpdateCamera))

	e.AddSystem(systems.WithRecover("hud", systems.UpdateHUD))
	e.AddSystem(systems.WithRecover("commit", systems.CommitInput))
	e.AddSystem(systems.WithRecover("events", systems.ProcessEvents))

	systems.SubscribeHUD(e)

	factory.CreateScenery(e)
	for slot := 0; slot < players; slot++ {
		systems.SpawnPlayer(e, slot, systems.LoadToggles(slot))
	}
	factory.CreateCamera(e, 0)

	return e
}
