package systems

import (
	"github.com/automoto/gamepad-gun/components"
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/automoto/gamepad-gun/shared/controller"
	"github.com/automoto/gamepad-gun/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateRuntime returns the singleton Runtime component, creating if needed
func GetOrCreateRuntime(ecs *ecs.ECS) *components.RuntimeData {
	entry, ok := components.Runtime.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Runtime))
		components.Runtime.SetValue(entry, components.RuntimeData{
			Edges: controller.NewEdgeStore(),
		})
	}
	return components.Runtime.Get(entry)
}

// SetInputSource binds the simulation to an input device.
func SetInputSource(ecs *ecs.ECS, src controller.Source) {
	GetOrCreateRuntime(ecs).Source = src
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
// A new clock steps at the configured tick rate.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
		step := cfg.TickStep()
		components.Clock.SetValue(entry, components.ClockData{
			Step:    step,
			Nominal: step,
		})
	}
	return components.Clock.Get(entry)
}

// SpawnPlayer creates the player for slot wired to the slot's edge tracker.
func SpawnPlayer(ecs *ecs.ECS, slot int, toggles components.TogglesData) *donburi.Entry {
	edges := GetOrCreateRuntime(ecs).Edges.For(slot)
	return factory.CreatePlayer(ecs, slot, edges, toggles)
}
