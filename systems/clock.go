package systems

import "github.com/yohamta/donburi/ecs"

// UpdateClock advances simulation time by one step.
// Must run first so every system in the tick sees the same Now.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	clock.Tick++
	clock.Now += clock.Step
}
