package systems

import (
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// ProcessEvents delivers every event queued this tick to its subscribers.
// Must run AFTER every system that publishes.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}

// WithRecover wraps a system so a panic is logged and the tick continues.
func WithRecover(name string, system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("system", name).Msg("System panicked")
			}
		}()
		system(e)
	}
}
