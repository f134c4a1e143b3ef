package systems

import (
	"github.com/automoto/gamepad-gun/components"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput reads one snapshot per player slot.
// Must run BEFORE every system that reads ControllerData.
func UpdateInput(ecs *ecs.ECS) {
	rt := GetOrCreateRuntime(ecs)
	if rt.Source == nil {
		return
	}

	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Controller.Get(e)

		snap, ok := rt.Source.Read(c.Slot)
		if ok != c.Connected {
			c.Connected = ok
			if ok {
				log.Info().Int("slot", c.Slot).
					Int("axes", len(snap.Axes)).
					Int("buttons", len(snap.Buttons)).
					Msg("Gamepad connected")
			} else {
				log.Info().Int("slot", c.Slot).Msg("Gamepad disconnected")
			}
			components.ControllerConnection.Publish(ecs.World, components.ControllerConnectionEvent{
				Slot:      c.Slot,
				Connected: ok,
			})
		}

		// Disconnected slots keep their last snapshot and edge state
		if !ok {
			return
		}
		c.Snapshot = snap
	})
}

// CommitInput stores this tick's pressed flags as the previous state.
// Must run AFTER every system that reads edges.
func CommitInput(ecs *ecs.ECS) {
	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Controller.Get(e)
		if !c.Connected || c.Edges == nil {
			return
		}
		c.Edges.Commit(c.Snapshot)
	})
}

// eachConnected calls fn for every player whose controller is connected.
func eachConnected(ecs *ecs.ECS, fn func(e *donburi.Entry, c *components.ControllerData)) {
	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Controller.Get(e)
		if !c.Connected {
			return
		}
		fn(e, c)
	})
}
