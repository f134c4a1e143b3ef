package systems

import (
	"github.com/automoto/gamepad-gun/components"
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/automoto/gamepad-gun/shared/gamemath"
	"github.com/automoto/gamepad-gun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles advances every projectile and removes the ones that left
// the play volume on this tick.
func UpdateProjectiles(ecs *ecs.ECS) {
	scale := GetOrCreateClock(ecs).Scale()

	var all []gamemath.Tracked[*donburi.Entry]
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		all = append(all, gamemath.Tracked[*donburi.Entry]{
			Key: e,
			Ballistic: gamemath.Ballistic{
				Position: components.Transform.Get(e).Position,
				Velocity: components.Projectile.Get(e).Velocity,
			},
		})
	})

	survivors := gamemath.AdvanceAndCull(all, scale, cfg.World.Bound)

	// Survivors keep input order, so one pass finds the culled entries.
	// Positions are written before any removal moves component storage.
	var toRemove []*donburi.Entry
	next := 0
	for _, t := range all {
		if next < len(survivors) && survivors[next].Key == t.Key {
			components.Transform.Get(t.Key).Position = survivors[next].Position
			next++
			continue
		}
		toRemove = append(toRemove, t.Key)
	}

	for _, e := range toRemove {
		e.Remove()
	}
}

// ProjectileCount returns the number of live projectiles.
func ProjectileCount(ecs *ecs.ECS) int {
	n := 0
	tags.Projectile.Each(ecs.World, func(*donburi.Entry) {
		n++
	})
	return n
}
