package factory

import (
	"github.com/automoto/gamepad-gun/archetypes"
	"github.com/automoto/gamepad-gun/components"
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/automoto/gamepad-gun/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a projectile at the origin pose's muzzle height,
// flying along the pose's heading at the configured speed.
func CreateProjectile(ecs *ecs.ECS, origin gamemath.Pose, mode cfg.BulletMode, owner int) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	b := gamemath.Launch(origin, cfg.Projectile.Speed, cfg.Projectile.SpawnHeight)

	components.Transform.SetValue(p, components.TransformData{
		Pose: gamemath.Pose{Position: b.Position, Yaw: origin.Yaw},
	})
	components.Projectile.SetValue(p, components.ProjectileData{
		Velocity: b.Velocity,
		Mode:     mode,
		Owner:    owner,
	})

	return p
}
