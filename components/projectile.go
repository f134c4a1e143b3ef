package components

import (
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ProjectileData is a live projectile; its position lives in Transform.
type ProjectileData struct {
	Velocity mgl64.Vec3 // fixed at spawn
	Mode     cfg.BulletMode
	Owner    int // slot that fired it
}

var Projectile = donburi.NewComponentType[ProjectileData]()
