package components

import (
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/yohamta/donburi"
)

// SceneryData is a static box drawn for orientation. It never collides.
type SceneryData struct {
	cfg.Box
}

var Scenery = donburi.NewComponentType[SceneryData]()
