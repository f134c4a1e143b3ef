package components

import (
	"github.com/automoto/gamepad-gun/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is an entity's pose. The controlled aircraft's pose is only
// written by the motion system.
type TransformData struct {
	gamemath.Pose
}

var Transform = donburi.NewComponentType[TransformData]()
