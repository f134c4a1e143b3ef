package components

import (
	"github.com/automoto/gamepad-gun/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	gamemath.CameraPose
	Slot int // slot whose entity the camera follows
}

var Camera = donburi.NewComponentType[CameraData]()
