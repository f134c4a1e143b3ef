package components

import (
	"github.com/automoto/gamepad-gun/shared/controller"
	"github.com/yohamta/donburi"
)

// RuntimeData binds a simulation to its input device (singleton component).
type RuntimeData struct {
	Source controller.Source
	Edges  *controller.EdgeStore
}

var Runtime = donburi.NewComponentType[RuntimeData]()
