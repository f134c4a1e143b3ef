package components

import (
	"github.com/automoto/gamepad-gun/shared/controller"
	"github.com/yohamta/donburi"
)

// ControllerData is the per-slot input state for one controlled entity.
// Edges holds last tick's pressed flags and is committed once at the end of
// every tick in which the slot was connected.
type ControllerData struct {
	Slot      int
	Connected bool                // false freezes every stateful system for this slot
	Snapshot  controller.Snapshot // this tick's read, or the last one while disconnected
	Edges     *controller.EdgeState
}

// Pressed reports whether button is held this tick.
func (c *ControllerData) Pressed(button int) bool {
	return c.Snapshot.Pressed(button)
}

// JustPressed reports a rising edge against last tick's state.
func (c *ControllerData) JustPressed(button int) bool {
	return c.Edges.RiseEdge(button, c.Snapshot)
}

// Toggle flips flag on a rising edge of button.
func (c *ControllerData) Toggle(flag bool, button int) bool {
	return c.Edges.Toggle(flag, button, c.Snapshot)
}

var Controller = donburi.NewComponentType[ControllerData]()
