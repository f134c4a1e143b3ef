package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state (singleton component).
type PauseData struct {
	IsPaused bool
	PausedBy int // slot that paused, KeyboardSlot for the hotkey
}

// KeyboardSlot marks actions taken from window hotkeys rather than a slot.
const KeyboardSlot = -1

var Pause = donburi.NewComponentType[PauseData]()
