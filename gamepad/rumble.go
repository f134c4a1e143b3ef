package gamepad

import (
	"fmt"
	"time"

	"github.com/automoto/gamepad-gun/effects"
	"github.com/hajimehoshi/ebiten/v2"
)

// Rumbler vibrates gamepads read by a Source.
type Rumbler struct {
	src   *Source
	sleep func(time.Duration)
}

// NewRumbler creates a rumbler for the gamepads of src.
func NewRumbler(src *Source) *Rumbler {
	return &Rumbler{src: src, sleep: time.Sleep}
}

// SupportsHaptics reports whether slot is a connected gamepad. ebiten does
// not expose motor presence, so an unsupported pad simply ignores the call.
func (r *Rumbler) SupportsHaptics(slot int) bool {
	_, ok := r.src.gamepad(slot)
	return ok
}

// PlayEffect waits out the start delay, then vibrates the gamepad in slot.
func (r *Rumbler) PlayEffect(slot int, e effects.Effect) error {
	if e.StartDelay > 0 {
		r.sleep(e.StartDelay)
	}
	id, ok := r.src.gamepad(slot)
	if !ok {
		return fmt.Errorf("gamepad slot %d disconnected", slot)
	}
	ebiten.VibrateGamepad(id, &ebiten.VibrateGamepadOptions{
		Duration:        e.Duration,
		StrongMagnitude: e.StrongMagnitude,
		WeakMagnitude:   e.WeakMagnitude,
	})
	return nil
}
