package components

import (
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ShotFiredEvent is published once per spawned projectile.
type ShotFiredEvent struct {
	Slot       int
	Mode       cfg.BulletMode
	Projectile donburi.Entity
	Origin     mgl64.Vec3
	Auto       bool // fired by the analog trigger
}

// SoundRequestEvent asks the effect handler to play a sound.
type SoundRequestEvent struct {
	Slot    int
	Sound   cfg.SoundID
	Enabled bool // the slot's sound toggle when the request was made
}

// HapticRequestEvent asks the effect handler for a rumble pulse.
type HapticRequestEvent struct {
	Slot    int
	Enabled bool // the slot's vibration toggle when the request was made
}

// ModeChangedEvent is published when the bullet mode changes.
type ModeChangedEvent struct {
	Slot int
	Mode cfg.BulletMode
}

// ToggleKind names a user toggle.
type ToggleKind int

const (
	ToggleVibration ToggleKind = iota
	ToggleSound
)

func (k ToggleKind) String() string {
	if k == ToggleSound {
		return "sound"
	}
	return "vibration"
}

// ToggleChangedEvent is published when a toggle flips.
type ToggleChangedEvent struct {
	Slot    int
	Toggle  ToggleKind
	Enabled bool
}

// ControllerConnectionEvent is published when a slot connects or disconnects.
type ControllerConnectionEvent struct {
	Slot      int
	Connected bool
}

var (
	ShotFired            = events.NewEventType[ShotFiredEvent]()
	SoundRequested       = events.NewEventType[SoundRequestEvent]()
	HapticRequested      = events.NewEventType[HapticRequestEvent]()
	ModeChanged          = events.NewEventType[ModeChangedEvent]()
	ToggleChanged        = events.NewEventType[ToggleChangedEvent]()
	ControllerConnection = events.NewEventType[ControllerConnectionEvent]()
)
