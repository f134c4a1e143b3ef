package components

import (
	"time"

	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/yohamta/donburi"
)

// FireState is the single-shot state machine's state.
type FireState int

const (
	FireIdle       FireState = iota
	FireSingleHeld           // single-fire button down, shot already fired
)

func (s FireState) String() string {
	if s == FireSingleHeld {
		return "single-held"
	}
	return "idle"
}

// WeaponData is the fire-control state for one controlled entity.
type WeaponData struct {
	State         FireState
	CanFireSingle bool          // false only while the single-fire button stays down
	LastAutoFire  time.Duration // simulation time of the last trigger shot
	Mode          cfg.BulletMode
	ModeButton    int // last mode-select button pressed, -1 before any
	ShotsFired    int
}

var Weapon = donburi.NewComponentType[WeaponData]()

// TogglesData holds the user-toggled feedback flags.
type TogglesData struct {
	VibrationEnabled bool
	SoundEnabled     bool
}

var Toggles = donburi.NewComponentType[TogglesData]()
