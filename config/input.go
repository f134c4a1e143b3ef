package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical gamepad action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionFireSingle
	ActionFireAuto
	ActionToggleSound
	ActionToggleVibration
	ActionModeBlue
	ActionModeRed
	ActionSprint
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// AxisID represents a logical analog axis
type AxisID int

const (
	AxisMoveX AxisID = iota
	AxisMoveY
	AxisYaw
	AxisCount
)

// BulletMode selects the projectile color
type BulletMode int

const (
	BulletRed BulletMode = iota
	BulletBlue
)

func (m BulletMode) String() string {
	if m == BulletBlue {
		return "blue"
	}
	return "red"
}

// InputBinding maps an action onto a standard-layout button index and the
// keyboard keys that emulate it.
type InputBinding struct {
	Button int
	Keys   []ebiten.Key
}

// AxisBinding maps an axis onto a standard-layout axis index and the keys
// pushing it to -1 and +1.
type AxisBinding struct {
	Axis     int
	Negative []ebiten.Key
	Positive []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings     map[ActionID]InputBinding
	AxisBindings map[AxisID]AxisBinding
	// Keyboard emulates slot 0 when no gamepad occupies it
	Keyboard bool
	// PauseKeys toggle the pause whether or not a gamepad is connected
	PauseKeys []ebiten.Key
}

// BulletColors maps modes to projectile colors
var BulletColors = map[BulletMode][3]uint8{
	BulletRed:  {0xff, 0x00, 0x00},
	BulletBlue: {0x00, 0x00, 0xff},
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionFireSingle: {
				// A / Cross button
				Button: int(ebiten.StandardGamepadButtonRightBottom),
				Keys:   []ebiten.Key{ebiten.KeySpace},
			},
			ActionToggleSound: {
				// B / Circle button
				Button: int(ebiten.StandardGamepadButtonRightRight),
				Keys:   []ebiten.Key{ebiten.KeyM},
			},
			ActionToggleVibration: {
				// X / Square button
				Button: int(ebiten.StandardGamepadButtonRightLeft),
				Keys:   []ebiten.Key{ebiten.KeyV},
			},
			ActionModeBlue: {
				// LB / L1
				Button: int(ebiten.StandardGamepadButtonFrontTopLeft),
				Keys:   []ebiten.Key{ebiten.KeyQ},
			},
			ActionModeRed: {
				// RB / R1
				Button: int(ebiten.StandardGamepadButtonFrontTopRight),
				Keys:   []ebiten.Key{ebiten.KeyE},
			},
			ActionFireAuto: {
				// RT / R2, analog
				Button: int(ebiten.StandardGamepadButtonFrontBottomRight),
				Keys:   []ebiten.Key{ebiten.KeyF},
			},
			ActionSprint: {
				// Left stick press
				Button: int(ebiten.StandardGamepadButtonLeftStick),
				Keys:   []ebiten.Key{ebiten.KeyShiftLeft},
			},
			ActionPause: {
				// Start / Options; keys are handled by PauseKeys
				Button: int(ebiten.StandardGamepadButtonCenterRight),
			},
		},
		AxisBindings: map[AxisID]AxisBinding{
			AxisMoveX: {
				Axis:     int(ebiten.StandardGamepadAxisLeftStickHorizontal),
				Negative: []ebiten.Key{ebiten.KeyA},
				Positive: []ebiten.Key{ebiten.KeyD},
			},
			AxisMoveY: {
				Axis:     int(ebiten.StandardGamepadAxisLeftStickVertical),
				Negative: []ebiten.Key{ebiten.KeyW},
				Positive: []ebiten.Key{ebiten.KeyS},
			},
			AxisYaw: {
				Axis:     int(ebiten.StandardGamepadAxisRightStickHorizontal),
				Negative: []ebiten.Key{ebiten.KeyLeft},
				Positive: []ebiten.Key{ebiten.KeyRight},
			},
		},
		Keyboard:  false,
		PauseKeys: []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape},
	}
}

// Button returns the button index bound to an action, or -1.
func Button(id ActionID) int {
	b, ok := Input.Bindings[id]
	if !ok {
		return -1
	}
	return b.Button
}

// Axis returns the axis index bound to a logical axis, or -1.
func Axis(id AxisID) int {
	a, ok := Input.AxisBindings[id]
	if !ok {
		return -1
	}
	return a.Axis
}
