// Package gamepad reads ebiten gamepads into controller snapshots and drives
// their vibration motors.
package gamepad

import (
	"slices"
	"strings"
	"sync"

	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/automoto/gamepad-gun/shared/controller"
	"github.com/hajimehoshi/ebiten/v2"
)

// Kind is the controller family, used for labels only.
type Kind int

const (
	KindGeneric Kind = iota
	KindXbox
	KindPlayStation
	KindKeyboard
)

func (k Kind) String() string {
	switch k {
	case KindXbox:
		return "Xbox"
	case KindPlayStation:
		return "PlayStation"
	case KindKeyboard:
		return "Keyboard"
	default:
		return "Gamepad"
	}
}

// Source reads connected gamepads. A gamepad keeps the slot it was given
// when it connected; other pads never shift into it. A new gamepad takes the
// lowest slot without a connected pad. With keyboard emulation on, slot 0
// falls back to the keyboard while no gamepad holds it.
type Source struct {
	keyboard bool
	listIDs  func([]ebiten.GamepadID) []ebiten.GamepadID
	read     func(ebiten.GamepadID) controller.Snapshot

	mu    sync.Mutex
	ids   []ebiten.GamepadID
	slots []slotPad
	kinds map[ebiten.GamepadID]Kind
}

// slotPad is the gamepad assigned to a slot. present is false while that
// pad is unplugged.
type slotPad struct {
	id      ebiten.GamepadID
	present bool
}

// NewSource creates a gamepad source.
func NewSource(keyboard bool) *Source {
	return &Source{
		keyboard: keyboard,
		listIDs:  ebiten.AppendGamepadIDs,
		read:     readGamepad,
		kinds:    make(map[ebiten.GamepadID]Kind),
	}
}

// Read implements controller.Source. It must be called from the game loop.
func (s *Source) Read(slot int) (controller.Snapshot, bool) {
	s.mu.Lock()
	s.sync()
	id, ok := s.lookupLocked(slot)
	s.mu.Unlock()

	if ok {
		return s.read(id), true
	}
	if s.keyboard && slot == 0 {
		return keyboardSnapshot(ebiten.IsKeyPressed), true
	}
	return controller.Snapshot{}, false
}

// Kind returns the controller family in slot.
func (s *Source) Kind(slot int) Kind {
	id, ok := s.gamepad(slot)
	if !ok {
		if s.keyboard && slot == 0 {
			return KindKeyboard
		}
		return KindGeneric
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if k, ok := s.kinds[id]; ok {
		return k
	}
	k := kindOf(ebiten.GamepadName(id))
	s.kinds[id] = k
	return k
}

// gamepad returns the connected gamepad in slot as of the last Read. It does
// not poll ebiten, so it is safe off the game loop.
func (s *Source) gamepad(slot int) (ebiten.GamepadID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookupLocked(slot)
}

func (s *Source) lookupLocked(slot int) (ebiten.GamepadID, bool) {
	if slot < 0 || slot >= len(s.slots) || !s.slots[slot].present {
		return 0, false
	}
	return s.slots[slot].id, true
}

// sync updates slot assignments from the connected gamepad IDs.
func (s *Source) sync() {
	s.ids = s.listIDs(s.ids[:0])
	slices.Sort(s.ids)

	for i := range s.slots {
		present := slices.Contains(s.ids, s.slots[i].id)
		if s.slots[i].present && !present {
			// ebiten may hand the ID to the next pad that connects
			delete(s.kinds, s.slots[i].id)
		}
		s.slots[i].present = present
	}

	for _, id := range s.ids {
		if s.assigned(id) {
			continue
		}
		slot := s.freeSlot()
		s.slots[slot] = slotPad{id: id, present: true}
	}
}

func (s *Source) assigned(id ebiten.GamepadID) bool {
	for _, p := range s.slots {
		if p.present && p.id == id {
			return true
		}
	}
	return false
}

// freeSlot returns the lowest slot without a connected pad, growing the
// table when every slot is taken.
func (s *Source) freeSlot() int {
	for i, p := range s.slots {
		if !p.present {
			return i
		}
	}
	s.slots = append(s.slots, slotPad{})
	return len(s.slots) - 1
}

// readGamepad reads the standard layout when the browser or driver knows the
// mapping, raw indices otherwise.
func readGamepad(id ebiten.GamepadID) controller.Snapshot {
	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		return readStandard(id)
	}
	return readRaw(id)
}

func readStandard(id ebiten.GamepadID) controller.Snapshot {
	axes := make([]float64, ebiten.StandardGamepadAxisMax+1)
	for a := range axes {
		axes[a] = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxis(a))
	}

	buttons := make([]controller.ButtonState, ebiten.StandardGamepadButtonMax+1)
	for b := range buttons {
		btn := ebiten.StandardGamepadButton(b)
		buttons[b] = controller.ButtonState{
			Pressed: ebiten.IsStandardGamepadButtonPressed(id, btn),
			Value:   ebiten.StandardGamepadButtonValue(id, btn),
		}
	}
	return controller.NewSnapshot(axes, buttons)
}

func readRaw(id ebiten.GamepadID) controller.Snapshot {
	axes := make([]float64, ebiten.GamepadAxisCount(id))
	for a := range axes {
		axes[a] = ebiten.GamepadAxisValue(id, ebiten.GamepadAxisType(a))
	}

	buttons := make([]controller.ButtonState, ebiten.GamepadButtonCount(id))
	for b := range buttons {
		pressed := ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(b))
		buttons[b] = controller.ButtonState{Pressed: pressed, Value: pressedValue(pressed)}
	}
	return controller.NewSnapshot(axes, buttons)
}

// keyboardSnapshot builds a standard-layout snapshot from the configured keys.
func keyboardSnapshot(isPressed func(ebiten.Key) bool) controller.Snapshot {
	held := func(keys []ebiten.Key) bool {
		for _, k := range keys {
			if isPressed(k) {
				return true
			}
		}
		return false
	}

	axes := make([]float64, ebiten.StandardGamepadAxisMax+1)
	for _, binding := range cfg.Input.AxisBindings {
		if binding.Axis < 0 || binding.Axis >= len(axes) {
			continue
		}
		v := 0.0
		if held(binding.Negative) {
			v--
		}
		if held(binding.Positive) {
			v++
		}
		axes[binding.Axis] = v
	}

	buttons := make([]controller.ButtonState, ebiten.StandardGamepadButtonMax+1)
	for _, binding := range cfg.Input.Bindings {
		if binding.Button < 0 || binding.Button >= len(buttons) {
			continue
		}
		if held(binding.Keys) {
			buttons[binding.Button] = controller.ButtonState{Pressed: true, Value: 1}
		}
	}
	return controller.NewSnapshot(axes, buttons)
}

// kindOf guesses the controller family from its name.
func kindOf(name string) Kind {
	name = strings.ToLower(name)
	switch {
	case strings.Contains(name, "xbox"), strings.Contains(name, "xinput"):
		return KindXbox
	case strings.Contains(name, "playstation"), strings.Contains(name, "dualshock"),
		strings.Contains(name, "dualsense"), strings.Contains(name, "ps4"), strings.Contains(name, "ps5"):
		return KindPlayStation
	default:
		return KindGeneric
	}
}

func pressedValue(pressed bool) float64 {
	if pressed {
		return 1
	}
	return 0
}
