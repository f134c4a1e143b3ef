package gamepad

import (
	"math"
	"testing"

	"github.com/automoto/gamepad-gun/effects"
	"github.com/automoto/gamepad-gun/shared/controller"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(held ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, h := range held {
			if h == k {
				return true
			}
		}
		return false
	}
}

func TestKeyboardSnapshot_Neutral(t *testing.T) {
	s := keyboardSnapshot(keys())

	assert.Len(t, s.Buttons, int(ebiten.StandardGamepadButtonMax)+1)
	for i := range s.Buttons {
		assert.False(t, s.Pressed(i))
	}
	for i := range s.Axes {
		assert.Zero(t, s.Axis(i))
	}
}

func TestKeyboardSnapshot_ButtonsAndAxes(t *testing.T) {
	s := keyboardSnapshot(keys(ebiten.KeySpace, ebiten.KeyF, ebiten.KeyW, ebiten.KeyRight))

	assert.True(t, s.Pressed(int(ebiten.StandardGamepadButtonRightBottom)))
	assert.Equal(t, 1.0, s.Value(int(ebiten.StandardGamepadButtonFrontBottomRight)))
	assert.False(t, s.Pressed(int(ebiten.StandardGamepadButtonRightRight)))
	assert.Equal(t, -1.0, s.Axis(int(ebiten.StandardGamepadAxisLeftStickVertical)))
	assert.Equal(t, 1.0, s.Axis(int(ebiten.StandardGamepadAxisRightStickHorizontal)))
	assert.Zero(t, s.Axis(int(ebiten.StandardGamepadAxisLeftStickHorizontal)))
}

func TestKeyboardSnapshot_OpposingKeysCancel(t *testing.T) {
	s := keyboardSnapshot(keys(ebiten.KeyA, ebiten.KeyD))
	assert.Zero(t, s.Axis(int(ebiten.StandardGamepadAxisLeftStickHorizontal)))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindXbox, kindOf("Xbox Wireless Controller"))
	assert.Equal(t, KindPlayStation, kindOf("DualSense Wireless Controller"))
	assert.Equal(t, KindPlayStation, kindOf("PS4 Controller"))
	assert.Equal(t, KindGeneric, kindOf("8BitDo SN30"))
	assert.Equal(t, "Keyboard", KindKeyboard.String())
}

// fakePads lets a test plug and unplug gamepads by ID. Each pad reports its
// ID on axis 0 so a test can tell which pad a slot read.
type fakePads struct {
	ids []ebiten.GamepadID
}

func (f *fakePads) list(dst []ebiten.GamepadID) []ebiten.GamepadID {
	return append(dst, f.ids...)
}

func (f *fakePads) source() *Source {
	s := NewSource(false)
	s.listIDs = f.list
	s.read = func(id ebiten.GamepadID) controller.Snapshot {
		return controller.NewSnapshot([]float64{float64(id) / 10}, nil)
	}
	return s
}

func padIn(t *testing.T, s *Source, slot int) (ebiten.GamepadID, bool) {
	t.Helper()
	snap, ok := s.Read(slot)
	if !ok {
		return 0, false
	}
	return ebiten.GamepadID(math.Round(snap.Axis(0) * 10)), true
}

func TestSource_SlotsFollowConnectOrder(t *testing.T) {
	pads := &fakePads{ids: []ebiten.GamepadID{3, 7}}
	s := pads.source()

	id, ok := padIn(t, s, 0)
	require.True(t, ok)
	assert.Equal(t, ebiten.GamepadID(3), id)
	id, ok = padIn(t, s, 1)
	require.True(t, ok)
	assert.Equal(t, ebiten.GamepadID(7), id)

	_, ok = s.Read(2)
	assert.False(t, ok)
}

func TestSource_UnplugKeepsOtherSlots(t *testing.T) {
	pads := &fakePads{ids: []ebiten.GamepadID{3, 7}}
	s := pads.source()
	padIn(t, s, 0)

	pads.ids = []ebiten.GamepadID{7}

	_, ok := padIn(t, s, 0)
	assert.False(t, ok, "slot 0 is absent while its pad is unplugged")
	id, ok := padIn(t, s, 1)
	require.True(t, ok)
	assert.Equal(t, ebiten.GamepadID(7), id, "slot 1 keeps its pad")

	_, ok = s.gamepad(0)
	assert.False(t, ok)
	gid, ok := s.gamepad(1)
	require.True(t, ok)
	assert.Equal(t, ebiten.GamepadID(7), gid)
}

func TestSource_ReconnectReturnsToSlot(t *testing.T) {
	pads := &fakePads{ids: []ebiten.GamepadID{3, 7}}
	s := pads.source()
	padIn(t, s, 0)

	pads.ids = []ebiten.GamepadID{7}
	padIn(t, s, 0)
	pads.ids = []ebiten.GamepadID{3, 7}

	id, ok := padIn(t, s, 0)
	require.True(t, ok)
	assert.Equal(t, ebiten.GamepadID(3), id)
	id, _ = padIn(t, s, 1)
	assert.Equal(t, ebiten.GamepadID(7), id)
}

func TestSource_NewPadFillsLowestFreeSlot(t *testing.T) {
	pads := &fakePads{ids: []ebiten.GamepadID{3, 7}}
	s := pads.source()
	padIn(t, s, 0)

	pads.ids = []ebiten.GamepadID{7}
	padIn(t, s, 0)
	pads.ids = []ebiten.GamepadID{7, 9}

	id, ok := padIn(t, s, 0)
	require.True(t, ok)
	assert.Equal(t, ebiten.GamepadID(9), id)
	id, _ = padIn(t, s, 1)
	assert.Equal(t, ebiten.GamepadID(7), id)
}

func TestRumbler_UsesStickySlot(t *testing.T) {
	pads := &fakePads{ids: []ebiten.GamepadID{3, 7}}
	s := pads.source()
	padIn(t, s, 0)
	r := NewRumbler(s)

	pads.ids = []ebiten.GamepadID{7}
	padIn(t, s, 0)

	assert.False(t, r.SupportsHaptics(0))
	assert.True(t, r.SupportsHaptics(1))
	assert.Error(t, r.PlayEffect(0, effects.ShotEffect()))
}

func TestKeyboardSnapshot_PauseKeysAreNotButtons(t *testing.T) {
	s := keyboardSnapshot(keys(ebiten.KeyP, ebiten.KeyEscape))
	assert.False(t, s.Pressed(int(ebiten.StandardGamepadButtonCenterRight)))
}
