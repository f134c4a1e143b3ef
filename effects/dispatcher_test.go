package effects

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/automoto/gamepad-gun/components"
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type fakeRumbler struct {
	mu        sync.Mutex
	supported map[int]bool
	played    []Effect
	slots     []int
	fail      bool
	panics    bool
}

func (f *fakeRumbler) SupportsHaptics(slot int) bool {
	return f.supported[slot]
}

func (f *fakeRumbler) PlayEffect(slot int, e Effect) error {
	if f.panics {
		panic("motor on fire")
	}
	if f.fail {
		return errors.New("device gone")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.played = append(f.played, e)
	f.slots = append(f.slots, slot)
	return nil
}

func (f *fakeRumbler) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.played)
}

type fakeSounds struct {
	mu     sync.Mutex
	played []cfg.SoundID
}

func (f *fakeSounds) Play(id cfg.SoundID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.played = append(f.played, id)
}

func (f *fakeSounds) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.played)
}

func newDispatcher(t *testing.T, r Rumbler, s SoundPlayer) *Dispatcher {
	t.Helper()
	d, err := NewDispatcher(r, s, 4)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close(time.Second) })
	return d
}

func TestPulse_PlaysShotEffect(t *testing.T) {
	r := &fakeRumbler{supported: map[int]bool{0: true}}
	d := newDispatcher(t, r, nil)

	d.Pulse(0, true)

	require.Eventually(t, func() bool { return r.count() == 1 }, time.Second, time.Millisecond)
	r.mu.Lock()
	defer r.mu.Unlock()
	assert.Equal(t, Effect{
		StartDelay:      0,
		Duration:        200 * time.Millisecond,
		WeakMagnitude:   0.5,
		StrongMagnitude: 1.0,
	}, r.played[0])
	assert.Equal(t, []int{0}, r.slots)
}

func TestPulse_Disabled(t *testing.T) {
	r := &fakeRumbler{supported: map[int]bool{0: true}}
	d := newDispatcher(t, r, nil)

	d.Pulse(0, false)

	assert.Never(t, func() bool { return r.count() > 0 }, 50*time.Millisecond, 5*time.Millisecond)
	assert.Equal(t, int64(0), d.Stats().Pulses)
}

func TestPulse_UnsupportedSlotSkipped(t *testing.T) {
	r := &fakeRumbler{supported: map[int]bool{0: true}}
	d := newDispatcher(t, r, nil)

	d.Pulse(1, true)

	assert.Never(t, func() bool { return r.count() > 0 }, 50*time.Millisecond, 5*time.Millisecond)
	assert.Equal(t, int64(0), d.Stats().Dropped)
}

func TestPulse_NoRumbler(t *testing.T) {
	d := newDispatcher(t, nil, nil)
	assert.NotPanics(t, func() { d.Pulse(0, true) })
}

func TestPulse_FailureAndPanicDoNotEscape(t *testing.T) {
	failing := &fakeRumbler{supported: map[int]bool{0: true}, fail: true}
	d := newDispatcher(t, failing, nil)
	d.Pulse(0, true)

	panicking := &fakeRumbler{supported: map[int]bool{0: true}, panics: true}
	p := newDispatcher(t, panicking, nil)
	assert.NotPanics(t, func() { p.Pulse(0, true) })

	require.NoError(t, d.Close(time.Second))
	require.NoError(t, p.Close(time.Second))
	assert.Equal(t, int64(0), d.Stats().Pulses)
	assert.Equal(t, int64(0), p.Stats().Pulses)
}

func TestPlaySound(t *testing.T) {
	s := &fakeSounds{}
	d := newDispatcher(t, nil, s)

	d.PlaySound(cfg.SoundGunshot, false)
	d.PlaySound(cfg.SoundNone, true)
	d.PlaySound(cfg.SoundGunshot, true)

	require.Eventually(t, func() bool { return s.count() == 1 }, time.Second, time.Millisecond)
	assert.Never(t, func() bool { return s.count() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestSubscribe_RoutesEvents(t *testing.T) {
	r := &fakeRumbler{supported: map[int]bool{0: true}}
	s := &fakeSounds{}
	d := newDispatcher(t, r, s)

	w := donburi.NewWorld()
	d.Subscribe(w)

	components.HapticRequested.Publish(w, components.HapticRequestEvent{Slot: 0, Enabled: true})
	components.HapticRequested.Publish(w, components.HapticRequestEvent{Slot: 0, Enabled: false})
	components.SoundRequested.Publish(w, components.SoundRequestEvent{Slot: 0, Sound: cfg.SoundGunshot, Enabled: true})
	events.ProcessAllEvents(w)

	require.Eventually(t, func() bool { return r.count() == 1 && s.count() == 1 }, time.Second, time.Millisecond)
	require.NoError(t, d.Close(time.Second))
	assert.Equal(t, Stats{Pulses: 1, Sounds: 1}, d.Stats())
}
