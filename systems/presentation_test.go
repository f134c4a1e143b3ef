package systems

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/automoto/gamepad-gun/components"
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/automoto/gamepad-gun/shared/controller"
	"github.com/automoto/gamepad-gun/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestStatusLines(t *testing.T) {
	c := &components.ControllerData{
		Slot:      0,
		Connected: true,
		Snapshot:  pad{buttons: map[int]float64{fireButton: 1, triggerButton: 0.456}}.snapshot(),
		Edges:     controller.NewEdgeState(),
	}
	lines := statusLines(c, &components.TogglesData{SoundEnabled: true}, &components.WeaponData{ShotsFired: 3})

	assert.Equal(t, []string{"P1", "Fire ●", "R2 45%", "Vibration Off", "Sound On", "Shots 3"}, lines)

	c.Connected = false
	assert.Equal(t, []string{"P1 (no controller)"}, statusLines(c, &components.TogglesData{}, &components.WeaponData{}))
}

func TestBanner_FadesOut(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	SubscribeHUD(e)

	components.ToggleChanged.Publish(e.World, components.ToggleChangedEvent{Slot: 0, Toggle: components.ToggleSound, Enabled: true})
	ProcessEvents(e)

	hud := GetOrCreateHUD(e)
	assert.Equal(t, "P1 Sound On", hud.Banner)
	assert.Equal(t, float32(1), hud.BannerAlpha)

	UpdateHUD(e)
	assert.Less(t, hud.BannerAlpha, float32(1))

	for i := 0; i < cfg.UI.BannerFrames; i++ {
		UpdateHUD(e)
	}
	assert.Empty(t, hud.Banner)
	assert.Nil(t, hud.BannerTween)
}

func TestBanner_ModeChange(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	SubscribeHUD(e)

	components.ModeChanged.Publish(e.World, components.ModeChangedEvent{Slot: 1, Mode: cfg.BulletBlue})
	ProcessEvents(e)

	assert.Equal(t, "P2 Blue bullets", GetOrCreateHUD(e).Banner)
}

func TestControllerLines(t *testing.T) {
	snap := controller.NewSnapshot(
		[]float64{0.5, -1, 0, 0, 0.25},
		[]controller.ButtonState{{Pressed: true, Value: 1}, {}},
	)

	lines := controllerLines(2, true, snap)

	require.Len(t, lines, 4)
	assert.Equal(t, "Slot 2 connected", lines[0])
	assert.Equal(t, "a0 +0.50  a1 -1.00  a2 +0.00  a3 +0.00", lines[1])
	assert.Equal(t, "a4 +0.25", lines[2])
	assert.Equal(t, "b0 *1.00  b1  0.00", lines[3])

	assert.Equal(t, []string{"Slot 0 disconnected"}, controllerLines(0, false, controller.Snapshot{}))
}

func TestProjector_TargetAtScreenCenter(t *testing.T) {
	cam := gamemath.FollowPose(gamemath.Pose{Position: mgl64.Vec3{3, 0, 4}, Yaw: 0.4}, 5, 2)
	pr := newProjector(cam, 1280, 720)

	x, y, depth, ok := pr.project(cam.Target)
	require.True(t, ok)
	assert.InDelta(t, 640, x, 1e-6)
	assert.InDelta(t, 360, y, 1e-6)
	assert.Positive(t, depth)

	// Above the target projects higher on screen
	_, yAbove, _, ok := pr.project(cam.Target.Add(mgl64.Vec3{0, 1, 0}))
	require.True(t, ok)
	assert.Less(t, yAbove, y)

	// Behind the camera is not drawn
	behind := cam.Position.Add(cam.Position.Sub(cam.Target))
	_, _, _, ok = pr.project(behind)
	assert.False(t, ok)
}

type memStore struct {
	mu      sync.Mutex
	items   map[string][]byte
	saveErr error
	block   chan struct{} // SaveItem waits on it when set
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.block != nil {
		<-m.block
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func (m *memStore) saved(t *testing.T) (SavedSettings, bool) {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.items[settingsKey]
	if !ok {
		return SavedSettings{}, false
	}
	var s SavedSettings
	require.NoError(t, json.Unmarshal(data, &s))
	return s, true
}

func TestPersistence_RoundTrip(t *testing.T) {
	t.Cleanup(func() { UseSettingsStore(nil) })
	store := &memStore{items: map[string][]byte{}}

	UseSettingsStore(store)
	assert.Equal(t, components.TogglesData{}, LoadToggles(0), "both off by default")
	assert.Equal(t, cfg.Audio.DefaultSFXVol, SavedSFXVolume())

	SetToggles(1, components.TogglesData{VibrationEnabled: true})
	_, ok := store.saved(t)
	require.False(t, ok, "nothing written before a flush")
	require.NoError(t, FlushSettings())
	_, ok = store.saved(t)
	require.True(t, ok)

	UseSettingsStore(store)
	assert.Equal(t, components.TogglesData{VibrationEnabled: true}, LoadToggles(1))
	assert.Equal(t, components.TogglesData{}, LoadToggles(0))
}

func TestPersistence_FlushWithoutChangesWritesNothing(t *testing.T) {
	t.Cleanup(func() { UseSettingsStore(nil) })
	store := &memStore{items: map[string][]byte{}}
	UseSettingsStore(store)

	require.NoError(t, FlushSettings())
	_, ok := store.saved(t)
	assert.False(t, ok)
}

func TestPersistence_CorruptDataUsesDefaults(t *testing.T) {
	t.Cleanup(func() { UseSettingsStore(nil) })
	UseSettingsStore(&memStore{items: map[string][]byte{settingsKey: []byte("{")}})

	assert.Equal(t, components.TogglesData{}, LoadToggles(0))
}

func TestPersistence_SaveErrorKeepsChanges(t *testing.T) {
	t.Cleanup(func() { UseSettingsStore(nil) })
	store := &memStore{items: map[string][]byte{}, saveErr: errors.New("disk full")}
	UseSettingsStore(store)

	SetToggles(0, components.TogglesData{SoundEnabled: true})
	assert.Error(t, FlushSettings())
	assert.True(t, LoadToggles(0).SoundEnabled, "kept in memory")

	store.mu.Lock()
	store.saveErr = nil
	store.mu.Unlock()
	require.NoError(t, FlushSettings(), "retried on the next flush")
	saved, ok := store.saved(t)
	require.True(t, ok)
	assert.True(t, saved.Players[0].SoundEnabled)
}

func TestPersistence_SavesOnToggleChange(t *testing.T) {
	t.Cleanup(func() { UseSettingsStore(nil) })
	store := &memStore{items: map[string][]byte{}}

	h := newHarness(t, 1)
	UseSettingsStore(store)
	SubscribePersistence(h.ecs)

	h.run(press(soundButton), 1)

	assert.Eventually(t, func() bool {
		saved, ok := store.saved(t)
		return ok && saved.Players[0].SoundEnabled && !saved.Players[0].VibrationEnabled
	}, time.Second, 5*time.Millisecond)
}

func TestPersistence_SlowStoreDoesNotBlockTick(t *testing.T) {
	t.Cleanup(func() { UseSettingsStore(nil) })
	store := &memStore{items: map[string][]byte{}, block: make(chan struct{})}

	h := newHarness(t, 1)
	UseSettingsStore(store)
	SubscribePersistence(h.ecs)

	done := make(chan struct{})
	go func() {
		h.run(press(soundButton), 1)
		h.run(idle, 1)
		h.run(press(rumbleButton), 1)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		close(store.block)
		t.Fatal("tick waited for the settings store")
	}

	close(store.block)
	assert.Eventually(t, func() bool {
		saved, ok := store.saved(t)
		return ok && saved.Players[0].SoundEnabled && saved.Players[0].VibrationEnabled
	}, time.Second, 5*time.Millisecond)
}
