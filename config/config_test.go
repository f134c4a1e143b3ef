package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefaults(t *testing.T) {
	movement, weapon, world, haptics, log, keyboard := Movement, Weapon, World, Haptics, Log, Input.Keyboard
	t.Cleanup(func() {
		Movement, Weapon, World, Haptics, Log, Input.Keyboard = movement, weapon, world, haptics, log, keyboard
	})
}

func TestLoad_EmptyPathKeepsDefaults(t *testing.T) {
	restoreDefaults(t)

	require.NoError(t, Load(""))
	assert.Equal(t, 0.1, Movement.MoveSpeed)
	assert.Equal(t, 100*time.Millisecond, Weapon.MinFireInterval)
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	restoreDefaults(t)

	err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 50.0, World.Bound)
}

func TestLoad_OverlaysFile(t *testing.T) {
	restoreDefaults(t)

	path := filepath.Join(t.TempDir(), "gun.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
movement:
  moveSpeed: 0.2
weapon:
  minFireInterval: 50ms
world:
  bound: 80
log:
  level: debug
input:
  keyboard: true
`), 0o644))

	require.NoError(t, Load(path))

	assert.Equal(t, 0.2, Movement.MoveSpeed)
	assert.Equal(t, 10.0, Movement.SprintMultiplier, "unset keys keep defaults")
	assert.Equal(t, 50*time.Millisecond, Weapon.MinFireInterval)
	assert.Equal(t, 800*time.Millisecond, Weapon.MaxFireInterval)
	assert.Equal(t, 80.0, World.Bound)
	assert.Len(t, World.Hills, 2)
	assert.Equal(t, "debug", Log.Level)
	assert.True(t, Input.Keyboard)
}

func TestLoad_MalformedFile(t *testing.T) {
	restoreDefaults(t)

	path := filepath.Join(t.TempDir(), "gun.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"movement": `), 0o644))

	assert.Error(t, Load(path))
}

func TestBindings(t *testing.T) {
	assert.Equal(t, 0, Button(ActionFireSingle))
	assert.Equal(t, 1, Button(ActionToggleSound))
	assert.Equal(t, 2, Button(ActionToggleVibration))
	assert.Equal(t, 4, Button(ActionModeBlue))
	assert.Equal(t, 5, Button(ActionModeRed))
	assert.Equal(t, 7, Button(ActionFireAuto))
	assert.Equal(t, 10, Button(ActionSprint))
	assert.Equal(t, 9, Button(ActionPause))
	assert.Equal(t, -1, Button(ActionNone))
	assert.Equal(t, 2, Axis(AxisYaw))
	assert.ElementsMatch(t, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, Input.PauseKeys)
}

func TestTickStep(t *testing.T) {
	tps := Simulation.TPS
	t.Cleanup(func() { Simulation.TPS = tps })

	Simulation.TPS = 100
	assert.Equal(t, 10*time.Millisecond, TickStep())
	Simulation.TPS = 0
	assert.Equal(t, time.Second/60, TickStep())
}
