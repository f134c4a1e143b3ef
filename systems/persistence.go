package systems

import (
	"encoding/json"
	"sync"

	"github.com/automoto/gamepad-gun/components"
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/automoto/gamepad-gun/systems/factory"
	"github.com/panjf2000/ants/v2"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const settingsKey = "settings"

// SettingsStore is the subset of *gdata.Manager used for settings.
type SettingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SavedToggles is one slot's persisted feedback toggles.
type SavedToggles struct {
	VibrationEnabled bool `json:"vibration"`
	SoundEnabled     bool `json:"sound"`
}

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume float64              `json:"sfxVolume"`
	Players   map[int]SavedToggles `json:"players"`
}

var (
	settingsMu    sync.Mutex
	settingsStore SettingsStore
	settings      = defaultSettings()
	settingsDirty bool

	writeMu   sync.Mutex // one store write at a time
	saver     *ants.Pool
	saverOnce sync.Once
)

func defaultSettings() SavedSettings {
	return SavedSettings{
		SFXVolume: cfg.Audio.DefaultSFXVol,
		Players:   map[int]SavedToggles{},
	}
}

// InitPersistence opens the gdata store for appName and loads saved settings.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Could not initialize persistence")
		return err
	}
	UseSettingsStore(m)
	return nil
}

// UseSettingsStore replaces the backing store and reloads settings from it.
// A nil store keeps settings in memory only.
func UseSettingsStore(store SettingsStore) {
	settingsMu.Lock()
	defer settingsMu.Unlock()

	settingsStore = store
	settings = defaultSettings()
	settingsDirty = false
	if store == nil {
		return
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		log.Warn().Err(err).Msg("Could not load settings")
		return
	}
	if data == nil {
		// No saved settings yet, use defaults
		return
	}

	var saved SavedSettings
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Warn().Err(err).Msg("Could not parse saved settings")
		return
	}
	if saved.Players == nil {
		saved.Players = map[int]SavedToggles{}
	}
	settings = saved
}

// LoadToggles returns the saved toggles for slot; both are off by default.
func LoadToggles(slot int) components.TogglesData {
	settingsMu.Lock()
	defer settingsMu.Unlock()

	t := settings.Players[slot]
	return components.TogglesData{
		VibrationEnabled: t.VibrationEnabled,
		SoundEnabled:     t.SoundEnabled,
	}
}

// SavedSFXVolume returns the persisted effect volume.
func SavedSFXVolume() float64 {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	return settings.SFXVolume
}

// SetToggles records the toggles of slot in memory. They reach the store on
// the next FlushSettings.
func SetToggles(slot int, t components.TogglesData) {
	settingsMu.Lock()
	defer settingsMu.Unlock()

	settings.Players[slot] = SavedToggles{
		VibrationEnabled: t.VibrationEnabled,
		SoundEnabled:     t.SoundEnabled,
	}
	settingsDirty = true
}

// FlushSettings writes unsaved settings to the store. It blocks on disk I/O,
// so the tick only reaches it through the saver pool.
func FlushSettings() error {
	writeMu.Lock()
	defer writeMu.Unlock()

	settingsMu.Lock()
	if !settingsDirty || settingsStore == nil {
		settingsMu.Unlock()
		return nil
	}
	store := settingsStore
	data, err := json.Marshal(settings)
	settingsDirty = false
	settingsMu.Unlock()

	if err != nil {
		log.Warn().Err(err).Msg("Could not serialize settings")
		return err
	}

	if err := store.SaveItem(settingsKey, data); err != nil {
		settingsMu.Lock()
		settingsDirty = true
		settingsMu.Unlock()
		log.Warn().Err(err).Msg("Could not save settings")
		return err
	}
	return nil
}

// scheduleFlush saves in the background. Two workers let one flush wait
// behind a running write and pick up everything changed meanwhile; when both
// are busy the waiting one already covers this change.
func scheduleFlush() {
	saverOnce.Do(func() {
		pool, err := ants.NewPool(2, ants.WithNonblocking(true), ants.WithPanicHandler(func(p interface{}) {
			log.Error().Interface("panic", p).Msg("Settings saver panicked")
		}))
		if err != nil {
			log.Warn().Err(err).Msg("Could not start settings saver, saving at exit only")
			return
		}
		saver = pool
	})
	if saver == nil {
		return
	}

	if err := saver.Submit(func() { _ = FlushSettings() }); err != nil {
		log.Debug().Err(err).Msg("Settings flush already pending")
	}
}

// SubscribePersistence saves a slot's toggles whenever one of them changes.
// The write happens off the tick; call FlushSettings at exit.
func SubscribePersistence(ecs *ecs.ECS) {
	components.ToggleChanged.Subscribe(ecs.World, func(w donburi.World, ev components.ToggleChangedEvent) {
		player, ok := factory.PlayerForSlot(ecs, ev.Slot)
		if !ok {
			return
		}
		SetToggles(ev.Slot, *components.Toggles.Get(player))
		scheduleFlush()
	})
}
