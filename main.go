package main

import (
	"flag"
	"image"
	"time"

	"github.com/automoto/gamepad-gun/assets"
	"github.com/automoto/gamepad-gun/config"
	"github.com/automoto/gamepad-gun/effects"
	"github.com/automoto/gamepad-gun/fonts"
	"github.com/automoto/gamepad-gun/gamepad"
	"github.com/automoto/gamepad-gun/logging"
	"github.com/automoto/gamepad-gun/scenes"
	"github.com/automoto/gamepad-gun/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "Config file (JSON, YAML or TOML)")
	logLevel := flag.String("log", "", "Log level (debug, info, warn, error)")
	players := flag.Int("players", 0, "Controller slots to simulate (0 = config)")
	debug := flag.Bool("debug", false, "Show the raw controller overlay (F1 toggles)")
	keyboard := flag.Bool("keyboard", false, "Emulate slot 0 with the keyboard when no gamepad is connected")
	flag.Parse()

	// Config errors are reported once the logger exists
	configErr := config.Load(*configPath)
	if *logLevel != "" {
		config.Log.Level = *logLevel
	}
	session := logging.Setup(config.Log.Level, nil)
	if configErr != nil {
		log.Error().Err(configErr).Msg("Config file ignored, using defaults")
	}

	if *players > 0 {
		config.Simulation.Players = *players
	}
	if *debug {
		config.Debug.ShowController = true
	}
	if *keyboard {
		config.Input.Keyboard = true
	}
	log.Info().Str("session", session).Int("players", config.Simulation.Players).Msg("Starting gamepad gun")

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("Could not load fonts")
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence("gamepad-gun"); err != nil {
		log.Warn().Err(err).Msg("Toggles will not be remembered")
	}

	sounds, err := assets.NewSoundBank(audio.NewContext(config.Audio.SampleRate), config.Audio.AssetDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not create sound bank")
	}
	defer sounds.Close()
	sounds.SetVolume(systems.SavedSFXVolume())
	sounds.LoadAll(config.Sound.SFXPaths)

	source := gamepad.NewSource(config.Input.Keyboard)
	dispatcher, err := effects.NewDispatcher(gamepad.NewRumbler(source), sounds, config.Haptics.PoolSize)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not create effect dispatcher")
	}
	defer func() { _ = dispatcher.Close(time.Second) }()

	ebiten.SetWindowTitle("Gamepad Gun")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.Simulation.TPS)

	scene := scenes.NewGunScene(source, dispatcher, config.Simulation.Players)
	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Error().Err(err).Msg("Game exited")
	}

	if err := systems.FlushSettings(); err != nil {
		log.Warn().Err(err).Msg("Toggles were not saved")
	}

	stats := dispatcher.Stats()
	log.Info().Int64("rumbles", stats.Pulses).Int64("sounds", stats.Sounds).Int64("dropped", stats.Dropped).Msg("Bye")
}
