package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// MovementConfig contains motion and orientation tuning
type MovementConfig struct {
	MoveSpeed        float64 `mapstructure:"moveSpeed"`        // units per tick
	SprintMultiplier float64 `mapstructure:"sprintMultiplier"` // applied while the sprint button is held
	RotationSpeed    float64 `mapstructure:"rotationSpeed"`    // radians per tick at full deflection
	YawDeadzone      float64 `mapstructure:"yawDeadzone"`      // stick noise threshold for rotation
	StartHeight      float64 `mapstructure:"startHeight"`      // model sits slightly above the ground
}

// WeaponConfig contains fire-control tuning
type WeaponConfig struct {
	MinFireInterval time.Duration `mapstructure:"minFireInterval"` // trigger fully depressed
	MaxFireInterval time.Duration `mapstructure:"maxFireInterval"` // trigger barely touched
	DefaultMode     BulletMode    `mapstructure:"defaultMode"`
}

// ProjectileConfig contains projectile tuning
type ProjectileConfig struct {
	Speed       float64 `mapstructure:"speed"`       // units per tick
	SpawnHeight float64 `mapstructure:"spawnHeight"` // muzzle height above the ground
	Radius      float64 `mapstructure:"radius"`      // render only
}

// WorldConfig describes the play volume and scenery
type WorldConfig struct {
	Bound float64 `mapstructure:"bound"` // projectiles beyond +/- Bound on any axis are removed
	Hills []Box   `mapstructure:"hills"`
}

// Box is an axis-aligned scenery box centred on (X, Y, Z).
type Box struct {
	X, Y, Z float64
	W, H, D float64
}

// CameraConfig contains follow-camera configuration
type CameraConfig struct {
	Distance float64 `mapstructure:"distance"` // behind the target
	Height   float64 `mapstructure:"height"`   // above the target
	FOV      float64 `mapstructure:"fov"`      // degrees
	Near     float64 `mapstructure:"near"`
	Far      float64 `mapstructure:"far"`
}

// HapticsConfig describes the rumble played on every shot
type HapticsConfig struct {
	StartDelay      time.Duration `mapstructure:"startDelay"`
	Duration        time.Duration `mapstructure:"duration"`
	WeakMagnitude   float64       `mapstructure:"weakMagnitude"`
	StrongMagnitude float64       `mapstructure:"strongMagnitude"`
	PoolSize        int           `mapstructure:"poolSize"` // effect workers
}

// SimulationConfig contains loop configuration
type SimulationConfig struct {
	TPS     int `mapstructure:"tps"`     // ticks per second
	Players int `mapstructure:"players"` // controller slots simulated
}

// UIConfig contains HUD colors and layout
type UIConfig struct {
	Margin        float64
	LineHeight    float64
	BannerFrames  int // frames the toggle banner takes to fade out
	TextColor     color.RGBA
	GroundColor   color.RGBA
	GridColor     color.RGBA
	HillColor     color.RGBA
	PlayerColor   color.RGBA
	BackdropColor color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowController bool `mapstructure:"showController"` // raw controller overlay
}

type Config struct {
	Width  int
	Height int
}

var C *Config
var Movement MovementConfig
var Weapon WeaponConfig
var Projectile ProjectileConfig
var World WorldConfig
var Camera CameraConfig
var Haptics HapticsConfig
var Simulation SimulationConfig
var UI UIConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Movement = MovementConfig{
		MoveSpeed:        0.1,
		SprintMultiplier: 10,
		RotationSpeed:    0.05,
		YawDeadzone:      0.1,
		StartHeight:      0.25,
	}

	Weapon = WeaponConfig{
		MinFireInterval: 100 * time.Millisecond,
		MaxFireInterval: 800 * time.Millisecond,
		DefaultMode:     BulletRed,
	}

	Projectile = ProjectileConfig{
		Speed:       0.5,
		SpawnHeight: 1,
		Radius:      0.1,
	}

	World = WorldConfig{
		Bound: 50,
		Hills: []Box{
			{X: -5, Y: 1, Z: -5, W: 4, H: 2, D: 4},
			{X: 10, Y: 1.5, Z: 5, W: 6, H: 3, D: 6},
		},
	}

	Camera = CameraConfig{
		Distance: 5,
		Height:   2,
		FOV:      75,
		Near:     0.1,
		Far:      1000,
	}

	Haptics = HapticsConfig{
		StartDelay:      0,
		Duration:        200 * time.Millisecond,
		WeakMagnitude:   0.5,
		StrongMagnitude: 1.0,
		PoolSize:        16,
	}

	Simulation = SimulationConfig{
		TPS:     60,
		Players: 1,
	}

	UI = UIConfig{
		Margin:        12,
		LineHeight:    18,
		BannerFrames:  90,
		TextColor:     color.RGBA{240, 240, 240, 255},
		GroundColor:   color.RGBA{135, 206, 235, 255},
		GridColor:     color.RGBA{70, 110, 130, 255},
		HillColor:     color.RGBA{101, 67, 33, 255},
		PlayerColor:   color.RGBA{0, 119, 255, 255},
		BackdropColor: color.RGBA{0, 0, 0, 160},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowController: false,
	}
}

// TickStep is the simulated time covered by one tick.
func TickStep() time.Duration {
	if Simulation.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(Simulation.TPS)
}
