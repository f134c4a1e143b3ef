package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundGunshot
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int     `mapstructure:"sampleRate"`
	DefaultSFXVol float64 `mapstructure:"defaultSfxVolume"`
	AssetDir      string  `mapstructure:"assetDir"` // sound paths are relative to this
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		AssetDir:      ".",
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundGunshot: "sounds/gunshot.mp3",
		},
		VolumeMultipliers: map[SoundID]float64{},
	}
}
