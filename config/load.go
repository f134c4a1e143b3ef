package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// LogConfig controls the logger
type LogConfig struct {
	Level string `mapstructure:"level"`
}

var Log = LogConfig{Level: "info"}

// sections maps config file keys onto the package-level config values.
func sections() map[string]interface{} {
	return map[string]interface{}{
		"movement":   &Movement,
		"weapon":     &Weapon,
		"projectile": &Projectile,
		"world":      &World,
		"camera":     &Camera,
		"haptics":    &Haptics,
		"simulation": &Simulation,
		"audio":      &Audio,
		"debug":      &Debug,
		"log":        &Log,
	}
}

// Load overlays values from a JSON, YAML or TOML file onto the defaults.
// Keys missing from the file keep their defaults; a missing file is not an error.
func Load(path string) error {
	if path == "" {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	for key, target := range sections() {
		if !v.IsSet(key) {
			continue
		}
		if err := v.UnmarshalKey(key, target); err != nil {
			return fmt.Errorf("error decoding %q: %w", key, err)
		}
	}

	if v.IsSet("input.keyboard") {
		Input.Keyboard = v.GetBool("input.keyboard")
	}
	return nil
}
