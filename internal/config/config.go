// Package config holds the demo application's tunables, with defaults that
// can be overridden from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full application configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Effect EffectConfig `yaml:"effect"`
	Sound  SoundConfig  `yaml:"sound"`
}

// WindowConfig sizes the demo window.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// EffectConfig tunes one particle effect attachment.
type EffectConfig struct {
	ParticleCount int `yaml:"particle_count"`
	CanvasWidth   int `yaml:"canvas_width"`
	CanvasHeight  int `yaml:"canvas_height"`
	MaxJitterMS   int `yaml:"max_jitter_ms"`
}

// SoundConfig controls the burst sound.
type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  480,
			Height: 640,
		},
		Effect: EffectConfig{
			ParticleCount: 30,
			CanvasWidth:   200,
			CanvasHeight:  200,
			MaxJitterMS:   1000,
		},
		Sound: SoundConfig{
			Enabled: true,
		},
	}
}

// Load reads config from a YAML file on top of the defaults. A missing
// file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
