package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/cavewalk/internal/gamedata"
	"github.com/samdwyer/cavewalk/internal/world"
)

// Environment variables read by LoadConfig.
const (
	EnvPreset     = "CAVEWALK_PRESET"
	EnvRockRate   = "CAVEWALK_ROCK_RATE"
	EnvIterations = "CAVEWALK_ITERATIONS"
	EnvThreshold  = "CAVEWALK_THRESHOLD"
	EnvRadius     = "CAVEWALK_RADIUS"
	EnvSize       = "CAVEWALK_SIZE"
)

// Config holds explorer configuration options.
type Config struct {
	// Preset names the parameter set from presets.json to start from.
	Preset string
	// Params are the generation parameters after env overrides.
	Params world.Params
	// Framed draws the neighbor edges around the current grid.
	Framed bool
}

// LoadConfig resolves the preset (argument first, then CAVEWALK_PRESET, then
// "default") and applies any per-parameter environment overrides.
func LoadConfig(preset string) (Config, error) {
	if preset == "" {
		preset = os.Getenv(EnvPreset)
	}
	if preset == "" {
		preset = "default"
	}

	registry, err := gamedata.LoadPresetRegistry()
	if err != nil {
		return Config{}, err
	}
	def, err := registry.Get(preset)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Preset: def.ID, Params: def.Params(), Framed: true}
	if err := applyEnv(&cfg.Params); err != nil {
		return Config{}, err
	}
	if err := cfg.Params.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides parameters that are set in the environment.
func applyEnv(p *world.Params) error {
	if v := os.Getenv(EnvRockRate); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRockRate, err)
		}
		p.RockRate = f
	}

	ints := []struct {
		env string
		dst *int
	}{
		{EnvIterations, &p.Iterations},
		{EnvThreshold, &p.Threshold},
		{EnvRadius, &p.Radius},
		{EnvSize, &p.Size},
	}
	for _, iv := range ints {
		v := os.Getenv(iv.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", iv.env, err)
		}
		*iv.dst = n
	}
	return nil
}
