// Package config loads the optional TOML run configuration.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config tunes a filter run. Every field has a usable default, so the
// file is optional.
type Config struct {
	// Indent is the output indentation width.
	Indent int `toml:"indent"`
	// OutputDir receives the filtered file in debug mode.
	OutputDir string `toml:"output_dir"`
	// Strict promotes extraction warnings to a run failure.
	Strict bool `toml:"strict"`
	// Types extends the primitive-name to placeholder-type map,
	// e.g. NUMERIC = "%Numeric".
	Types map[string]string `toml:"types"`
}

func Default() Config {
	return Config{
		Indent:    4,
		OutputDir: "./output",
	}
}

// Load reads path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.Indent <= 0 {
		return Config{}, fmt.Errorf("load config %s: indent must be positive, got %d", path, cfg.Indent)
	}
	return cfg, nil
}
