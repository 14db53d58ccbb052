package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the sketchpad settings. Zero fields in a loaded file fall
// back to the defaults.
type Config struct {
	CanvasSize int      `toml:"canvas_size"`
	ThinWidth  float64  `toml:"thin_width"`
	ThickWidth float64  `toml:"thick_width"`
	Stickers   []string `toml:"stickers"`

	Listen    string `toml:"listen"`
	Advertise bool   `toml:"advertise"`
	Instance  string `toml:"instance"`
}

func Default() Config {
	return Config{
		CanvasSize: 256,
		ThinWidth:  2,
		ThickWidth: 6,
		Stickers:   []string{"⭐", "🌮", "🐸"},
		Listen:     ":8888",
		Advertise:  true,
	}
}

// Load reads a TOML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML data over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	def := Default()
	if cfg.CanvasSize <= 0 {
		cfg.CanvasSize = def.CanvasSize
	}
	if cfg.ThinWidth <= 0 {
		cfg.ThinWidth = def.ThinWidth
	}
	if cfg.ThickWidth <= 0 {
		cfg.ThickWidth = def.ThickWidth
	}
	if cfg.Listen == "" {
		cfg.Listen = def.Listen
	}
	return cfg, nil
}
