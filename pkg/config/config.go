// Package config loads the editor's TOML configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mountfort/gridstack/pkg/errors"
)

// Grid configures the canvas geometry.
type Grid struct {
	RowUnitHeight  float64 `toml:"row_unit_height"`
	ContainerWidth float64 `toml:"container_width"`
	Padding        float64 `toml:"padding"`
	MaxRows        int     `toml:"max_rows"`
}

// Editor configures editing behavior.
type Editor struct {
	DefaultTextColor string `toml:"default_text_color"`
	SelectionHistory int    `toml:"selection_history"`
}

// Preview configures the preview renderer.
type Preview struct {
	Width  int    `toml:"width"`
	Format string `toml:"format"`
}

// Server configures the preview HTTP server.
type Server struct {
	Addr string `toml:"addr"`
}

// Config is the full application configuration.
type Config struct {
	Grid    Grid    `toml:"grid"`
	Editor  Editor  `toml:"editor"`
	Preview Preview `toml:"preview"`
	Server  Server  `toml:"server"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: Grid{
			RowUnitHeight:  80,
			ContainerWidth: 800,
			Padding:        16,
			MaxRows:        12,
		},
		Editor: Editor{
			DefaultTextColor: "#000000",
			SelectionHistory: 10,
		},
		Preview: Preview{
			Width:  80,
			Format: "text",
		},
		Server: Server{
			Addr: ":8080",
		},
	}
}

// DefaultPath returns ~/.config/gridstack/config.toml, or an empty
// string if the home directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gridstack", "config.toml")
}

// Load reads a TOML config from path, overlaying it onto the defaults.
// A missing file returns the defaults unchanged; a malformed or invalid
// file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if c.Grid.RowUnitHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.row_unit_height must be positive")
	}
	if c.Grid.ContainerWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.container_width must be positive")
	}
	if c.Grid.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.padding cannot be negative")
	}
	if c.Grid.MaxRows < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.max_rows must be at least 1")
	}
	if c.Editor.DefaultTextColor != "" {
		if err := errors.ValidateColor(c.Editor.DefaultTextColor); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "editor.default_text_color")
		}
	}
	if c.Editor.SelectionHistory < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "editor.selection_history must be at least 1")
	}
	if c.Preview.Width < 20 {
		return errors.New(errors.ErrCodeInvalidConfig, "preview.width must be at least 20")
	}
	switch c.Preview.Format {
	case "text", "markdown", "json":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "preview.format must be text, markdown, or json")
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr cannot be empty")
	}
	return nil
}
