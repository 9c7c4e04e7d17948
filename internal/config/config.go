// Package config loads viewer settings from a TOML file on top of defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

type Window struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	MinWidth  int    `toml:"min_width"`
	MinHeight int    `toml:"min_height"`
}

type Zoom struct {
	Step          float64 `toml:"step"`
	DoubleClickMs int     `toml:"double_click_ms"`
}

type Vector struct {
	// Mode is "page" or "raster".
	Mode    string  `toml:"mode"`
	Upscale float64 `toml:"upscale"`
}

type Log struct {
	Level string `toml:"level"`
}

type Config struct {
	Window Window `toml:"window"`
	Zoom   Zoom   `toml:"zoom"`
	Vector Vector `toml:"vector"`
	Log    Log    `toml:"log"`
}

var ErrInvalid = errors.New("config: invalid value")

// Default leaves the window size at zero, meaning "size from the monitor".
func Default() Config {
	return Config{
		Window: Window{Title: "Graphvizer Viewer", MinWidth: 480, MinHeight: 320},
		Zoom:   Zoom{Step: 0.25, DoubleClickMs: 300},
		Vector: Vector{Mode: "page", Upscale: 1.333},
		Log:    Log{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", filepath.Base(path), err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Zoom.Step <= 0 || c.Zoom.Step >= 4 {
		return fmt.Errorf("%w: zoom.step %v", ErrInvalid, c.Zoom.Step)
	}
	if c.Zoom.DoubleClickMs <= 0 {
		return fmt.Errorf("%w: zoom.double_click_ms %d", ErrInvalid, c.Zoom.DoubleClickMs)
	}
	if c.Vector.Mode != "page" && c.Vector.Mode != "raster" {
		return fmt.Errorf("%w: vector.mode %q", ErrInvalid, c.Vector.Mode)
	}
	if c.Vector.Upscale <= 0 {
		return fmt.Errorf("%w: vector.upscale %v", ErrInvalid, c.Vector.Upscale)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}

func (c Config) DoubleClick() time.Duration {
	return time.Duration(c.Zoom.DoubleClickMs) * time.Millisecond
}

func (c Config) LogLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
