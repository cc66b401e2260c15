// Package config provides YAML-based game configuration loading and
// difficulty presets for Pentix.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pentix/internal/games/pentix/engine"
)

// PentixConfig contains all configuration for the Pentix game.
type PentixConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Pieces     PiecesConfig     `yaml:"pieces"`
	Saves      SavesConfig      `yaml:"saves"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the grid dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the gravity and soft-drop cadence.
type TimingConfig struct {
	BaseIntervalMS  int `yaml:"base_interval_ms"`  // fall interval at level 1
	BoostIntervalMS int `yaml:"boost_interval_ms"` // soft-drop interval
	BoostHoldMS     int `yaml:"boost_hold_ms"`     // how long a soft-drop key press counts as held
}

// BaseInterval returns the level 1 fall interval.
func (t TimingConfig) BaseInterval() time.Duration {
	return time.Duration(t.BaseIntervalMS) * time.Millisecond
}

// BoostInterval returns the soft-drop interval.
func (t TimingConfig) BoostInterval() time.Duration {
	return time.Duration(t.BoostIntervalMS) * time.Millisecond
}

// BoostHold returns the window after a soft-drop press during which the
// key is treated as held down.
func (t TimingConfig) BoostHold() time.Duration {
	return time.Duration(t.BoostHoldMS) * time.Millisecond
}

// PiecesConfig selects the shape catalog.
type PiecesConfig struct {
	Catalog string `yaml:"catalog"` // "pentix" or "classic"
}

// SavesConfig defines where snapshots are written.
type SavesConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`    // snapshot file for the default slot (file backend)
}

// Save backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// DifficultyConfig holds the preset used when a game starts without an
// explicit level.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// Validate reports the first invalid setting.
func (c PentixConfig) Validate() error {
	if c.Board.Width < 4 || c.Board.Height < 4 {
		return fmt.Errorf("config: board must be at least 4x4, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Timing.BaseIntervalMS <= 0 || c.Timing.BoostIntervalMS <= 0 || c.Timing.BoostHoldMS <= 0 {
		return fmt.Errorf("config: timing intervals must be positive")
	}
	catalog, err := engine.CatalogByName(c.Pieces.Catalog)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Board.Width < catalog.MaxWidth() {
		return fmt.Errorf("config: board width %d is narrower than the %s catalog's widest shape (%d)",
			c.Board.Width, catalog.Name, catalog.MaxWidth())
	}
	switch c.Saves.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown save backend %q", c.Saves.Backend)
	}
	if c.Saves.Backend == BackendFile && c.Saves.Path == "" {
		return fmt.Errorf("config: file save backend needs a path")
	}
	if _, err := ParseDifficultyPreset(string(c.Difficulty.Preset)); err != nil {
		return err
	}
	return nil
}

// EngineOptions converts the config into controller options.
func (c PentixConfig) EngineOptions(seed int64) engine.Options {
	catalog, err := engine.CatalogByName(c.Pieces.Catalog)
	if err != nil {
		catalog = engine.Pentix
	}
	return engine.Options{
		Width:         c.Board.Width,
		Height:        c.Board.Height,
		Catalog:       catalog,
		BaseInterval:  c.Timing.BaseInterval(),
		BoostInterval: c.Timing.BoostInterval(),
		Seed:          seed,
	}
}
