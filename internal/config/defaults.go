package config

import (
	_ "embed"

	"github.com/vovakirdan/pentix/internal/games/pentix/engine"
)

//go:embed defaults/pentix.yaml
var defaultPentixYAML []byte

// DefaultPentixConfig returns the default Pentix configuration.
func DefaultPentixConfig() PentixConfig {
	return PentixConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			BaseIntervalMS:  270,
			BoostIntervalMS: 60,
			BoostHoldMS:     150,
		},
		Pieces: PiecesConfig{
			Catalog: engine.CatalogPentix,
		},
		Saves: SavesConfig{
			Backend: BackendFile,
			Path:    "~/.arcade/saving.json",
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyEasy,
		},
	}
}
