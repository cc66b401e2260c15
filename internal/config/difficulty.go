package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets from slowest to fastest.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficultyPreset resolves a preset name. "normal" is accepted as an
// alias for medium.
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return DifficultyPreset(name), nil
	case "normal":
		return DifficultyMedium, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", name)
}

// Level returns the controller level for the preset; the fall interval is
// the base interval divided by it.
func (p DifficultyPreset) Level() int {
	switch p {
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 1
	}
}

// Title returns the preset name as shown on buttons.
func (p DifficultyPreset) Title() string {
	switch p {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return string(p)
	}
}

// PresetForLevel maps a controller level back to its preset. Levels above
// hard report hard.
func PresetForLevel(level int) DifficultyPreset {
	switch {
	case level <= 1:
		return DifficultyEasy
	case level == 2:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}
