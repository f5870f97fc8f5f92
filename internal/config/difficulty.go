package config

import "fmt"

// DifficultyPreset represents a named starting difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset.
// An empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidConfig, s)
	}
}

// speedFactor returns the multiplier applied to the initial speeds.
func speedFactor(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.4
	default:
		return 1.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Only starting speeds change; the per-level escalation stays as configured.
func ApplyPreset(cfg *JumperConfig, preset DifficultyPreset) {
	f := speedFactor(preset)
	cfg.Speeds.Obstacle *= f
	cfg.Speeds.Cloud *= f
	cfg.Speeds.Coin *= f

	if preset == DifficultyEasy {
		cfg.Obstacles.WidthPerLevel /= 2
	}
}
