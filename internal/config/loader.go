package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Load loads the game configuration.
// Search order: customPath -> ~/.jumper/configs/jumper.yaml -> ./configs/jumper.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the keys it names.
func Load(customPath string) (JumperConfig, error) {
	cfg := DefaultJumperConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("jumper.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultJumperConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/jumper.yaml"); err == nil {
		candidate := DefaultJumperConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultJumperYAML, &cfg); err != nil {
		return DefaultJumperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jumper", "configs", filename)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg JumperConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration describes a playable game.
func (c JumperConfig) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return invalid("viewport must have a positive size")
	}
	if c.Viewport.GroundY <= 0 || c.Viewport.GroundY > c.Viewport.Height {
		return invalid("ground_y %v outside viewport", c.Viewport.GroundY)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return invalid("player must have a positive size")
	}
	if c.Player.Height > c.Viewport.GroundY {
		return invalid("player taller than the space above ground")
	}
	if c.Physics.JumpImpulse >= 0 {
		return invalid("jump_impulse must be negative (upward)")
	}
	if c.Physics.Gravity <= 0 {
		return invalid("gravity must be positive")
	}
	// Entities only leave the screen, and get replaced, while moving left
	if c.Speeds.Obstacle >= 0 || c.Speeds.Coin >= 0 || c.Speeds.Cloud >= 0 {
		return invalid("speeds must be negative (leftward)")
	}
	if c.Difficulty.ObstacleSpeedDelta > 0 || c.Difficulty.CoinSpeedDelta > 0 || c.Difficulty.CloudSpeedDelta > 0 {
		return invalid("per-level speed deltas must not be positive")
	}
	if c.Obstacles.MinWidth <= 0 || c.Obstacles.WidthPerLevel < 0 {
		return invalid("obstacle width range is empty")
	}
	if c.Obstacles.MinHeight <= 0 || c.Obstacles.MaxHeight < c.Obstacles.MinHeight {
		return invalid("obstacle height range [%d,%d] is empty", c.Obstacles.MinHeight, c.Obstacles.MaxHeight)
	}
	switch c.Coins.Policy {
	case CoinPolicyTimed, CoinPolicyAnchored:
	default:
		return invalid("unknown coin policy %q", c.Coins.Policy)
	}
	if c.Coins.Size <= 0 {
		return invalid("coin size must be positive")
	}
	if c.Coins.Max < 0 || c.Coins.Value < 0 {
		return invalid("coin max and value must not be negative")
	}
	if !isProbability(c.Coins.SpawnProbability) || !isProbability(c.Coins.AnchoredProbability) {
		return invalid("coin probabilities must be within [0, 1]")
	}
	if c.Coins.MinRise < 0 || c.Coins.MaxRise < c.Coins.MinRise {
		return invalid("coin rise range [%d,%d] is empty", c.Coins.MinRise, c.Coins.MaxRise)
	}
	if c.Clouds.Count < 0 || c.Clouds.MaxY < c.Clouds.MinY ||
		c.Clouds.MaxWidth < c.Clouds.MinWidth || c.Clouds.MaxHeight < c.Clouds.MinHeight {
		return invalid("cloud ranges are empty")
	}
	if c.Scoring.FPS <= 0 {
		return invalid("fps must be positive")
	}
	if c.Scoring.LevelThreshold <= 0 {
		return invalid("level_threshold must be positive")
	}
	if c.Scoring.HighScoreLimit <= 0 {
		return invalid("high_score_limit must be positive")
	}
	switch c.Persistence.Backend {
	case BackendFile, BackendGdata, BackendSQLite:
	default:
		return invalid("unknown persistence backend %q", c.Persistence.Backend)
	}
	return nil
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
