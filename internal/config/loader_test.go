package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultJumperConfig()
	var embedded JumperConfig
	if err := yaml.Unmarshal(DefaultYAML(), &embedded); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if embedded != cfg {
		t.Errorf("embedded defaults differ from DefaultJumperConfig():\n%+v\n%+v", embedded, cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("coins:\n  policy: anchored\nscoring:\n  fps: 30\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Coins.Policy != CoinPolicyAnchored {
		t.Errorf("policy = %q, expected anchored", cfg.Coins.Policy)
	}
	if cfg.Scoring.FPS != 30 {
		t.Errorf("fps = %d, expected 30", cfg.Scoring.FPS)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.Gravity != 1.2 || cfg.Viewport.GroundY != 450 {
		t.Errorf("defaults lost: gravity=%v ground=%v", cfg.Physics.Gravity, cfg.Viewport.GroundY)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom config should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("scoring:\n  fps: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*JumperConfig)
	}{
		{"upward gravity", func(c *JumperConfig) { c.Physics.Gravity = -1 }},
		{"downward jump", func(c *JumperConfig) { c.Physics.JumpImpulse = 5 }},
		{"empty height range", func(c *JumperConfig) { c.Obstacles.MaxHeight = 10 }},
		{"unknown policy", func(c *JumperConfig) { c.Coins.Policy = "random" }},
		{"probability above one", func(c *JumperConfig) { c.Coins.SpawnProbability = 1.5 }},
		{"ground below viewport", func(c *JumperConfig) { c.Viewport.GroundY = 700 }},
		{"zero threshold", func(c *JumperConfig) { c.Scoring.LevelThreshold = 0 }},
		{"unknown backend", func(c *JumperConfig) { c.Persistence.Backend = "redis" }},
		{"stationary obstacles", func(c *JumperConfig) { c.Speeds.Obstacle = 0 }},
		{"rightward coins", func(c *JumperConfig) { c.Speeds.Coin = 3 }},
		{"rightward clouds", func(c *JumperConfig) { c.Speeds.Cloud = 1 }},
		{"slowing obstacles", func(c *JumperConfig) { c.Difficulty.ObstacleSpeedDelta = 2 }},
		{"slowing coins", func(c *JumperConfig) { c.Difficulty.CoinSpeedDelta = 0.5 }},
		{"zero coin size", func(c *JumperConfig) { c.Coins.Size = 0 }},
		{"negative coin value", func(c *JumperConfig) { c.Coins.Value = -100 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultJumperConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidateAcceptsEdgeValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*JumperConfig)
	}{
		{"no coins", func(c *JumperConfig) {
			c.Coins.Max = 0
			c.Coins.Value = 0
		}},
		{"constant speed", func(c *JumperConfig) {
			c.Difficulty.ObstacleSpeedDelta = 0
			c.Difficulty.CloudSpeedDelta = 0
			c.Difficulty.CoinSpeedDelta = 0
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultJumperConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultJumperConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Speeds.Obstacle != -8 {
		t.Errorf("easy obstacle speed = %v, expected -8", easy.Speeds.Obstacle)
	}
	if easy.Obstacles.WidthPerLevel != 10 {
		t.Errorf("easy width per level = %d, expected 10", easy.Obstacles.WidthPerLevel)
	}

	normal := DefaultJumperConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != DefaultJumperConfig() {
		t.Error("normal preset should not change the defaults")
	}

	hard := DefaultJumperConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Speeds.Coin >= normal.Speeds.Coin {
		t.Errorf("hard coin speed %v should be faster (more negative) than %v", hard.Speeds.Coin, normal.Speeds.Coin)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("fixed"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParsePreset(fixed) = %v, expected ErrInvalidConfig", err)
	}
}

func TestNoticeTicks(t *testing.T) {
	cfg := DefaultJumperConfig()
	if got := cfg.NoticeTicks(); got != 120 {
		t.Errorf("NoticeTicks() = %d, expected 120", got)
	}
}
