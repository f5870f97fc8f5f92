package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the default configuration.
// It mirrors defaults/jumper.yaml and is used if the embedded file cannot be parsed.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		Viewport: ViewportConfig{
			Width:   800,
			Height:  600,
			GroundY: 450,
		},
		Player: PlayerConfig{
			X:      100,
			Width:  50,
			Height: 50,
		},
		Physics: PhysicsConfig{
			Gravity:     1.2,
			JumpImpulse: -20,
		},
		Speeds: SpeedConfig{
			Obstacle: -10,
			Cloud:    -3,
			Coin:     -10,
		},
		Obstacles: ObstacleConfig{
			MinWidth:      40,
			WidthPerLevel: 20,
			MinHeight:     30,
			MaxHeight:     80,
		},
		Coins: CoinConfig{
			Policy:              CoinPolicyTimed,
			Size:                30,
			Max:                 2,
			Value:               100,
			SpawnProbability:    0.5,
			AnchoredProbability: 0.6,
			MinRise:             60,
			MaxRise:             200,
		},
		Clouds: CloudConfig{
			Count:     3,
			MinY:      50,
			MaxY:      150,
			MinWidth:  50,
			MaxWidth:  100,
			MinHeight: 20,
			MaxHeight: 40,
		},
		Scoring: ScoringConfig{
			FPS:            60,
			SurvivalPoints: 1,
			LevelThreshold: 1000,
			NoticeSeconds:  2,
			NoticeText:     "SPEED UP!",
			HighScoreLimit: 5,
		},
		Difficulty: DifficultyConfig{
			ObstacleSpeedDelta: -2,
			CloudSpeedDelta:    -1,
			CoinSpeedDelta:     -2,
		},
		Persistence: PersistenceConfig{
			Backend: BackendFile,
			Path:    "~/.jumper/highscores.txt",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultJumperYAML
}
