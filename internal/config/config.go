// Package config provides YAML-based game configuration loading and
// difficulty presets for the jumper game.
package config

// JumperConfig contains all tunable constants of the game.
type JumperConfig struct {
	Viewport    ViewportConfig    `yaml:"viewport"`
	Player      PlayerConfig      `yaml:"player"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Speeds      SpeedConfig       `yaml:"speeds"`
	Obstacles   ObstacleConfig    `yaml:"obstacles"`
	Coins       CoinConfig        `yaml:"coins"`
	Clouds      CloudConfig       `yaml:"clouds"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
	Persistence PersistenceConfig `yaml:"persistence"`
}

// ViewportConfig defines the logical coordinate space.
type ViewportConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"`
}

// PlayerConfig defines the player box.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines vertical motion parameters (px/tick).
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// SpeedConfig defines the initial horizontal speeds (px/tick, negative = leftward).
type SpeedConfig struct {
	Obstacle float64 `yaml:"obstacle"`
	Cloud    float64 `yaml:"cloud"`
	Coin     float64 `yaml:"coin"`
}

// ObstacleConfig defines obstacle size ranges.
// Width is drawn from [MinWidth, MinWidth + WidthPerLevel*level].
type ObstacleConfig struct {
	MinWidth      int `yaml:"min_width"`
	WidthPerLevel int `yaml:"width_per_level"`
	MinHeight     int `yaml:"min_height"`
	MaxHeight     int `yaml:"max_height"`
}

// Coin spawn policies.
const (
	CoinPolicyTimed    = "timed"    // independent, once per second with a probability
	CoinPolicyAnchored = "anchored" // attached to newly created obstacles
)

// CoinConfig defines coin spawning and value.
type CoinConfig struct {
	Policy              string  `yaml:"policy"`
	Size                float64 `yaml:"size"`
	Max                 int     `yaml:"max"`
	Value               int     `yaml:"value"`
	SpawnProbability    float64 `yaml:"spawn_probability"`    // timed: chance per elapsed second
	AnchoredProbability float64 `yaml:"anchored_probability"` // anchored: chance per new obstacle
	MinRise             int     `yaml:"min_rise"`             // timed: height above ground
	MaxRise             int     `yaml:"max_rise"`
}

// CloudConfig defines the decorative background clouds.
type CloudConfig struct {
	Count     int `yaml:"count"`
	MinY      int `yaml:"min_y"`
	MaxY      int `yaml:"max_y"`
	MinWidth  int `yaml:"min_width"`
	MaxWidth  int `yaml:"max_width"`
	MinHeight int `yaml:"min_height"`
	MaxHeight int `yaml:"max_height"`
}

// ScoringConfig defines survival scoring and timing.
type ScoringConfig struct {
	FPS            int     `yaml:"fps"`             // ticks per in-game second
	SurvivalPoints int     `yaml:"survival_points"` // awarded once per second
	LevelThreshold int     `yaml:"level_threshold"` // score per difficulty level
	NoticeSeconds  float64 `yaml:"notice_seconds"`  // lifetime of the speed-up notice
	NoticeText     string  `yaml:"notice_text"`
	HighScoreLimit int     `yaml:"high_score_limit"`
}

// DifficultyConfig defines the speed change applied on every level-up.
type DifficultyConfig struct {
	ObstacleSpeedDelta float64 `yaml:"obstacle_speed_delta"`
	CloudSpeedDelta    float64 `yaml:"cloud_speed_delta"`
	CoinSpeedDelta     float64 `yaml:"coin_speed_delta"`
}

// Persistence backends for the high-score list.
const (
	BackendFile   = "file"
	BackendGdata  = "gdata"
	BackendSQLite = "sqlite"
)

// PersistenceConfig selects where the high-score list lives.
type PersistenceConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"` // text file path for the file backend
}

// NoticeTicks returns the notice lifetime in ticks.
func (c JumperConfig) NoticeTicks() int {
	return int(c.Scoring.NoticeSeconds * float64(c.Scoring.FPS))
}
