package jumper

import "github.com/vovakirdan/tui-jumper/internal/config"

// ScorePolicy applies survival scoring, coin awards and difficulty escalation.
type ScorePolicy struct {
	cfg *config.JumperConfig
}

// NewScorePolicy creates a policy for cfg.
func NewScorePolicy(cfg *config.JumperConfig) ScorePolicy {
	return ScorePolicy{cfg: cfg}
}

// AdvanceSurvival counts one tick. It returns true when a full in-game
// second elapsed and the survival point was awarded.
func (p ScorePolicy) AdvanceSurvival(rs *RunState) bool {
	rs.SurvivalTimer++
	if rs.SurvivalTimer < p.cfg.Scoring.FPS {
		return false
	}
	rs.SurvivalTimer = 0
	rs.Score += p.cfg.Scoring.SurvivalPoints
	return true
}

// AwardCoin credits one collected coin.
func (p ScorePolicy) AwardCoin(rs *RunState) {
	rs.Score += p.cfg.Coins.Value
	rs.CoinsCollected++
}

// TargetLevel returns the difficulty level a score earns.
func TargetLevel(score, threshold int) int {
	if threshold <= 0 {
		return 0
	}
	return score / threshold
}

// EvaluateDifficulty raises the level until it matches the score and
// returns how many levels were gained. Each level speeds everything up and
// replaces the notice.
func (p ScorePolicy) EvaluateDifficulty(rs *RunState) int {
	target := TargetLevel(rs.Score, p.cfg.Scoring.LevelThreshold)
	ups := 0
	for rs.DifficultyLevel < target {
		rs.DifficultyLevel++
		rs.Speeds.Obstacle += p.cfg.Difficulty.ObstacleSpeedDelta
		rs.Speeds.Cloud += p.cfg.Difficulty.CloudSpeedDelta
		rs.Speeds.Coin += p.cfg.Difficulty.CoinSpeedDelta
		ups++
	}
	if ups > 0 {
		rs.Notice = &Notice{Text: p.cfg.Scoring.NoticeText, TicksLeft: p.cfg.NoticeTicks()}
	}
	return ups
}

// AgeNotice counts down the notice and clears it once expired.
func (p ScorePolicy) AgeNotice(rs *RunState) {
	if rs.Notice == nil {
		return
	}
	rs.Notice.TicksLeft--
	if rs.Notice.TicksLeft <= 0 {
		rs.Notice = nil
	}
}
