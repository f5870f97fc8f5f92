package jumper

import "github.com/vovakirdan/tui-jumper/internal/core"

// EntityBox is a drawable entity.
type EntityBox struct {
	ID  EntityID
	Box core.Box
}

// Snapshot is a read-only view of everything an adapter needs to draw one frame.
// It shares no memory with the game.
type Snapshot struct {
	Phase           Phase
	Score           int
	DifficultyLevel int
	CoinsCollected  int

	Width   float64
	Height  float64
	GroundY float64

	Player   core.Box
	OnGround bool
	Obstacle *core.Box // nil when none is live
	Coins    []EntityBox
	Clouds   []EntityBox
	Notice   *Notice

	HighScores []int
	LastRank   int
	Terminated bool
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	rs := &g.run
	s := Snapshot{
		Phase:           rs.Phase,
		Score:           rs.Score,
		DifficultyLevel: rs.DifficultyLevel,
		CoinsCollected:  rs.CoinsCollected,
		Width:           g.cfg.Viewport.Width,
		Height:          g.cfg.Viewport.Height,
		GroundY:         g.cfg.Viewport.GroundY,
		Player:          rs.Player.Box,
		OnGround:        rs.Player.OnGround,
		HighScores:      g.highScores.Scores(),
		LastRank:        g.lastRank,
		Terminated:      g.terminated,
	}

	if rs.Obstacle != nil {
		box := rs.Obstacle.Box
		s.Obstacle = &box
	}
	if rs.Notice != nil {
		n := *rs.Notice
		s.Notice = &n
	}

	s.Coins = make([]EntityBox, 0, len(rs.Coins))
	for _, c := range rs.Coins {
		s.Coins = append(s.Coins, EntityBox{ID: c.ID, Box: c.Box})
	}
	s.Clouds = make([]EntityBox, 0, len(rs.Clouds))
	for _, c := range rs.Clouds {
		s.Clouds = append(s.Clouds, EntityBox{ID: c.ID, Box: c.Box})
	}
	return s
}
