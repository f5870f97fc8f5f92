package jumper

import "github.com/vovakirdan/tui-jumper/internal/core"

// Phase is the top-level state of the game.
type Phase int

const (
	PhaseStart    Phase = iota // idle, showing the menu
	PhasePlaying               // simulation running
	PhaseGameOver              // showing results, simulation frozen
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// EntityID identifies an obstacle, coin or cloud within a run.
// IDs are allocated from a per-run counter and never reused in that run.
type EntityID uint32

// Player is the jumping box. Only its vertical position changes.
type Player struct {
	Box       core.Box
	VelocityY float64 // px/tick, negative = up
	OnGround  bool
}

// Obstacle is a ground-standing rectangle the player must clear.
type Obstacle struct {
	ID  EntityID
	Box core.Box
}

// Coin is a collectible circle, tracked by its bounding box.
type Coin struct {
	ID  EntityID
	Box core.Box
}

// Cloud is decorative background scenery. Clouds are recycled, never destroyed.
type Cloud struct {
	ID  EntityID
	Box core.Box
}

// Speeds holds the current horizontal speeds in px/tick (negative = leftward).
type Speeds struct {
	Obstacle float64
	Cloud    float64
	Coin     float64
}

// Notice is a transient on-screen message.
type Notice struct {
	Text      string
	TicksLeft int
}

// RunState is the authoritative state of the current run.
// It is owned by Game and handed to each subsystem by pointer every tick.
type RunState struct {
	Phase           Phase
	Score           int
	DifficultyLevel int
	SurvivalTimer   int // ticks since the last survival point
	Ticks           int // ticks simulated in this run
	CoinsCollected  int
	Speeds          Speeds

	Player   Player
	Obstacle *Obstacle // nil when no obstacle is live
	Coins    []Coin
	Clouds   []Cloud
	Notice   *Notice // nil when nothing is displayed

	lastID EntityID
}

// allocID returns a fresh entity ID for this run.
func (rs *RunState) allocID() EntityID {
	rs.lastID++
	return rs.lastID
}

// clone returns a deep copy safe to hand out to readers.
func (rs *RunState) clone() RunState {
	c := *rs
	if rs.Obstacle != nil {
		ob := *rs.Obstacle
		c.Obstacle = &ob
	}
	if rs.Notice != nil {
		n := *rs.Notice
		c.Notice = &n
	}
	c.Coins = append([]Coin(nil), rs.Coins...)
	c.Clouds = append([]Cloud(nil), rs.Clouds...)
	return c
}
