// Package jumper implements the side-scrolling jump-and-collect game engine:
// physics, spawning, scoring, difficulty and the START/PLAYING/GAME_OVER
// state machine. It knows nothing about terminals or windows; adapters feed
// it input events, drive Tick through a Scheduler and draw its Snapshot.
package jumper

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/highscore"
)

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventCoinCollected EventKind = iota + 1
	EventDifficultyUp
	EventGameOver
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventCoinCollected:
		return "coin_collected"
	case EventDifficultyUp:
		return "difficulty_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is one occurrence within a tick.
// Entity is set for coin pickups; Value carries the new level for
// difficulty changes and the final score for game over.
type Event struct {
	Kind   EventKind
	Entity EntityID
	Value  int
}

// TickResult reports the outcome of one Tick.
type TickResult struct {
	Phase  Phase
	Score  int
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r TickResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// RunSummary describes a finished run.
type RunSummary struct {
	Score           int
	CoinsCollected  int
	DifficultyLevel int
	Ticks           int
	Rank            int // 1-based position in the high-score list, 0 if not ranked
	Seed            int64
}

// RunRecorder receives every finished run. Recording is best-effort.
type RunRecorder interface {
	RecordRun(run RunSummary) error
}

// Option configures a Game.
type Option func(*Game)

// WithStore sets the high-score persistence backend.
func WithStore(s highscore.Store) Option {
	return func(g *Game) { g.store = s }
}

// WithRecorder sets the run history sink.
func WithRecorder(r RunRecorder) Option {
	return func(g *Game) { g.recorder = r }
}

// WithScheduler sets the tick scheduler.
func WithScheduler(s Scheduler) Option {
	return func(g *Game) { g.scheduler = s }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithSeed fixes the RNG seed. Without it the seed is time-based.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
		g.seeded = true
	}
}

// Game owns the run state and the high-score list.
// It is not safe for concurrent use; adapters call it from one goroutine.
type Game struct {
	cfg        config.JumperConfig
	run        RunState
	spawner    *Spawner
	score      ScorePolicy
	highScores *highscore.List
	lastRank   int

	store     highscore.Store
	recorder  RunRecorder
	scheduler Scheduler
	logger    *log.Logger

	seed       int64
	seeded     bool
	terminated bool
}

// New creates a game in the START phase and loads the high-score list.
func New(cfg config.JumperConfig, opts ...Option) *Game {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}

	if g.store == nil {
		g.store = highscore.NewMemoryStore()
	}
	if g.scheduler == nil {
		g.scheduler = &ManualScheduler{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if !g.seeded {
		g.seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(g.seed))
	g.spawner = NewSpawner(rng, &g.cfg)
	g.score = NewScorePolicy(&g.cfg)
	g.highScores = highscore.NewList(cfg.Scoring.HighScoreLimit, g.store.Load())
	g.run.Phase = PhaseStart

	return g
}

// Handle dispatches an input action. Actions invalid in the current phase
// are ignored.
func (g *Game) Handle(a core.Action) {
	switch a {
	case core.ActionJump:
		g.Jump()
	case core.ActionStart:
		g.Start()
	case core.ActionRetry:
		g.Retry()
	case core.ActionQuit:
		g.Quit()
	}
}

// Start begins the first run. Valid only in START.
func (g *Game) Start() {
	if g.terminated || g.run.Phase != PhaseStart {
		return
	}
	g.beginRun()
}

// Retry begins a fresh run after a game over. Valid only in GAME_OVER.
func (g *Game) Retry() {
	if g.terminated || g.run.Phase != PhaseGameOver {
		return
	}
	g.beginRun()
}

// Jump launches the player if it is standing on the ground.
func (g *Game) Jump() {
	if g.terminated || g.run.Phase != PhasePlaying || !g.run.Player.OnGround {
		return
	}
	g.run.Player.VelocityY = g.cfg.Physics.JumpImpulse
	g.run.Player.OnGround = false
}

// Quit terminates the game. Every later call is a no-op and nothing is persisted.
func (g *Game) Quit() {
	if g.terminated {
		return
	}
	g.terminated = true
	g.scheduler.Cancel()
	g.logger.Debug("game terminated", "phase", g.run.Phase)
}

// beginRun resets all per-run state, spawns the initial entities and arms
// the scheduler.
func (g *Game) beginRun() {
	g.run = RunState{
		Phase: PhasePlaying,
		Speeds: Speeds{
			Obstacle: g.cfg.Speeds.Obstacle,
			Cloud:    g.cfg.Speeds.Cloud,
			Coin:     g.cfg.Speeds.Coin,
		},
	}
	groundY := g.cfg.Viewport.GroundY
	g.run.Player = Player{
		Box:      core.NewBox(g.cfg.Player.X, groundY-g.cfg.Player.Height, g.cfg.Player.Width, g.cfg.Player.Height),
		OnGround: true,
	}
	g.spawner.SpawnObstacle(&g.run)
	g.spawner.SpawnClouds(&g.run)
	g.lastRank = 0

	g.logger.Debug("run started", "policy", g.cfg.Coins.Policy)
	g.scheduler.Start()
}

// Tick advances the simulation by one frame. Ticks outside PLAYING are ignored.
func (g *Game) Tick() TickResult {
	rs := &g.run
	if g.terminated || rs.Phase != PhasePlaying {
		return TickResult{Phase: rs.Phase, Score: rs.Score}
	}

	var events []Event
	rs.Ticks++
	g.score.AgeNotice(rs)

	Integrate(&rs.Player, g.cfg.Physics.Gravity, g.cfg.Viewport.GroundY)
	g.spawner.Advance(rs)

	if g.score.AdvanceSurvival(rs) {
		g.spawner.SpawnTimedCoin(rs)
	}

	if ups := g.score.EvaluateDifficulty(rs); ups > 0 {
		events = append(events, Event{Kind: EventDifficultyUp, Value: rs.DifficultyLevel})
		g.logger.Info("difficulty up", "level", rs.DifficultyLevel, "score", rs.Score)
	}

	if rs.Obstacle != nil && HitsObstacle(rs.Player.Box, rs.Obstacle.Box) {
		g.endRun()
		events = append(events, Event{Kind: EventGameOver, Value: rs.Score})
		return TickResult{Phase: rs.Phase, Score: rs.Score, Events: events}
	}

	for _, id := range collectCoins(rs) {
		g.score.AwardCoin(rs)
		events = append(events, Event{Kind: EventCoinCollected, Entity: id, Value: g.cfg.Coins.Value})
	}

	return TickResult{Phase: rs.Phase, Score: rs.Score, Events: events}
}

// endRun freezes the simulation, records the score and persists the list.
// Ticks are cancelled before anything else so none can follow the collision.
func (g *Game) endRun() {
	g.scheduler.Cancel()
	g.run.Phase = PhaseGameOver

	// The store may be shared with other games, so the score is recorded
	// against the persisted list rather than the copy loaded at startup.
	limit := g.highScores.Limit()
	rank, scores, err := highscore.Record(g.store, limit, g.run.Score)
	if err != nil {
		g.logger.Warn("failed to save high scores", "err", err)
	}
	if err == nil && scores != nil {
		g.lastRank = rank
		g.highScores = highscore.NewList(limit, scores)
	} else {
		g.lastRank = g.highScores.Record(g.run.Score)
	}

	g.logger.Info("game over",
		"score", g.run.Score,
		"level", g.run.DifficultyLevel,
		"coins", g.run.CoinsCollected,
		"rank", g.lastRank,
	)

	if g.recorder != nil {
		err := g.recorder.RecordRun(RunSummary{
			Score:           g.run.Score,
			CoinsCollected:  g.run.CoinsCollected,
			DifficultyLevel: g.run.DifficultyLevel,
			Ticks:           g.run.Ticks,
			Rank:            g.lastRank,
			Seed:            g.seed,
		})
		if err != nil {
			g.logger.Warn("failed to record run", "err", err)
		}
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.run.Phase
}

// Score returns the current run's score.
func (g *Game) Score() int {
	return g.run.Score
}

// Terminated reports whether Quit was called.
func (g *Game) Terminated() bool {
	return g.terminated
}

// HighScores returns the high-score list, highest first.
func (g *Game) HighScores() []int {
	return g.highScores.Scores()
}

// LastRank returns the rank of the most recently finished run, 0 if unranked.
func (g *Game) LastRank() int {
	return g.lastRank
}

// Seed returns the RNG seed of this game.
func (g *Game) Seed() int64 {
	return g.seed
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.JumperConfig {
	return g.cfg
}

// State returns a copy of the current run state.
func (g *Game) State() RunState {
	return g.run.clone()
}
