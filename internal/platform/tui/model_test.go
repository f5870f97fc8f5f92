package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/highscore"
	"github.com/vovakirdan/tui-jumper/internal/jumper"
)

func testFactory(scores ...int) GameFactory {
	return func(sched jumper.Scheduler) *jumper.Game {
		return jumper.New(config.DefaultJumperConfig(),
			jumper.WithSeed(11),
			jumper.WithScheduler(sched),
			jumper.WithStore(highscore.NewMemoryStore(scores...)),
		)
	}
}

func newTestModel(scores ...int) Model {
	cfg := core.DefaultConfig()
	return NewModel(testFactory(scores...), cfg)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// update applies msg and returns the concrete model.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"space", runes(" "), core.ActionJump},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w", runes("w"), core.ActionJump},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"s", runes("s"), core.ActionStart},
		{"r", runes("r"), core.ActionRetry},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runes("x"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestTickSchedulerGenerations(t *testing.T) {
	s := NewTickScheduler(60)

	if s.TakeStart() != nil || s.Next() != nil {
		t.Fatal("idle scheduler produced a tick")
	}

	s.Start()
	first := s.gen
	if s.TakeStart() == nil {
		t.Fatal("Start did not arm a tick")
	}
	if s.TakeStart() != nil {
		t.Error("one Start armed two chains")
	}
	if !s.Accept(TickMsg{Gen: first}) {
		t.Error("live tick rejected")
	}

	s.Cancel()
	if s.Accept(TickMsg{Gen: first}) {
		t.Error("tick accepted after Cancel")
	}
	if s.Next() != nil {
		t.Error("cancelled scheduler produced a tick")
	}

	s.Start()
	if s.Accept(TickMsg{Gen: first}) {
		t.Error("tick from a previous chain accepted after restart")
	}
	if !s.Accept(TickMsg{Gen: s.gen}) {
		t.Error("tick from the new chain rejected")
	}
}

func TestModelStartArmsTicks(t *testing.T) {
	m := newTestModel()

	if m.Init() != nil {
		t.Error("Init should not tick before a run starts")
	}

	// Ticks before start are dropped
	m, cmd := update(t, m, TickMsg{Gen: m.sched.gen})
	if cmd != nil || m.Game().State().Ticks != 0 {
		t.Fatal("tick processed on the start screen")
	}

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Start did not schedule a tick")
	}
	if m.Game().Phase() != jumper.PhasePlaying {
		t.Fatalf("Phase() = %v, expected PLAYING", m.Game().Phase())
	}

	m, cmd = update(t, m, TickMsg{Gen: m.sched.gen})
	if cmd == nil {
		t.Error("live tick did not re-arm")
	}
	if m.Game().State().Ticks != 1 {
		t.Errorf("Ticks = %d, expected 1", m.Game().State().Ticks)
	}

	// Jump keys do not arm a second chain
	_, cmd = update(t, m, runes("w"))
	if cmd != nil {
		t.Error("jump key scheduled a tick")
	}
}

func TestModelRetryDropsStaleTicks(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	firstGen := m.sched.gen

	// An idle player crashes into the first obstacle
	for i := 0; i < 1000 && m.Game().Phase() == jumper.PhasePlaying; i++ {
		m, _ = update(t, m, TickMsg{Gen: m.sched.gen})
	}
	if m.Game().Phase() != jumper.PhaseGameOver {
		t.Fatalf("Phase() = %v, expected GAME_OVER", m.Game().Phase())
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("game over screen not shown")
	}

	m, cmd := update(t, m, runes("r"))
	if cmd == nil || m.Game().Phase() != jumper.PhasePlaying {
		t.Fatalf("retry failed: phase=%v", m.Game().Phase())
	}

	// A tick from the first run's chain must not advance the new run
	m, cmd = update(t, m, TickMsg{Gen: firstGen})
	if cmd != nil || m.Game().State().Ticks != 0 {
		t.Errorf("stale tick advanced the new run: ticks=%d", m.Game().State().Ticks)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("quit did not return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command is not tea.Quit")
	}
	if !m.Game().Terminated() || m.View() != "" {
		t.Error("model not terminated after quit")
	}
}

func TestStartViewShowsScores(t *testing.T) {
	m := newTestModel(300, 1200)

	view := m.View()
	for _, want := range []string{"JUMP ACTION", "1200", "300"} {
		if !strings.Contains(view, want) {
			t.Errorf("start view missing %q", want)
		}
	}
}

func TestDrawField(t *testing.T) {
	screen := core.NewScreen(80, 24)
	obstacle := core.Box{X1: 400, Y1: 400, X2: 450, Y2: 450}
	snap := jumper.Snapshot{
		Phase:    jumper.PhasePlaying,
		Score:    42,
		Width:    800,
		Height:   600,
		GroundY:  450,
		Player:   core.Box{X1: 100, Y1: 400, X2: 150, Y2: 450},
		Obstacle: &obstacle,
		Coins:    []jumper.EntityBox{{ID: 2, Box: core.Box{X1: 600, Y1: 300, X2: 630, Y2: 330}}},
		Notice:   &jumper.Notice{Text: "SPEED UP!", TicksLeft: 10},
	}

	DrawField(screen, snap)

	// 800x600 onto 80x24: 10 px per column, 25 px per row
	if got := screen.Get(10, 17); got != PlayerChar {
		t.Errorf("player cell = %q, expected %q", got, PlayerChar)
	}
	if got := screen.Get(40, 17); got != ObstacleChar {
		t.Errorf("obstacle cell = %q, expected %q", got, ObstacleChar)
	}
	if got := screen.Get(60, 12); got != CoinChar {
		t.Errorf("coin cell = %q, expected %q", got, CoinChar)
	}
	if got := screen.Get(0, 18); got != GroundChar {
		t.Errorf("ground cell = %q, expected %q", got, GroundChar)
	}
	if !strings.Contains(screen.Row(0), "Score: 42") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(2), "SPEED UP!") {
		t.Errorf("notice row = %q", screen.Row(2))
	}
}

func TestCellRectMinimumSize(t *testing.T) {
	r := cellRect(core.Box{X1: 101, Y1: 101, X2: 102, Y2: 102}, 0.1, 0.04)
	if r.W < 1 || r.H < 1 {
		t.Errorf("cellRect() = %+v, expected at least one cell", r)
	}
}
