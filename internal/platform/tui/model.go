package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/jumper"
)

// GameFactory creates a game driven by the given scheduler.
type GameFactory func(sched jumper.Scheduler) *jumper.Game

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
	rankStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for one game session.
type Model struct {
	game     *jumper.Game
	sched    *TickScheduler
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel creates a model whose game is built by factory.
func NewModel(factory GameFactory, cfg core.RuntimeConfig) Model {
	sched := NewTickScheduler(cfg.TickRate)
	return Model{
		game:   factory(sched),
		sched:  sched,
		screen: core.NewScreen(cfg.ScreenW, fieldHeight(cfg.ScreenH)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// fieldHeight leaves the last row for the help bar.
func fieldHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init waits on the start screen; ticks begin once a run starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, fieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey forwards input to the game and arms the first tick of a new run.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	m.game.Handle(action)
	if m.game.Terminated() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, m.sched.TakeStart()
}

// handleTick advances the game if the tick belongs to the live chain.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.sched.Accept(msg) {
		return m, nil
	}

	m.game.Tick()

	// Nil once the run ended and the scheduler was cancelled
	return m, m.sched.Next()
}

// Game returns the game driven by this model.
func (m Model) Game() *jumper.Game {
	return m.game
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()
	helpBar := helpStyle.Render(m.help.View(phaseKeys{keys: m.keys, phase: snap.Phase}))

	switch snap.Phase {
	case jumper.PhasePlaying:
		DrawField(m.screen, snap)
		return RenderScreen(m.screen) + "\n" + helpBar
	case jumper.PhaseGameOver:
		return m.place(gameOverView(snap), helpBar)
	default:
		return m.place(startView(snap), helpBar)
	}
}

// place centers a panel in the terminal above the help bar.
func (m Model) place(panel, helpBar string) string {
	if m.width <= 0 || m.height <= 1 {
		return panel + "\n" + helpBar
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, panel)
	return body + "\n" + helpBar
}

func startView(snap jumper.Snapshot) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("JUMP ACTION"),
		"",
		subtitleStyle.Render("Press ENTER to start"),
		"",
		renderScores(snap.HighScores, 0),
	)
}

func gameOverView(snap jumper.Snapshot) string {
	lines := []string{
		gameOverStyle.Render("GAME OVER"),
		"",
		fmt.Sprintf("Score: %d", snap.Score),
	}
	if snap.LastRank > 0 {
		lines = append(lines, rankStyle.Render(fmt.Sprintf("New high score! #%d", snap.LastRank)))
	}
	lines = append(lines,
		"",
		renderScores(snap.HighScores, snap.LastRank),
		"",
		subtitleStyle.Render("Press R to retry or Q to quit"),
	)
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// Run starts the Bubble Tea program for a local game.
func Run(factory GameFactory, cfg core.RuntimeConfig) error {
	model := NewModel(factory, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
