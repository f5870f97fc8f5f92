// Package window runs the jumper game in a desktop window using Ebitengine.
package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/jumper"
)

// Scene colors
var (
	skyColor      = color.RGBA{135, 206, 235, 255}
	groundColor   = color.RGBA{34, 139, 34, 255}
	cloudColor    = color.RGBA{255, 255, 255, 255}
	obstacleColor = color.RGBA{200, 40, 40, 255}
	coinColor     = color.RGBA{255, 215, 0, 255}
	playerColor   = color.RGBA{30, 80, 220, 255}
	panelColor    = color.RGBA{0, 0, 0, 160}
)

// keyBindings maps keys to game actions.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeyW, core.ActionJump},
	{ebiten.KeyEnter, core.ActionStart},
	{ebiten.KeyS, core.ActionStart},
	{ebiten.KeyR, core.ActionRetry},
	{ebiten.KeyQ, core.ActionQuit},
}

// frameScheduler ticks the game once per Ebitengine update while armed.
// Update runs on a single goroutine, so Cancel takes effect before the
// next frame.
type frameScheduler struct {
	running bool
}

func (f *frameScheduler) Start()  { f.running = true }
func (f *frameScheduler) Cancel() { f.running = false }

// Window implements ebiten.Game for a jumper.Game.
type Window struct {
	game   *jumper.Game
	sched  *frameScheduler
	width  int
	height int
}

// New creates a window whose game is built by factory.
func New(factory func(sched jumper.Scheduler) *jumper.Game) *Window {
	sched := &frameScheduler{}
	g := factory(sched)
	cfg := g.Config()
	return &Window{
		game:   g,
		sched:  sched,
		width:  int(cfg.Viewport.Width),
		height: int(cfg.Viewport.Height),
	}
}

// Update forwards input and advances the simulation by one tick.
func (w *Window) Update() error {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			w.game.Handle(b.action)
		}
	}
	if w.game.Terminated() {
		return ebiten.Termination
	}

	if w.sched.running {
		w.game.Tick()
	}
	return nil
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.game.Snapshot()
	screen.Fill(skyColor)

	switch snap.Phase {
	case jumper.PhasePlaying:
		w.drawField(screen, snap)
	case jumper.PhaseGameOver:
		w.drawField(screen, snap)
		w.drawGameOver(screen, snap)
	default:
		w.drawStart(screen, snap)
	}
}

// Layout keeps the logical viewport regardless of the window size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

func fillBox(dst *ebiten.Image, b core.Box, clr color.Color) {
	vector.DrawFilledRect(dst, float32(b.X1), float32(b.Y1), float32(b.Width()), float32(b.Height()), clr, false)
}

func (w *Window) drawField(screen *ebiten.Image, snap jumper.Snapshot) {
	for _, c := range snap.Clouds {
		fillBox(screen, c.Box, cloudColor)
	}

	vector.DrawFilledRect(screen, 0, float32(snap.GroundY), float32(snap.Width), float32(snap.Height-snap.GroundY), groundColor, false)

	if snap.Obstacle != nil {
		fillBox(screen, *snap.Obstacle, obstacleColor)
	}
	for _, c := range snap.Coins {
		cx, cy := c.Box.Center()
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(c.Box.Width()/2), coinColor, true)
	}
	fillBox(screen, snap.Player, playerColor)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level: %d", snap.DifficultyLevel), w.width-90, 10)
	if snap.Notice != nil {
		ebitenutil.DebugPrintAt(screen, snap.Notice.Text, w.width/2-30, 60)
	}
}

// drawPanel draws a translucent panel with lines of text centered horizontally.
func (w *Window) drawPanel(screen *ebiten.Image, lines []string) {
	const lineHeight = 18
	panelH := float32(len(lines)*lineHeight + 40)
	panelW := float32(320)
	x := (float32(w.width) - panelW) / 2
	y := (float32(w.height) - panelH) / 2
	vector.DrawFilledRect(screen, x, y, panelW, panelH, panelColor, false)

	for i, line := range lines {
		// The debug font is 6 px wide
		tx := w.width/2 - len(line)*3
		ebitenutil.DebugPrintAt(screen, line, tx, int(y)+20+i*lineHeight)
	}
}

func scoreLines(scores []int, highlight int) []string {
	if len(scores) == 0 {
		return []string{"No scores recorded yet."}
	}
	lines := make([]string, 0, len(scores))
	for i, s := range scores {
		marker := "  "
		if i+1 == highlight {
			marker = "> "
		}
		lines = append(lines, fmt.Sprintf("%s#%d  %6d", marker, i+1, s))
	}
	return lines
}

func (w *Window) drawStart(screen *ebiten.Image, snap jumper.Snapshot) {
	lines := []string{"JUMP ACTION", "", "Press ENTER to start", "", "HIGH SCORES"}
	lines = append(lines, scoreLines(snap.HighScores, 0)...)
	w.drawPanel(screen, lines)
}

func (w *Window) drawGameOver(screen *ebiten.Image, snap jumper.Snapshot) {
	lines := []string{"GAME OVER", "", fmt.Sprintf("Score: %d", snap.Score)}
	if snap.LastRank > 0 {
		lines = append(lines, fmt.Sprintf("New high score! #%d", snap.LastRank))
	}
	lines = append(lines, "", "HIGH SCORES")
	lines = append(lines, scoreLines(snap.HighScores, snap.LastRank)...)
	lines = append(lines, "", "Press R to retry or Q to quit")
	w.drawPanel(screen, lines)
}

// Run opens the window and blocks until the game is quit or the window closed.
func Run(factory func(sched jumper.Scheduler) *jumper.Game, title string) error {
	w := New(factory)

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetTPS(w.game.Config().Scoring.FPS)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
