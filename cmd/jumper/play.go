package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Enter/S        - Start
  Space/Up/W     - Jump
  R              - Retry (after game over)
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slower starting speeds, obstacles grow slowly
  normal - Speeds from the config
  hard   - Faster starting speeds

Coin policies:
  timed    - A coin may appear once per second
  anchored - Coins appear around newly spawned obstacles

Examples:
  jumper play
  jumper play --difficulty easy
  jumper play --coins anchored --seed 42
  jumper play --config ./my-jumper.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) {
	// The terminal belongs to the game, so logs only go to --log-file
	a, err := openApp(io.Discard, "jumper")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = a.cfg.Scoring.FPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	runErr := tui.Run(a.factory(), cfg)

	// Close stores before potential exit
	a.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
