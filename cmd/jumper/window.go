package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window rendered with Ebitengine.

Controls are the same as in the terminal.

Examples:
  jumper window
  jumper window --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	addGameFlags(windowCmd)
}

func runWindow(_ *cobra.Command, _ []string) {
	a, err := openApp(os.Stderr, "jumper")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := window.Run(a.factory(), "Jump Action")
	a.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
