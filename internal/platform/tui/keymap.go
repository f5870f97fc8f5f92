package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/jumper"
)

// KeyMap defines the key bindings of the game.
type KeyMap struct {
	Jump  key.Binding
	Start key.Binding
	Retry key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the fixed bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up/w", "jump"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter/s", "start"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key press into a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Retry):
		return core.ActionRetry
	}
	return core.ActionNone
}

// phaseKeys shows only the bindings that do something in the current phase.
type phaseKeys struct {
	keys  KeyMap
	phase jumper.Phase
}

// ShortHelp returns key bindings for the short help view.
func (p phaseKeys) ShortHelp() []key.Binding {
	switch p.phase {
	case jumper.PhaseStart:
		return []key.Binding{p.keys.Start, p.keys.Quit}
	case jumper.PhasePlaying:
		return []key.Binding{p.keys.Jump, p.keys.Quit}
	default:
		return []key.Binding{p.keys.Retry, p.keys.Quit}
	}
}

// FullHelp returns key bindings for the full help view.
func (p phaseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{p.keys.Jump, p.keys.Start},
		{p.keys.Retry, p.keys.Quit},
	}
}
