package core

// Action represents a semantic game action, abstracted from physical key presses.
// Front-ends translate keys into actions; the engine only ever sees actions.
type Action int

const (
	ActionNone  Action = iota
	ActionJump         // Space, Up, W - jump while playing
	ActionStart        // Enter, S - leave the start screen
	ActionRetry        // R - play again after game over
	ActionQuit         // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionRetry:
		return "Retry"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
