// Package tui provides the Bubble Tea front-end for the jumper game.
// It handles the terminal UI loop, input mapping and drawing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the tick chain that produced it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// TickScheduler implements jumper.Scheduler on top of tea.Tick.
//
// Bubble Tea cannot cancel a command once returned, so every chain is
// stamped with a generation number. Start and Cancel both bump the
// generation; ticks from an older generation are dropped on arrival.
type TickScheduler struct {
	interval time.Duration
	gen      uint64
	armed    bool
	pending  bool // Start called, first tick not yet scheduled
}

// NewTickScheduler creates a scheduler ticking tickRate times per second.
func NewTickScheduler(tickRate int) *TickScheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TickScheduler{interval: time.Second / time.Duration(tickRate)}
}

// Start implements jumper.Scheduler.
func (s *TickScheduler) Start() {
	s.gen++
	s.armed = true
	s.pending = true
}

// Cancel implements jumper.Scheduler.
func (s *TickScheduler) Cancel() {
	s.gen++
	s.armed = false
	s.pending = false
}

// Running reports whether ticks are armed.
func (s *TickScheduler) Running() bool {
	return s.armed
}

// Accept reports whether msg belongs to the live chain.
func (s *TickScheduler) Accept(msg TickMsg) bool {
	return s.armed && msg.Gen == s.gen
}

// TakeStart returns the command for the first tick of a chain armed by
// Start, or nil if nothing is waiting. Each Start yields one command.
func (s *TickScheduler) TakeStart() tea.Cmd {
	if !s.pending {
		return nil
	}
	s.pending = false
	return s.Next()
}

// Next returns the command for the following tick of the live chain,
// or nil when the scheduler is cancelled.
func (s *TickScheduler) Next() tea.Cmd {
	if !s.armed {
		return nil
	}
	gen := s.gen
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
