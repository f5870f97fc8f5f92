package jumper

// Scheduler drives Game.Tick at a fixed rate. Start arms periodic ticks;
// Cancel guarantees that no tick armed before it is ever delivered.
// Calling Start twice without Cancel must not create a second tick chain.
type Scheduler interface {
	Start()
	Cancel()
}

// ManualScheduler is a Scheduler stepped explicitly, for tests and
// headless simulation.
type ManualScheduler struct {
	running bool
	starts  int
	cancels int
}

// Start implements Scheduler.
func (m *ManualScheduler) Start() {
	m.running = true
	m.starts++
}

// Cancel implements Scheduler.
func (m *ManualScheduler) Cancel() {
	m.running = false
	m.cancels++
}

// Running reports whether ticks are armed.
func (m *ManualScheduler) Running() bool {
	return m.running
}

// Starts returns how many times Start was called.
func (m *ManualScheduler) Starts() int {
	return m.starts
}

// Cancels returns how many times Cancel was called.
func (m *ManualScheduler) Cancels() int {
	return m.cancels
}

// Step delivers up to n ticks to g, stopping as soon as the scheduler is
// cancelled. It returns the number of ticks delivered.
func (m *ManualScheduler) Step(g *Game, n int) int {
	delivered := 0
	for i := 0; i < n && m.running; i++ {
		g.Tick()
		delivered++
	}
	return delivered
}
