// Package timer implements the per-question countdown as a small state
// machine driven by one-second ticks from the UI loop. The countdown never
// goes below zero and the expiry transition fires exactly once per question,
// which is what lets the chat screen auto-submit without double-firing.
package timer

// Phase is the countdown's lifecycle position.
type Phase int

const (
	// Idle means no question is being timed.
	Idle Phase = iota
	// Running means the countdown decrements on each tick.
	Running
	// Paused means the countdown holds its value across ticks.
	Paused
	// Expired means the countdown reached zero while running.
	Expired
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

// Countdown tracks the seconds remaining for the current question.
// Not safe for concurrent use; the UI loop owns it.
type Countdown struct {
	phase     Phase
	remaining int
}

// New returns an idle countdown.
func New() *Countdown {
	return &Countdown{}
}

// Phase reports the current lifecycle position.
func (c *Countdown) Phase() Phase { return c.phase }

// Remaining reports the seconds left, never negative.
func (c *Countdown) Remaining() int { return c.remaining }

// Start begins timing a question with seconds on the clock. A non-positive
// value starts directly in the expired phase; Tick still reports the expiry
// exactly once.
func (c *Countdown) Start(seconds int) {
	if seconds <= 0 {
		c.remaining = 0
		c.phase = Running
		return
	}
	c.remaining = seconds
	c.phase = Running
}

// Pause freezes a running countdown. No-op in any other phase.
func (c *Countdown) Pause() {
	if c.phase == Running {
		c.phase = Paused
	}
}

// Resume continues a paused countdown from its frozen value.
func (c *Countdown) Resume() {
	if c.phase == Paused {
		c.phase = Running
	}
}

// Reset returns the countdown to idle, dropping any latched expiry.
func (c *Countdown) Reset() {
	c.phase = Idle
	c.remaining = 0
}

// Tick advances the countdown by one second. It returns true on exactly the
// tick where the countdown transitions into the expired phase; every later
// tick returns false until the next Start.
func (c *Countdown) Tick() (expired bool) {
	if c.phase != Running {
		return false
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining == 0 {
		c.phase = Expired
		return true
	}
	return false
}
