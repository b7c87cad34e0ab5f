package state

// RunState is the lifecycle of the desktop session
type RunState int

const (
	StateRunning RunState = iota
	StatePaused
	StateQuitting
)

// String returns the string representation of the run state
func (s RunState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// TogglePause flips between Running and Paused. Quitting is terminal.
func (s RunState) TogglePause() RunState {
	switch s {
	case StateRunning:
		return StatePaused
	case StatePaused:
		return StateRunning
	default:
		return s
	}
}

// Active reports whether the session still ticks
func (s RunState) Active() bool {
	return s == StateRunning || s == StatePaused
}
