package anim

// Cell is a column/row coordinate into the sprite grid.
type Cell struct {
	Col, Row uint8
}

// LoopRole marks a frame as the head or tail of a loop.
type LoopRole uint8

const (
	LoopNone LoopRole = iota
	LoopBegin
	LoopEnd
)

// String returns the string representation of the loop role
func (r LoopRole) String() string {
	switch r {
	case LoopNone:
		return "none"
	case LoopBegin:
		return "begin"
	case LoopEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Frame is one still image reference plus timing and loop metadata.
// Iterations is only read on a LoopBegin frame; 0 loops forever.
type Frame struct {
	Cell       Cell
	Duration   uint8 // ticks the frame stays on screen
	Loop       LoopRole
	Iterations uint8
}

// F builds a plain frame.
func F(col, row, duration uint8) Frame {
	return Frame{Cell: Cell{Col: col, Row: row}, Duration: duration}
}

// Begin builds a loop head repeated iterations times (0 = forever).
func Begin(col, row, duration, iterations uint8) Frame {
	return Frame{Cell: Cell{Col: col, Row: row}, Duration: duration, Loop: LoopBegin, Iterations: iterations}
}

// End builds a loop tail.
func End(col, row, duration uint8) Frame {
	return Frame{Cell: Cell{Col: col, Row: row}, Duration: duration, Loop: LoopEnd}
}
