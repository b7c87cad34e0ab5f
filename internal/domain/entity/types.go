package entity

// Point is a screen coordinate in pixels
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Size is a width/height pair in pixels
type Size struct {
	W, H int
}

// Edge identifies which screen border a point sits on
type Edge int

const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeRight
	EdgeTop
	EdgeBottom
)

// String returns the string representation of the edge
func (e Edge) String() string {
	switch e {
	case EdgeNone:
		return "None"
	case EdgeLeft:
		return "Left"
	case EdgeRight:
		return "Right"
	case EdgeTop:
		return "Top"
	case EdgeBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Screen is the drawable area the pet lives on
type Screen struct {
	Width  int
	Height int
}

// Clamp limits a pointer sample so a cursor of the given footprint
// stays fully on screen.
func (s Screen) Clamp(p Point, cursor Size) Point {
	return Point{
		X: clamp(p.X, 0, s.Width-cursor.W),
		Y: clamp(p.Y, 0, s.Height-cursor.H),
	}
}

// EdgeAt reports the border p lies on. Only exact coordinates match, so a
// step that jumps over a border is not detected; checks run left, right,
// top, bottom and the first hit wins.
func (s Screen) EdgeAt(p Point) Edge {
	switch {
	case p.X == 0:
		return EdgeLeft
	case p.X == s.Width:
		return EdgeRight
	case p.Y == 0:
		return EdgeTop
	case p.Y == s.Height:
		return EdgeBottom
	default:
		return EdgeNone
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
