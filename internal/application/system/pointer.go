package system

import "github.com/younwookim/neko/internal/domain/entity"

// PointerSystem owns the sampled pointer position and keeps it clamped so
// the cursor footprint never leaves the screen.
type PointerSystem struct {
	screen entity.Screen
	cursor entity.Size
	scale  int
	pos    entity.Point
}

// NewPointerSystem creates a pointer starting at the screen origin.
// relativeScale divides raw relative motion (see ApplyRelative).
func NewPointerSystem(screen entity.Screen, cursor entity.Size, relativeScale int) *PointerSystem {
	if relativeScale < 1 {
		relativeScale = 1
	}
	return &PointerSystem{
		screen: screen,
		cursor: cursor,
		scale:  relativeScale,
	}
}

// Sample records an absolute pointer position
func (s *PointerSystem) Sample(x, y int) entity.Point {
	s.pos = s.screen.Clamp(entity.Point{X: x, Y: y}, s.cursor)
	return s.pos
}

// ApplyRelative moves the pointer by raw device counts, as reported by
// relative pointing devices.
func (s *PointerSystem) ApplyRelative(rx, ry int) entity.Point {
	return s.Sample(s.pos.X+rx/s.scale, s.pos.Y+ry/s.scale)
}

// Position returns the last clamped sample
func (s *PointerSystem) Position() entity.Point {
	return s.pos
}

// Cursor returns the cursor footprint
func (s *PointerSystem) Cursor() entity.Size {
	return s.cursor
}

// Resize changes the screen and re-clamps the current position
func (s *PointerSystem) Resize(screen entity.Screen) {
	s.screen = screen
	s.pos = screen.Clamp(s.pos, s.cursor)
}
