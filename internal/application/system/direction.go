package system

import "github.com/younwookim/neko/internal/domain/anim"

// Slope thresholds in fixed point (x1000). They split the circle into
// eight 45 degree wedges centred on the axes and diagonals.
const (
	SlopeSteep   = 2414 // tan(67.5)
	SlopeShallow = 414  // tan(22.5)
)

// Classify maps a displacement to Idle or one of the eight run kinds.
// Screen y grows downward, so dy > 0 means "down".
func Classify(dx, dy int) anim.Kind {
	if abs(dx) < 2 && abs(dy) < 2 {
		return anim.Idle
	}

	if dx == 0 {
		return vertical(dy)
	}

	ratio := int64(dy) * 1000 / int64(dx)
	switch {
	case abs64(ratio) > SlopeSteep:
		return vertical(dy)
	case abs64(ratio) < SlopeShallow:
		if dx > 0 {
			return anim.RunRight
		}
		return anim.RunLeft
	}

	switch {
	case dx > 0 && dy > 0:
		return anim.RunDownRight
	case dx > 0:
		return anim.RunUpRight
	case dy > 0:
		return anim.RunDownLeft
	default:
		return anim.RunUpLeft
	}
}

func vertical(dy int) anim.Kind {
	if dy > 0 {
		return anim.RunDown
	}
	return anim.RunUp
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
