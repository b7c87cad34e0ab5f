package system

// Clock divides the host tick rate. With Every = N, Advance reports true
// on every Nth call, starting with the Nth.
type Clock struct {
	every int
	count int
}

// NewClock creates a clock that fires every n host ticks (n < 1 means 1)
func NewClock(n int) *Clock {
	if n < 1 {
		n = 1
	}
	return &Clock{every: n}
}

// Advance counts one host tick and reports whether the clock fires
func (c *Clock) Advance() bool {
	c.count++
	if c.count < c.every {
		return false
	}
	c.count = 0
	return true
}

// Every returns the divider
func (c *Clock) Every() int {
	return c.every
}

// Reset restarts the count
func (c *Clock) Reset() {
	c.count = 0
}
