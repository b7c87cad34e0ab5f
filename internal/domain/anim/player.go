package anim

import "fmt"

// Player is the per-pet frame sequencer. It advances one tick at a time
// through the active sequence and reports which sprite cell is current.
//
// A Player is not safe for concurrent use; the tick driver owns it.
type Player struct {
	catalog *Catalog

	current Kind
	frame   int // index into the active sequence
	ticks   int // ticks elapsed in the current frame
	loops   int // completed iterations of the active loop
}

// NewPlayer creates a player resting on the first Idle frame.
func NewPlayer(catalog *Catalog) *Player {
	return &Player{catalog: catalog, current: Idle}
}

// Current returns the active animation kind
func (p *Player) Current() Kind {
	return p.current
}

// FrameIndex returns the index of the current frame
func (p *Player) FrameIndex() int {
	return p.frame
}

// TicksInFrame returns how many ticks the current frame has been shown
func (p *Player) TicksInFrame() int {
	return p.ticks
}

// LoopCount returns the completed iterations of the active loop
func (p *Player) LoopCount() int {
	return p.loops
}

// Catalog returns the catalog the player reads from
func (p *Player) Catalog() *Catalog {
	return p.catalog
}

// Cell returns the sprite cell of the current frame without advancing.
func (p *Player) Cell() Cell {
	return p.catalog.Lookup(p.current).Frames[p.frame].Cell
}

// Tick advances one tick and returns the cell to render.
func (p *Player) Tick() Cell {
	seq := p.catalog.Lookup(p.current)
	f := seq.Frames[p.frame]

	p.ticks++
	if p.ticks < int(f.Duration) {
		return f.Cell
	}

	next := p.frame + 1
	if f.Loop == LoopEnd {
		head := seq.LoopHead(p.frame)
		iterations := int(seq.Frames[head].Iterations)
		if iterations == 0 || p.loops < iterations {
			next = head
			p.loops++
		} else {
			p.loops = 0
		}
	} else if next < seq.Len() && seq.Frames[next].Loop == LoopBegin {
		// entering a loop from outside starts a fresh budget
		p.loops = 0
	}

	if next >= seq.Len() {
		next = 0
		p.loops = 0
	}

	p.frame = next
	p.ticks = 0
	return seq.Frames[p.frame].Cell
}

// SwitchTo requests a change of animation. It returns false when the
// request is a no-op or is deferred because the active sequence is not
// interruptible and has not reached its final tick; callers retry on a
// later tick.
func (p *Player) SwitchTo(kind Kind) bool {
	if kind == p.current {
		return false
	}

	seq := p.catalog.Lookup(p.current)
	if !seq.Interruptible && !p.onFinalTick(seq) {
		return false
	}

	if !kind.Valid() {
		panic(fmt.Sprintf("anim: switch to undeclared kind %d", kind))
	}
	p.current = kind
	p.frame = 0
	p.ticks = 0
	p.loops = 0
	return true
}

// Reset returns the player to the first Idle frame.
func (p *Player) Reset() {
	p.current = Idle
	p.frame = 0
	p.ticks = 0
	p.loops = 0
}

// SetCatalog swaps the catalog and resets playback, since frame indices
// of the old catalog mean nothing in the new one.
func (p *Player) SetCatalog(catalog *Catalog) {
	p.catalog = catalog
	p.Reset()
}

func (p *Player) onFinalTick(seq *Sequence) bool {
	last := seq.Len() - 1
	return p.frame == last && p.ticks == int(seq.Frames[last].Duration)-1
}
