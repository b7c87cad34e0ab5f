package entity

import "github.com/younwookim/neko/internal/domain/anim"

// RenderCommand tells the render adapter what to blit after one tick:
// clear Footprint at EraseAt, then draw Cell at DrawAt.
type RenderCommand struct {
	Cell      anim.Cell
	EraseAt   Point
	DrawAt    Point
	Footprint Size
}

// Pet is one on-screen sprite: its body, its animation player and the
// pause flag. All fields are owned by the tick driver.
type Pet struct {
	Body
	Player *anim.Player

	Spawn  Point
	Paused bool
}

// NewPet creates a pet idling at spawn.
func NewPet(catalog *anim.Catalog, spawn Point, footprint Size) *Pet {
	return &Pet{
		Body: Body{
			Position:         spawn,
			PreviousPosition: spawn,
			Footprint:        footprint,
		},
		Player: anim.NewPlayer(catalog),
		Spawn:  spawn,
	}
}

// Pause freezes steering; animation playback continues
func (p *Pet) Pause() {
	p.Paused = true
}

// Resume re-enables steering
func (p *Pet) Resume() {
	p.Paused = false
}

// TogglePause flips the pause flag and returns the new value
func (p *Pet) TogglePause() bool {
	p.Paused = !p.Paused
	return p.Paused
}

// Reset puts the pet back on the first Idle frame at its spawn point.
// The pause flag is left untouched.
func (p *Pet) Reset() {
	p.Player.Reset()
	p.Place(p.Spawn)
}

// Command builds the render command for the current state.
func (p *Pet) Command(cell anim.Cell) RenderCommand {
	return RenderCommand{
		Cell:      cell,
		EraseAt:   p.PreviousPosition,
		DrawAt:    p.Position,
		Footprint: p.Footprint,
	}
}
