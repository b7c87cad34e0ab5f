package entity

// Body holds where the pet is drawn.
// PreviousPosition is kept only so the renderer can erase the old
// footprint; steering never reads it.
type Body struct {
	Position         Point
	PreviousPosition Point
	Footprint        Size
}

// MoveTo commits a new position, remembering the old one for erasing
func (b *Body) MoveTo(p Point) {
	b.PreviousPosition = b.Position
	b.Position = p
}

// Hold records that the pet did not move this tick
func (b *Body) Hold() {
	b.PreviousPosition = b.Position
}

// Place teleports the body without leaving an erase trail
func (b *Body) Place(p Point) {
	b.Position = p
	b.PreviousPosition = p
}
