package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/neko/internal/domain/entity"
)

// Colors for rendering
var (
	ColorBackground = colornames.Black
	ColorCursor     = colornames.White
)

// Canvas is a persistent surface the pet is painted on. Only the erase
// and draw footprints change between ticks.
type Canvas struct {
	surface *ebiten.Image
	sheet   *SpriteSheet
	op      ebiten.DrawImageOptions
	applied int
}

// NewCanvas creates a canvas the size of screen
func NewCanvas(screen entity.Screen, sheet *SpriteSheet) *Canvas {
	c := &Canvas{
		surface: ebiten.NewImage(screen.Width, screen.Height),
		sheet:   sheet,
	}
	c.Clear()
	return c
}

// Apply erases the previous footprint and draws the new cell.
func (c *Canvas) Apply(cmd entity.RenderCommand) {
	fillRect(c.surface, cmd.EraseAt, cmd.Footprint, ColorBackground)

	c.op.GeoM.Reset()
	c.op.GeoM.Translate(float64(cmd.DrawAt.X), float64(cmd.DrawAt.Y))
	c.surface.DrawImage(c.sheet.Sub(cmd.Cell), &c.op)
	c.applied++
}

// Clear fills the whole surface with the background
func (c *Canvas) Clear() {
	c.surface.Fill(ColorBackground)
}

// Draw copies the surface onto screen and overlays the cursor.
func (c *Canvas) Draw(screen *ebiten.Image, pointer entity.Point, cursor entity.Size) {
	screen.DrawImage(c.surface, nil)
	fillRect(screen, pointer, cursor, ColorCursor)
}

// Applied returns how many commands were applied
func (c *Canvas) Applied() int {
	return c.applied
}

// Sheet returns the sprite sheet in use
func (c *Canvas) Sheet() *SpriteSheet {
	return c.sheet
}

func fillRect(dst *ebiten.Image, at entity.Point, size entity.Size, clr color.Color) {
	vector.DrawFilledRect(dst, float32(at.X), float32(at.Y), float32(size.W), float32(size.H), clr, false)
}
