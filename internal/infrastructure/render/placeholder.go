package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/colornames"

	"github.com/younwookim/neko/internal/domain/anim"
	"github.com/younwookim/neko/internal/infrastructure/config"
)

// rowColors tints each sheet row so animation groups are told apart
var rowColors = []color.RGBA{
	colornames.Wheat,
	colornames.Sandybrown,
	colornames.Peru,
	colornames.Lightpink,
}

// Placeholder draws a stand-in sheet: every cell is tinted by row and
// carries a dark marker whose offset encodes the column.
func Placeholder(cfg config.SpriteConfig) *image.RGBA {
	w, h := SheetSize(cfg)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(colornames.Black), image.Point{}, draw.Src)

	for row := 0; row < cfg.Rows; row++ {
		tint := image.NewUniform(rowColors[row%len(rowColors)])
		for col := 0; col < cfg.Columns; col++ {
			r := CellRect(anim.Cell{Col: uint8(col), Row: uint8(row)}, cfg.CellWidth, cfg.CellHeight, cfg.BorderWidth)
			draw.Draw(img, r, tint, image.Point{}, draw.Src)
			draw.Draw(img, markerRect(r, col, cfg.Columns), image.NewUniform(colornames.Saddlebrown), image.Point{}, draw.Src)
		}
	}
	return img
}

// markerRect is a square in the lower half of r, sliding right with col.
func markerRect(r image.Rectangle, col, cols int) image.Rectangle {
	size := r.Dx() / 4
	if size < 1 {
		size = 1
	}
	span := r.Dx() - size
	x := r.Min.X
	if cols > 1 {
		x += span * col / (cols - 1)
	}
	y := r.Min.Y + r.Dy()/2
	return image.Rect(x, y, x+size, y+size).Intersect(r)
}
