// Package render draws render commands onto ebiten surfaces.
package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/neko/internal/domain/anim"
	"github.com/younwookim/neko/internal/infrastructure/config"
)

// SpriteSheet is a grid of equally sized cells separated by a border.
type SpriteSheet struct {
	Image       *ebiten.Image
	CellWidth   int
	CellHeight  int
	BorderWidth int
}

// CellRect returns the source rectangle of cell in a sheet laid out with
// cells of w x h and border pixels around every cell.
func CellRect(cell anim.Cell, w, h, border int) image.Rectangle {
	x := border + int(cell.Col)*(w+border)
	y := border + int(cell.Row)*(h+border)
	return image.Rect(x, y, x+w, y+h)
}

// SheetSize returns the pixel size of a sheet with cols x rows cells.
func SheetSize(cfg config.SpriteConfig) (w, h int) {
	w = cfg.BorderWidth + cfg.Columns*(cfg.CellWidth+cfg.BorderWidth)
	h = cfg.BorderWidth + cfg.Rows*(cfg.CellHeight+cfg.BorderWidth)
	return w, h
}

// NewSpriteSheet wraps img using the cell geometry in cfg
func NewSpriteSheet(img *ebiten.Image, cfg config.SpriteConfig) *SpriteSheet {
	return &SpriteSheet{
		Image:       img,
		CellWidth:   cfg.CellWidth,
		CellHeight:  cfg.CellHeight,
		BorderWidth: cfg.BorderWidth,
	}
}

// Rect returns the source rectangle of cell
func (s *SpriteSheet) Rect(cell anim.Cell) image.Rectangle {
	return CellRect(cell, s.CellWidth, s.CellHeight, s.BorderWidth)
}

// Sub returns the sub-image for cell
func (s *SpriteSheet) Sub(cell anim.Cell) *ebiten.Image {
	return s.Image.SubImage(s.Rect(cell)).(*ebiten.Image)
}

// LoadSheet reads cfg.Sheet from fsys. With no sheet configured a
// placeholder is generated instead.
func LoadSheet(fsys fs.FS, cfg config.SpriteConfig) (*SpriteSheet, error) {
	if cfg.Sheet == "" {
		return NewSpriteSheet(ebiten.NewImageFromImage(Placeholder(cfg)), cfg), nil
	}

	b, err := fs.ReadFile(fsys, cfg.Sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite sheet %s: %w", cfg.Sheet, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite sheet %s: %w", cfg.Sheet, err)
	}

	w, h := SheetSize(cfg)
	if b := img.Bounds(); b.Dx() < w || b.Dy() < h {
		return nil, fmt.Errorf("sprite sheet %s is %dx%d, need at least %dx%d", cfg.Sheet, b.Dx(), b.Dy(), w, h)
	}
	return NewSpriteSheet(ebiten.NewImageFromImage(img), cfg), nil
}
