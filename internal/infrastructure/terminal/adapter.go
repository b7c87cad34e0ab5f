// Package terminal renders the pet into a tcell screen, one terminal
// cell per pixel, and turns tcell events into pointer input.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/neko/internal/domain/anim"
	"github.com/younwookim/neko/internal/domain/entity"
)

var glyphs = [...]rune{
	anim.Idle:         'o',
	anim.Startled:     '!',
	anim.RunUp:        '↑',
	anim.RunUpRight:   '↗',
	anim.RunRight:     '→',
	anim.RunDownRight: '↘',
	anim.RunDown:      '↓',
	anim.RunDownLeft:  '↙',
	anim.RunLeft:      '←',
	anim.RunUpLeft:    '↖',
	anim.ScratchUp:    '#',
	anim.ScratchRight: '#',
	anim.ScratchDown:  '#',
	anim.ScratchLeft:  '#',
}

// sleepGlyph replaces the idle glyph on the looping tail of Idle
const sleepGlyph = 'z'

// Glyph returns the rune drawn for kind. frame and frames let Idle show
// its sleeping tail.
func Glyph(kind anim.Kind, frame, frames int) rune {
	if !kind.Valid() {
		return '?'
	}
	if kind == anim.Idle && frames > 2 && frame >= frames-2 {
		return sleepGlyph
	}
	return glyphs[kind]
}

// Style returns the style for kind
func Style(kind anim.Kind) tcell.Style {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	switch {
	case kind == anim.Startled:
		return style.Foreground(tcell.ColorRed).Bold(true)
	case kind.IsRun():
		return style.Foreground(tcell.ColorYellow)
	case kind.IsScratch():
		return style.Foreground(tcell.ColorPurple)
	default:
		return style.Foreground(tcell.ColorWhite)
	}
}

// Adapter applies render commands to a tcell screen.
type Adapter struct {
	screen tcell.Screen
	blank  tcell.Style
}

// NewAdapter wraps an initialised screen
func NewAdapter(screen tcell.Screen) *Adapter {
	return &Adapter{
		screen: screen,
		blank:  tcell.StyleDefault.Background(tcell.ColorBlack),
	}
}

// Size returns the screen in cells
func (a *Adapter) Size() entity.Screen {
	w, h := a.screen.Size()
	return entity.Screen{Width: w, Height: h}
}

// Apply erases the old footprint and draws the pet glyph. Cells off
// screen are skipped.
func (a *Adapter) Apply(cmd entity.RenderCommand, pet *anim.Player) {
	a.fill(cmd.EraseAt, cmd.Footprint, ' ', a.blank)

	kind := pet.Current()
	frames := pet.Catalog().Lookup(kind).Len()
	a.fill(cmd.DrawAt, cmd.Footprint, Glyph(kind, pet.FrameIndex(), frames), Style(kind))
}

// Clear blanks the whole screen
func (a *Adapter) Clear() {
	a.screen.SetStyle(a.blank)
	a.screen.Clear()
}

// Show flushes pending changes
func (a *Adapter) Show() {
	a.screen.Show()
}

func (a *Adapter) fill(at entity.Point, size entity.Size, r rune, style tcell.Style) {
	w, h := a.screen.Size()
	for y := at.Y; y < at.Y+size.H; y++ {
		if y < 0 || y >= h {
			continue
		}
		for x := at.X; x < at.X+size.W; x++ {
			if x < 0 || x >= w {
				continue
			}
			a.screen.SetContent(x, y, r, nil, style)
		}
	}
}
