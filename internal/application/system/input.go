package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the host input sampled for one tick
type InputState struct {
	MouseX   int
	MouseY   int
	Relative bool // MouseX/MouseY are raw relative counts, not a position
	Pause    bool // pause toggle requested
	Reset    bool
	Quit     bool
	Save     bool // save the recording now
}

// InputSource yields input once per tick. ok is false when the source is
// exhausted (a finished replay); live sources never run out.
type InputSource interface {
	GetInput() (input InputState, ok bool)
}

// EbitenInput reads the keyboard and cursor through ebiten
type EbitenInput struct{}

// NewEbitenInput creates a live input source
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// GetInput reads the current input state
func (EbitenInput) GetInput() (InputState, bool) {
	mx, my := ebiten.CursorPosition()
	return InputState{
		MouseX: mx,
		MouseY: my,
		Pause:  inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Reset:  inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:   inpututil.IsKeyJustPressed(ebiten.KeyQ),
		Save:   inpututil.IsKeyJustPressed(ebiten.KeyF5),
	}, true
}
