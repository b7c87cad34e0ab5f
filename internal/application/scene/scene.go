// Package scene defines the Scene interface for front-end screens.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update when the user asked to leave.
var ErrQuit = errors.New("quit requested")

// Scene represents one screen of the window front-end.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances one host tick. dt is the tick length in seconds.
	// Returns the next scene if a transition is needed, nil to stay.
	// Returns ErrQuit to end the program normally, any other error to abort.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, including on quit.
	// Use this for cleanup, saving state, or resource release.
	OnExit()
}
