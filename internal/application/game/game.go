// Package game hosts the active Scene inside the ebiten run loop.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/neko/internal/application/scene"
	"github.com/younwookim/neko/internal/infrastructure/config"
)

// Game implements ebiten.Game for one window sized by the display settings.
type Game struct {
	current scene.Scene
	display config.DisplayConfig
	dt      float64
	done    bool
}

// New creates a Game showing initialScene and calls its OnEnter.
// The update step is one display frame.
func New(initialScene scene.Scene, display config.DisplayConfig) *Game {
	g := &Game{
		current: initialScene,
		display: display,
		dt:      1.0 / 60.0,
	}
	if display.Framerate > 0 {
		g.dt = 1.0 / float64(display.Framerate)
	}
	g.current.OnEnter()
	return g
}

// Update advances the current scene by one host tick.
// A scene returning scene.ErrQuit ends the run loop with ebiten.Termination;
// a non-nil next scene replaces the current one.
func (g *Game) Update() error {
	if g.done {
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	switch {
	case errors.Is(err, scene.ErrQuit):
		g.current.OnExit()
		g.done = true
		return ebiten.Termination
	case err != nil:
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout keeps the logical screen fixed; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.display.ScreenWidth, g.display.ScreenHeight
}

// SetDT overrides the update step
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// DT returns the update step
func (g *Game) DT() float64 {
	return g.dt
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Done reports whether a scene asked to quit
func (g *Game) Done() bool {
	return g.done
}

// Run opens the window and blocks until the run loop ends.
func (g *Game) Run(title string) error {
	scale := g.display.Scale
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(g.display.ScreenWidth*scale, g.display.ScreenHeight*scale)
	ebiten.SetWindowTitle(title)
	if g.display.Framerate > 0 {
		ebiten.SetTPS(g.display.Framerate)
	}
	return ebiten.RunGame(g)
}
