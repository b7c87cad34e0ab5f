// Package session drives one pet from host input: it samples the pointer,
// divides the host tick into the pointer and animation clocks, and applies
// the run-state keys. Every front-end (window, terminal, headless replay)
// runs the same Session so recorded input replays identically.
package session

import (
	"github.com/younwookim/neko/internal/application/state"
	"github.com/younwookim/neko/internal/application/system"
	"github.com/younwookim/neko/internal/domain/anim"
	"github.com/younwookim/neko/internal/domain/entity"
	"github.com/younwookim/neko/internal/infrastructure/config"
)

// Step is the outcome of one host tick
type Step struct {
	Command  entity.RenderCommand
	Animated bool // an animation tick ran and Command is fresh
	Reset    bool // the pet was reset; persistent surfaces should be cleared
}

// Session owns the pet and everything that moves it.
type Session struct {
	pet        *entity.Pet
	pointer    *system.PointerSystem
	steering   *system.SteeringSystem
	screen     entity.Screen
	inputClock *system.Clock
	animClock  *system.Clock
	state      state.RunState
	ticks      int
	last       entity.RenderCommand

	// OnAnimate, when set, is called after every animation tick
	OnAnimate func(tick int, pet *entity.Pet, cmd entity.RenderCommand)
}

// New creates a session from settings. The pointer starts on the pet so
// nothing moves before the first sample.
func New(cfg *config.SettingsConfig, catalog *anim.Catalog) *Session {
	screen := system.ScreenOf(cfg)
	cursor := system.CursorOf(cfg)
	pet := system.SpawnPet(cfg, catalog)

	pointer := system.NewPointerSystem(screen, cursor, cfg.Pointer.RelativeScale)
	pointer.Sample(pet.Position.X+cursor.W/2, pet.Position.Y+cursor.H/2)

	return &Session{
		pet:        pet,
		pointer:    pointer,
		steering:   system.NewSteeringSystem(cfg.Steering, cursor),
		screen:     screen,
		inputClock: system.NewClock(cfg.Clocks.PointerEvery),
		animClock:  system.NewClock(cfg.Clocks.AnimationEvery),
		state:      state.StateRunning,
		last:       pet.Command(pet.Player.Cell()),
	}
}

// Tick advances one host tick with the given input.
func (s *Session) Tick(in system.InputState) Step {
	if !s.state.Active() {
		return Step{Command: s.last}
	}
	if in.Quit {
		s.state = state.StateQuitting
		return Step{Command: s.last}
	}

	var step Step
	if in.Reset {
		s.Reset()
		step.Reset = true
	}
	if in.Pause {
		s.TogglePause()
	}

	if s.inputClock.Advance() {
		if in.Relative {
			s.pointer.ApplyRelative(in.MouseX, in.MouseY)
		} else {
			s.pointer.Sample(in.MouseX, in.MouseY)
		}
	}

	if s.animClock.Advance() {
		s.ticks++
		s.last = s.steering.Update(s.pet, s.pointer.Position(), s.screen)
		step.Animated = true
		if s.OnAnimate != nil {
			s.OnAnimate(s.ticks, s.pet, s.last)
		}
	}

	step.Command = s.last
	return step
}

// Run feeds input from src until it runs out or a quit arrives, and
// returns the number of host ticks consumed.
func (s *Session) Run(src system.InputSource) int {
	n := 0
	for s.state.Active() {
		in, ok := src.GetInput()
		if !ok {
			break
		}
		s.Tick(in)
		n++
	}
	return n
}

// Reset puts the pet back at its spawn point on the first Idle frame and
// restarts both clocks. Pause is left as it was.
func (s *Session) Reset() {
	s.pet.Reset()
	s.inputClock.Reset()
	s.animClock.Reset()
	s.last = s.pet.Command(s.pet.Player.Cell())
}

// TogglePause flips between running and paused
func (s *Session) TogglePause() state.RunState {
	s.state = s.state.TogglePause()
	s.pet.Paused = s.state == state.StatePaused
	return s.state
}

// SetCatalog swaps the animation tables; the pet restarts on Idle.
func (s *Session) SetCatalog(c *anim.Catalog) {
	s.pet.Player.SetCatalog(c)
}

// Pet returns the driven pet
func (s *Session) Pet() *entity.Pet {
	return s.pet
}

// Pointer returns the last clamped pointer position
func (s *Session) Pointer() entity.Point {
	return s.pointer.Position()
}

// Cursor returns the pointer footprint
func (s *Session) Cursor() entity.Size {
	return s.pointer.Cursor()
}

// Screen returns the screen bounds
func (s *Session) Screen() entity.Screen {
	return s.screen
}

// State returns the run state
func (s *Session) State() state.RunState {
	return s.state
}

// Ticks returns the number of animation ticks so far
func (s *Session) Ticks() int {
	return s.ticks
}

// Last returns the most recent render command
func (s *Session) Last() entity.RenderCommand {
	return s.last
}
