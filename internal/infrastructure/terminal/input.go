package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/neko/internal/application/system"
)

// EventInput folds tcell events into one InputState per tick. Handle is
// called from the event goroutine, GetInput from the tick loop.
type EventInput struct {
	mu      sync.Mutex
	pending system.InputState
}

var _ system.InputSource = (*EventInput)(nil)

// NewEventInput starts with the pointer at (x, y)
func NewEventInput(x, y int) *EventInput {
	return &EventInput{pending: system.InputState{MouseX: x, MouseY: y}}
}

// Handle records ev. It returns false for events that end the program
// outright (Ctrl-C).
func (in *EventInput) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		in.mouse(x, y)
	case *tcell.EventKey:
		return in.key(ev.Key(), ev.Rune())
	}
	return true
}

func (in *EventInput) mouse(x, y int) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.pending.MouseX, in.pending.MouseY = x, y
}

func (in *EventInput) key(key tcell.Key, r rune) bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	switch key {
	case tcell.KeyCtrlC:
		in.pending.Quit = true
		return false
	case tcell.KeyEscape:
		in.pending.Quit = true
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			in.pending.Quit = true
		case 'r', 'R':
			in.pending.Reset = true
		case 'p', 'P', ' ':
			in.pending.Pause = !in.pending.Pause
		}
	}
	return true
}

// GetInput returns the folded state and clears the one-shot keys.
func (in *EventInput) GetInput() (system.InputState, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()

	out := in.pending
	in.pending.Pause = false
	in.pending.Reset = false
	in.pending.Quit = false
	return out, true
}
