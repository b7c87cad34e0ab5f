// Package desktop provides the window scene: one pet chasing the mouse.
package desktop

import (
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/neko/internal/application/replay"
	"github.com/younwookim/neko/internal/application/scene"
	"github.com/younwookim/neko/internal/application/session"
	"github.com/younwookim/neko/internal/application/state"
	"github.com/younwookim/neko/internal/application/system"
	"github.com/younwookim/neko/internal/domain/anim"
	"github.com/younwookim/neko/internal/domain/entity"
	"github.com/younwookim/neko/internal/infrastructure/config"
	"github.com/younwookim/neko/internal/infrastructure/render"
	"github.com/younwookim/neko/internal/infrastructure/trace"
)

const helpText = "PAUSED\n\nP/Space: resume | R: reset | F5: save recording | Q: quit"

// Options are the optional collaborators of a Desktop scene.
type Options struct {
	// RecordPath enables input recording; "-" picks a timestamped name.
	RecordPath string
	// Trace receives one row per animation tick. May be nil.
	Trace *trace.Writer
	// Watcher and Loader enable catalog hot reload. Both may be nil.
	Watcher *config.Watcher
	Loader  *config.Loader
}

// Desktop is the window scene
type Desktop struct {
	session     *session.Session
	input       system.InputSource
	canvas      *render.Canvas
	catalogName string
	screenW     int
	screenH     int

	// Input recording
	recorder       *replay.Recorder
	recordFilename string

	trace   *trace.Writer
	watcher *config.Watcher
	loader  *config.Loader
}

// New creates a Desktop scene.
func New(cfg *config.SettingsConfig, catalog *anim.Catalog, sheet *render.SpriteSheet, input system.InputSource, opts Options) *Desktop {
	s := session.New(cfg, catalog)

	d := &Desktop{
		session:        s,
		input:          input,
		canvas:         render.NewCanvas(s.Screen(), sheet),
		catalogName:    cfg.Catalog,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		recordFilename: opts.RecordPath,
		trace:          opts.Trace,
		watcher:        opts.Watcher,
		loader:         opts.Loader,
	}

	// Initialize recorder if recording is enabled
	if opts.RecordPath != "" {
		d.recorder = replay.NewRecorder(cfg.Catalog, s.Screen())
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}

	s.OnAnimate = d.onAnimate
	d.canvas.Apply(s.Last())
	return d
}

// Update runs one host tick (implements scene.Scene)
func (d *Desktop) Update(_ float64) (scene.Scene, error) {
	d.pollCatalog()

	input, ok := d.input.GetInput()
	if !ok {
		// replayed input ran out
		return nil, scene.ErrQuit
	}

	// F5: Save recording manually
	if input.Save {
		d.saveRecording()
	}

	// Record input if recording is enabled
	if d.recorder != nil {
		d.recorder.RecordFrame(input)
	}

	step := d.session.Tick(input)
	if step.Reset {
		d.canvas.Clear()
	}
	if step.Animated || step.Reset {
		d.canvas.Apply(step.Command)
	}

	if d.session.State() == state.StateQuitting {
		return nil, scene.ErrQuit
	}
	return nil, nil // nil = stay on this scene
}

func (d *Desktop) onAnimate(tick int, pet *entity.Pet, cmd entity.RenderCommand) {
	if err := d.trace.Record(trace.RowOf(tick, pet, cmd)); err != nil {
		log.Printf("Failed to write trace: %v", err)
		d.trace = nil
	}
}

// pollCatalog reloads the catalog when its file changed on disk.
func (d *Desktop) pollCatalog() {
	if d.watcher == nil || d.loader == nil || d.catalogName == "" {
		return
	}

	for {
		path, ok := d.watcher.Poll()
		if !ok {
			return
		}
		if filepath.Base(path) != filepath.Base(d.catalogName) {
			continue
		}

		c, err := d.loader.LoadCatalog(d.catalogName)
		if err != nil {
			log.Printf("Catalog reload failed, keeping current: %v", err)
			continue
		}
		d.session.SetCatalog(c)
		log.Printf("Catalog reloaded: %s", path)
	}
}

// saveRecording saves the current recording to file
func (d *Desktop) saveRecording() {
	if d.recorder == nil {
		return
	}

	filename := d.recordFilename
	if filename == "" || filename == "-" {
		filename = replay.GenerateFilename()
	}

	if err := d.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, d.recorder.FrameCount())
	}
}

// Draw renders the pet surface and the cursor
func (d *Desktop) Draw(screen *ebiten.Image) {
	d.canvas.Draw(screen, d.session.Pointer(), d.session.Cursor())

	if d.session.State() == state.StatePaused {
		ebitenutil.DebugPrintAt(screen, helpText, 10, 10)
	}
}

// OnEnter is called when entering this scene
func (d *Desktop) OnEnter() {
	// Scene is already initialized in New
}

// OnExit saves the recording
func (d *Desktop) OnExit() {
	d.saveRecording()
}

// Session returns the driven session
func (d *Desktop) Session() *session.Session {
	return d.session
}

// Canvas returns the render surface
func (d *Desktop) Canvas() *render.Canvas {
	return d.canvas
}

// Layout returns the scene's screen dimensions
func (d *Desktop) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.screenW, d.screenH
}
