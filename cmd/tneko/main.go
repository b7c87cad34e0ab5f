// Command tneko runs the pet inside a terminal, chasing the mouse.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/neko/cmd/neko/configs"
	"github.com/younwookim/neko/internal/application/session"
	"github.com/younwookim/neko/internal/domain/entity"
	"github.com/younwookim/neko/internal/infrastructure/config"
	"github.com/younwookim/neko/internal/infrastructure/terminal"
	"github.com/younwookim/neko/internal/infrastructure/trace"
)

func main() {
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	traceFlag := flag.String("trace", "", "Write a per-tick CSV trace to file")
	flag.Parse()

	cfg, err := loadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	tw, err := trace.Create(*traceFlag)
	if err != nil {
		log.Fatalf("Failed to open trace: %v", err)
	}

	if err := run(cfg, tw); err != nil {
		_ = tw.Close()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := tw.Close(); err != nil {
		log.Printf("Failed to close trace: %v", err)
	}
}

// loadConfig reads dir, or the embedded configs when dir is empty
func loadConfig(dir string) (*config.NekoConfig, error) {
	return configs.NewLoader(dir).LoadAll()
}

func run(cfg *config.NekoConfig, tw *trace.Writer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	adapter := terminal.NewAdapter(screen)
	adapter.Clear()

	settings := terminal.Settings(cfg.Settings, adapter.Size())
	s := session.New(settings, cfg.Catalog)
	s.OnAnimate = func(tick int, pet *entity.Pet, cmd entity.RenderCommand) {
		if err := tw.Record(trace.RowOf(tick, pet, cmd)); err != nil {
			tw = nil
		}
	}

	spawn := s.Pet().Spawn
	input := terminal.NewEventInput(spawn.X, spawn.Y)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(settings.Display.Framerate))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			if !input.Handle(ev) {
				return nil
			}

		case <-ticker.C:
			in, _ := input.GetInput()
			step := s.Tick(in)
			if !s.State().Active() {
				return nil
			}
			if step.Reset {
				adapter.Clear()
			}
			if step.Animated || step.Reset {
				adapter.Apply(step.Command, s.Pet().Player)
				adapter.Show()
			}
		}
	}
}
