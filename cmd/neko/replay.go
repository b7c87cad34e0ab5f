package main

import (
	"fmt"
	"log"

	"github.com/younwookim/neko/internal/application/replay"
	"github.com/younwookim/neko/internal/application/session"
	"github.com/younwookim/neko/internal/domain/anim"
	"github.com/younwookim/neko/internal/domain/entity"
	"github.com/younwookim/neko/internal/infrastructure/config"
	"github.com/younwookim/neko/internal/infrastructure/trace"
)

// ReplayResult is the pet state after a headless replay
type ReplayResult struct {
	HostTicks int
	Ticks     int
	Kind      anim.Kind
	Frame     int
	Position  entity.Point
	Paused    bool
	Quit      bool
}

func (r ReplayResult) String() string {
	return fmt.Sprintf("host=%d ticks=%d kind=%s frame=%d pos=(%d,%d) paused=%t quit=%t",
		r.HostTicks, r.Ticks, r.Kind, r.Frame, r.Position.X, r.Position.Y, r.Paused, r.Quit)
}

// RunReplay plays data through a fresh session without opening a window.
// The recorded screen overrides the configured one.
func RunReplay(settings *config.SettingsConfig, catalog *anim.Catalog, data replay.ReplayData, tw *trace.Writer) ReplayResult {
	cfg := *settings
	if data.Screen.Width > 0 && data.Screen.Height > 0 {
		cfg.Display.ScreenWidth = data.Screen.Width
		cfg.Display.ScreenHeight = data.Screen.Height
	}
	if data.Catalog != "" && data.Catalog != settings.Catalog {
		log.Printf("Replay was recorded with catalog %q, running with %q", data.Catalog, settings.Catalog)
	}

	s := session.New(&cfg, catalog)
	s.OnAnimate = func(tick int, pet *entity.Pet, cmd entity.RenderCommand) {
		if err := tw.Record(trace.RowOf(tick, pet, cmd)); err != nil {
			log.Printf("Failed to write trace: %v", err)
			tw = nil
		}
	}

	n := s.Run(replay.NewReplayer(data))
	pet := s.Pet()
	return ReplayResult{
		HostTicks: n,
		Ticks:     s.Ticks(),
		Kind:      pet.Player.Current(),
		Frame:     pet.Player.FrameIndex(),
		Position:  pet.Position,
		Paused:    pet.Paused,
		Quit:      !s.State().Active(),
	}
}
