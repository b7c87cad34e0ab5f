package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/younwookim/neko/cmd/neko/configs"
	"github.com/younwookim/neko/internal/application/game"
	"github.com/younwookim/neko/internal/application/replay"
	"github.com/younwookim/neko/internal/application/scene/desktop"
	"github.com/younwookim/neko/internal/application/system"
	"github.com/younwookim/neko/internal/infrastructure/config"
	"github.com/younwookim/neko/internal/infrastructure/render"
	"github.com/younwookim/neko/internal/infrastructure/trace"
)

// options are the parsed command line flags
type options struct {
	configDir string
	record    string
	replay    string
	trace     string
	watch     bool
	dump      bool
}

func main() {
	// Parse command line flags
	var opts options
	flag.StringVar(&opts.configDir, "config", "", "Config directory (default: embedded configs)")
	flag.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json, - for a timestamped name)")
	flag.StringVar(&opts.replay, "replay", "", "Run a recording headless and print the final state")
	flag.StringVar(&opts.trace, "trace", "", "Write a per-tick CSV trace to file")
	flag.BoolVar(&opts.watch, "watch", false, "Reload the catalog when it changes (needs -config)")
	flag.BoolVar(&opts.dump, "dump-catalog", false, "Print the active catalog as YAML and exit")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

var errWatchNeedsConfig = errors.New("-watch needs -config")

func run(opts options) error {
	loader := configs.NewLoader(opts.configDir)
	cfg, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if opts.dump {
		out, err := config.MarshalCatalog(cfg.Catalog)
		if err != nil {
			return fmt.Errorf("failed to encode catalog: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	}

	tw, err := trace.Create(opts.trace)
	if err != nil {
		return fmt.Errorf("failed to open trace: %w", err)
	}
	defer func() {
		if err := tw.Close(); err != nil {
			log.Printf("Failed to close trace: %v", err)
		}
	}()

	if opts.replay != "" {
		data, err := replay.LoadReplay(opts.replay)
		if err != nil {
			return fmt.Errorf("failed to load replay: %w", err)
		}
		fmt.Fprintln(os.Stdout, RunReplay(cfg.Settings, cfg.Catalog, *data, tw))
		return nil
	}

	sceneOpts := desktop.Options{RecordPath: opts.record, Trace: tw}
	if opts.watch {
		if opts.configDir == "" {
			return errWatchNeedsConfig
		}
		watcher, err := config.NewWatcher(opts.configDir)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", opts.configDir, err)
		}
		defer func() { _ = watcher.Close() }()
		sceneOpts.Watcher = watcher
		sceneOpts.Loader = loader
	}

	sheet, err := render.LoadSheet(loader.FS(), cfg.Settings.Sprite)
	if err != nil {
		return fmt.Errorf("failed to load sprite sheet: %w", err)
	}

	scene := desktop.New(cfg.Settings, cfg.Catalog, sheet, system.NewEbitenInput(), sceneOpts)
	return game.New(scene, cfg.Settings.Display).Run("neko")
}
