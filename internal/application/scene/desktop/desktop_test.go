package desktop

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/neko/internal/application/replay"
	"github.com/younwookim/neko/internal/application/scene"
	"github.com/younwookim/neko/internal/application/state"
	"github.com/younwookim/neko/internal/application/system"
	"github.com/younwookim/neko/internal/domain/anim"
	"github.com/younwookim/neko/internal/domain/entity"
	"github.com/younwookim/neko/internal/infrastructure/config"
	"github.com/younwookim/neko/internal/infrastructure/render"
	"github.com/younwookim/neko/internal/infrastructure/trace"
)

var _ scene.Scene = (*Desktop)(nil)

// parkedInput never runs out and keeps the pointer in one place
type parkedInput struct {
	x, y int
}

func (p parkedInput) GetInput() (system.InputState, bool) {
	return system.InputState{MouseX: p.x, MouseY: p.y}, true
}

func createTestDesktop(t *testing.T, input system.InputSource, opts Options) *Desktop {
	t.Helper()
	cfg := config.DefaultSettings()
	cfg.Pet.SpawnX = 400
	cfg.Pet.SpawnY = 300

	sheet, err := render.LoadSheet(fstest.MapFS{}, cfg.Sprite)
	require.NoError(t, err)
	return New(cfg, anim.DefaultCatalog(), sheet, input, opts)
}

func TestDesktop_UpdateDrivesPet(t *testing.T) {
	d := createTestDesktop(t, parkedInput{x: 700, y: 300}, Options{})

	for i := 0; i < 40; i++ {
		next, err := d.Update(1.0 / 60.0)
		require.NoError(t, err)
		require.Nil(t, next)
	}

	assert.Equal(t, 20, d.Session().Ticks())
	assert.Greater(t, d.Session().Pet().Position.X, 400)
	// the initial draw plus one per animation tick
	assert.Equal(t, 21, d.Canvas().Applied())
}

func TestDesktop_ReplayEndQuits(t *testing.T) {
	data := replay.CreateTestReplayData(3, 400, 300)
	d := createTestDesktop(t, replay.NewReplayer(data), Options{})

	for i := 0; i < 3; i++ {
		_, err := d.Update(0)
		require.NoError(t, err)
	}
	_, err := d.Update(0)
	assert.ErrorIs(t, err, scene.ErrQuit)
}

func TestDesktop_QuitKey(t *testing.T) {
	data := replay.CreateTestReplayData(10, 400, 300)
	data.Frames[1].Q = true
	d := createTestDesktop(t, replay.NewReplayer(data), Options{})

	_, err := d.Update(0)
	require.NoError(t, err)
	_, err = d.Update(0)
	assert.ErrorIs(t, err, scene.ErrQuit)
	assert.Equal(t, state.StateQuitting, d.Session().State())
}

func TestDesktop_PauseAndReset(t *testing.T) {
	data := replay.CreateTestReplayData(60, 700, 300)
	data.Frames[40].P = true
	data.Frames[50].R = true
	d := createTestDesktop(t, replay.NewReplayer(data), Options{})

	for i := 0; i <= 40; i++ {
		_, err := d.Update(0)
		require.NoError(t, err)
	}
	assert.Equal(t, state.StatePaused, d.Session().State())
	moved := d.Session().Pet().Position

	for i := 41; i < 50; i++ {
		_, err := d.Update(0)
		require.NoError(t, err)
	}
	assert.Equal(t, moved, d.Session().Pet().Position, "paused pet stays put")

	_, err := d.Update(0)
	require.NoError(t, err)
	assert.Equal(t, entity.Point{X: 400, Y: 300}, d.Session().Pet().Position)
	assert.Equal(t, state.StatePaused, d.Session().State(), "reset keeps pause")
}

func TestDesktop_RecordsAndSavesOnExit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.json")
	d := createTestDesktop(t, parkedInput{x: 500, y: 500}, Options{RecordPath: path})

	for i := 0; i < 12; i++ {
		_, err := d.Update(0)
		require.NoError(t, err)
	}
	d.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 12)
	assert.Equal(t, replay.ScreenInfo{Width: 800, Height: 600}, data.Screen)
	assert.Equal(t, 500, data.Frames[11].MX)
}

func TestDesktop_ReplayReproducesRecording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.json")
	live := replay.CreateTestReplayData(200, 0, 0)
	for i := range live.Frames {
		live.Frames[i].MX = 100 + i*3
		live.Frames[i].MY = 500 - i*2
	}

	d1 := createTestDesktop(t, replay.NewReplayer(live), Options{RecordPath: path})
	for i := 0; i < 200; i++ {
		_, err := d1.Update(0)
		require.NoError(t, err)
	}
	d1.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	d2 := createTestDesktop(t, replay.NewReplayer(*data), Options{})
	for i := 0; i < 200; i++ {
		_, err := d2.Update(0)
		require.NoError(t, err)
	}

	assert.Equal(t, d1.Session().Pet().Position, d2.Session().Pet().Position)
	assert.Equal(t, d1.Session().Pet().Player.Current(), d2.Session().Pet().Player.Current())
	assert.Equal(t, d1.Session().Last(), d2.Session().Last())
}

func TestDesktop_Trace(t *testing.T) {
	var buf bytes.Buffer
	d := createTestDesktop(t, parkedInput{x: 400, y: 300}, Options{Trace: trace.NewWriter(&buf)})

	for i := 0; i < 10; i++ {
		_, err := d.Update(0)
		require.NoError(t, err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 6, "header plus five animation ticks")
	assert.True(t, strings.HasPrefix(lines[1], "1,Idle,"))
}

func TestDesktop_HotReloadsCatalog(t *testing.T) {
	dir := t.TempDir()
	writeCatalog := func(c *anim.Catalog) {
		data, err := config.MarshalCatalog(c)
		require.NoError(t, err)
		tmp := filepath.Join(dir, "catalog.tmp")
		require.NoError(t, os.WriteFile(tmp, data, 0o644))
		require.NoError(t, os.Rename(tmp, filepath.Join(dir, "catalog.yaml")))
	}
	writeCatalog(anim.DefaultCatalog())

	watcher, err := config.NewWatcher(dir)
	require.NoError(t, err)
	defer watcher.Close()

	cfg := config.DefaultSettings()
	cfg.Catalog = "catalog.yaml"
	sheet, err := render.LoadSheet(fstest.MapFS{}, cfg.Sprite)
	require.NoError(t, err)
	d := New(cfg, anim.DefaultCatalog(), sheet, parkedInput{x: 400, y: 300}, Options{
		Watcher: watcher,
		Loader:  config.NewLoader(dir),
	})

	seqs := anim.DefaultSequences()
	seqs[anim.Idle] = anim.Sequence{Interruptible: true, Frames: []anim.Frame{anim.F(3, 3, 1)}}
	writeCatalog(anim.MustCatalog(seqs))

	assert.Eventually(t, func() bool {
		if _, err := d.Update(0); err != nil {
			return false
		}
		return d.Session().Pet().Player.Catalog().Lookup(anim.Idle).Len() == 1
	}, 3*time.Second, 20*time.Millisecond)
}

func TestDesktop_Draw(t *testing.T) {
	data := replay.CreateTestReplayData(2, 400, 300)
	data.Frames[0].P = true
	d := createTestDesktop(t, replay.NewReplayer(data), Options{})
	_, err := d.Update(0)
	require.NoError(t, err)

	screen := ebiten.NewImage(800, 600)
	assert.NotPanics(t, func() { d.Draw(screen) })

	w, h := d.Layout(1600, 1200)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}
