package trace

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/neko/internal/domain/anim"
	"github.com/younwookim/neko/internal/domain/entity"
)

func TestWriter_HeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Record(Row{Tick: 1, Kind: "Idle", X: 10, Y: 20}))
	require.NoError(t, w.Record(Row{Tick: 2, Kind: "Startled", Col: 7, X: 10, Y: 20}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "tick,kind,frame,col,row,x,y,paused", lines[0])
	assert.Equal(t, "1,Idle,0,0,0,10,20,false", lines[1])
	assert.Equal(t, "2,Startled,0,7,0,10,20,false", lines[2])
	assert.Equal(t, 2, w.Rows())
}

func TestWriter_NilIsNoop(t *testing.T) {
	var w *Writer

	assert.NoError(t, w.Record(Row{Tick: 1}))
	assert.Equal(t, 0, w.Rows())
	assert.NoError(t, w.Close())
}

func TestCreate_EmptyPathDisables(t *testing.T) {
	w, err := Create("")
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestCreate_RoundTripThroughFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "trace.csv")

	w, err := Create(path)
	require.NoError(t, err)
	for i := 1; i <= 5; i++ {
		require.NoError(t, w.Record(Row{Tick: i, Kind: "RunRight", Frame: i % 2, X: 100 + 5*i, Y: 100}))
	}
	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "second close is a no-op")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := ReadAll(f)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, 125, rows[4].X)
	assert.Equal(t, 1, rows[4].Frame)
}

func TestRowOf(t *testing.T) {
	pet := entity.NewPet(anim.DefaultCatalog(), entity.Point{X: 40, Y: 50}, entity.Size{W: 32, H: 32})
	pet.Pause()
	cmd := pet.Command(pet.Player.Tick())

	row := RowOf(3, pet, cmd)
	assert.Equal(t, Row{Tick: 3, Kind: "Idle", X: 40, Y: 50, Paused: true}, row)
}
