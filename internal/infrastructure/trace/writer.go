// Package trace writes a per-tick CSV log of the pet for offline analysis.
package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/younwookim/neko/internal/domain/entity"
)

// Row is one animation tick
type Row struct {
	Tick   int    `csv:"tick"`
	Kind   string `csv:"kind"`
	Frame  int    `csv:"frame"`
	Col    uint8  `csv:"col"`
	Row    uint8  `csv:"row"`
	X      int    `csv:"x"`
	Y      int    `csv:"y"`
	Paused bool   `csv:"paused"`
}

// RowOf captures the pet state after tick.
func RowOf(tick int, pet *entity.Pet, cmd entity.RenderCommand) Row {
	return Row{
		Tick:   tick,
		Kind:   pet.Player.Current().String(),
		Frame:  pet.Player.FrameIndex(),
		Col:    cmd.Cell.Col,
		Row:    cmd.Cell.Row,
		X:      cmd.DrawAt.X,
		Y:      cmd.DrawAt.Y,
		Paused: pet.Paused,
	}
}

// Writer appends rows to a CSV stream. A nil *Writer discards everything,
// so callers never need to check whether tracing is enabled.
type Writer struct {
	out           io.Writer
	closer        io.Closer
	headerWritten bool
	rows          int
}

// NewWriter wraps out. The caller keeps ownership of out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Create opens path for writing. Returns nil if path is empty (tracing disabled).
func Create(path string) (*Writer, error) {
	if path == "" {
		return nil, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating trace directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace file: %w", err)
	}
	return &Writer{out: f, closer: f}, nil
}

// Record writes one row
func (w *Writer) Record(row Row) error {
	if w == nil {
		return nil
	}

	records := []Row{row}

	if !w.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, w.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		w.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, w.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}

	w.rows++
	return nil
}

// Rows returns the number of rows written
func (w *Writer) Rows() int {
	if w == nil {
		return 0
	}
	return w.rows
}

// Close closes the underlying file if the writer opened it.
func (w *Writer) Close() error {
	if w == nil || w.closer == nil {
		return nil
	}
	err := w.closer.Close()
	w.closer = nil
	return err
}

// ReadAll parses a trace produced by Writer.
func ReadAll(in io.Reader) ([]Row, error) {
	var rows []Row
	if err := gocsv.Unmarshal(in, &rows); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return rows, nil
}
