package render

import (
	"io"

	"termlife/internal/core"
)

// Cells is the read-only view of a board needed to draw it.
type Cells interface {
	Size() core.Size
	Alive(row, col int) bool
}

// Text writes one line per row and one glyph per column, each line newline
// terminated.
func Text(w io.Writer, cells Cells) error {
	size := cells.Size()
	line := make([]byte, size.Cols+1)
	line[size.Cols] = '\n'
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			line[col] = DeadGlyph
			if cells.Alive(row, col) {
				line[col] = AliveGlyph
			}
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// Frame clears the display and writes the board below the home position.
// The caller is responsible for flushing w.
func Frame(w io.Writer, cells Cells) error {
	if _, err := io.WriteString(w, ClearHome); err != nil {
		return err
	}
	return Text(w, cells)
}
