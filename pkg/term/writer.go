package term

import (
	"fmt"
	"io"
)

// Writer provides the terminal output primitives used to redraw the prompt
// line. All errors are surfaced; failing to draw means the prompt is no
// longer usable.
type Writer interface {
	// ClearLine erases the line the cursor is on.
	ClearLine() error
	// MoveToColumn moves the cursor to the given zero-based column of the
	// current line.
	MoveToColumn(col int) error
	// WriteString writes s at the cursor.
	WriteString(s string) error
}

// NewWriter returns a Writer that writes VT100 sequences to w.
func NewWriter(w io.Writer) Writer {
	return &writer{w}
}

type writer struct {
	file io.Writer
}

func (w *writer) ClearLine() error {
	_, err := io.WriteString(w.file, "\033[2K")
	return err
}

func (w *writer) MoveToColumn(col int) error {
	// An absolute "\r" followed by a relative move is compatible with more
	// terminals than CHA.
	if col <= 0 {
		_, err := io.WriteString(w.file, "\r")
		return err
	}
	_, err := fmt.Fprintf(w.file, "\r\033[%dC", col)
	return err
}

func (w *writer) WriteString(s string) error {
	_, err := io.WriteString(w.file, s)
	return err
}
