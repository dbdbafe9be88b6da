package term

import (
	"os"

	"src.lace.dev/pkg/ui"
)

// TTY is the terminal dependency of the line editor.
type TTY interface {
	// Setup sets up the terminal for reading keys, returning a function that
	// restores the previous state, and any error.
	Setup() (restore func() error, err error)
	// ReadKey reads a single key, blocking until one is available.
	ReadKey() (ui.Key, error)
	// CloseReader aborts any pending ReadKey and releases the reader.
	CloseReader()
	Writer
}

// NewTTY returns a TTY reading keys from in and drawing to out.
func NewTTY(in, out *os.File) TTY {
	return &aTTY{in: in, Writer: NewWriter(out)}
}

type aTTY struct {
	in *os.File
	r  Reader
	Writer
}

func (t *aTTY) Setup() (func() error, error) {
	return Setup(t.in)
}

func (t *aTTY) ReadKey() (ui.Key, error) {
	if t.r == nil {
		r, err := NewReader(t.in)
		if err != nil {
			return ui.Key{}, err
		}
		t.r = r
	}
	return t.r.ReadKey()
}

func (t *aTTY) CloseReader() {
	if t.r != nil {
		t.r.Close()
		t.r = nil
	}
}
