// Package term provides the terminal-facing primitives of the debugger
// prompt: raw-mode setup, decoding of key presses from escape sequences, and
// the control sequences used to redraw the edited line.
package term

import (
	"errors"
	"fmt"
	"os"

	"src.lace.dev/pkg/ui"
)

// Reader reads keys from a terminal.
type Reader interface {
	// ReadKey reads a single key, blocking until one is available.
	ReadKey() (ui.Key, error)
	// Close releases resources associated with the Reader. Any outstanding
	// ReadKey call is aborted, returning ErrStopped.
	Close()
}

// ErrStopped is returned by Reader when Close is called during a ReadKey.
var ErrStopped = errors.New("stopped")

var errTimeout = errors.New("timed out")

// seqError encodes a failure to decode an escape sequence. Such errors are
// recoverable; the read loop just drops the sequence.
type seqError struct {
	msg string
	seq string
}

func (err seqError) Error() string {
	return fmt.Sprintf("%s: %q", err.msg, err.seq)
}

// NewReader creates a new Reader on the given terminal file.
func NewReader(f *os.File) (Reader, error) {
	return newReader(f)
}

// IsReadErrorRecoverable reports whether an error returned by a Reader is
// recoverable, i.e. whether the read loop may keep running after seeing it.
func IsReadErrorRecoverable(err error) bool {
	if _, ok := err.(seqError); ok {
		return true
	}
	return err == errTimeout
}
