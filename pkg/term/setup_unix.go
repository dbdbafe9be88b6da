//go:build !windows && !plan9

package term

import (
	"fmt"
	"os"

	"src.lace.dev/pkg/sys"
)

// Setup puts the terminal into the mode suitable for the key-driven prompt:
// no echo, no line buffering, reads deliver single bytes without timeout. It
// returns a function that restores the previous mode, which must run on
// every exit path of the read loop, and any error.
func Setup(in *os.File) (func() error, error) {
	// File descriptors pointing to the same terminal are equivalent, so the
	// input file is used for changing termios.
	fd := int(in.Fd())
	term, err := sys.TermiosForFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't get terminal attribute: %w", err)
	}

	savedTermios := term.Copy()

	term.SetICanon(false)
	term.SetEcho(false)
	term.SetVMin(1)
	term.SetVTime(0)

	// Enforcing CR-to-NL translation, so that Enter always arrives as '\n',
	// regardless of the mode the terminal was left in.
	term.SetICRNL(true)

	err = term.ApplyToFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't set up terminal attribute: %w", err)
	}

	return func() error {
		return savedTermios.ApplyToFd(fd)
	}, nil
}
