// Package diag reports non-fatal problems to the user.
package diag

import (
	"fmt"
	"io"
	"os"
)

// Can be overridden in tests.
var stderr io.Writer = os.Stderr

var minimal = false

// SetMinimal sets minimal-output mode. In this mode all diagnostics and the
// debugger prompt are printed without color, suited for blackbox tests and
// dumb terminals.
func SetMinimal(b bool) { minimal = b }

// Minimal returns whether minimal-output mode is on.
func Minimal() bool { return minimal }

// Complain prints a warning message to stderr, in bold red unless in
// minimal-output mode.
func Complain(msg string) {
	if minimal {
		fmt.Fprintln(stderr, msg)
	} else {
		fmt.Fprintf(stderr, "\033[31;1m%s\033[m\n", msg)
	}
}

// Complainf is like Complain, but accepts a format string and arguments.
func Complainf(format string, args ...any) {
	Complain(fmt.Sprintf(format, args...))
}
