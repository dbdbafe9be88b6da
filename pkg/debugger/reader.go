// Package debugger connects the interactive command reader to the rest of
// the toolchain: it picks a command source for the session, reads logical
// commands one at a time and hands them to a command handler.
package debugger

import (
	"bufio"
	"io"
	"os"
	"strings"

	"src.lace.dev/pkg/diag"
	"src.lace.dev/pkg/edit"
	"src.lace.dev/pkg/sys"
	"src.lace.dev/pkg/term"
)

// Prompt is the prompt of the interactive debugger.
const Prompt = "DEBUGGER> "

// Reader yields logical debugger commands, one at a time. Exhaustible
// sources return io.EOF; the interactive terminal source never does.
type Reader interface {
	ReadCommand() (string, error)
}

// NewReader returns the command source for a session: the -command argument
// when one was given, the interactive line editor when in is a terminal, and
// a plain line reader otherwise (piped or redirected input).
func NewReader(opts Options, in, out *os.File) Reader {
	if opts.Command != "" {
		return newArgsReader(opts.Command)
	}
	if sys.IsATTY(in.Fd()) {
		return edit.NewEditor(term.NewTTY(in, out), Prompt, diag.Minimal)
	}
	return newBufferedReader(in)
}

// argsReader reads commands from the string given to -command, splitting on
// newlines as well as semicolons.
type argsReader struct {
	text string
	pos  int
}

func newArgsReader(text string) *argsReader {
	return &argsReader{text: text}
}

func (r *argsReader) ReadCommand() (string, error) {
	if r.pos >= len(r.text) {
		return "", io.EOF
	}
	rest := r.text[r.pos:]
	if i := strings.IndexAny(rest, ";\n"); i >= 0 {
		r.pos += i + 1
		return rest[:i], nil
	}
	r.pos = len(r.text)
	return rest, nil
}

// bufferedReader reads commands line by line from a non-terminal input,
// splitting each line on semicolons like the interactive reader does.
type bufferedReader struct {
	scanner *bufio.Scanner
	line    string
	pos     int
}

func newBufferedReader(r io.Reader) *bufferedReader {
	return &bufferedReader{scanner: bufio.NewScanner(r)}
}

func (r *bufferedReader) ReadCommand() (string, error) {
	if r.pos == 0 {
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		r.line = r.scanner.Text()
	}
	rest := r.line[r.pos:]
	if i := strings.IndexByte(rest, ';'); i >= 0 {
		r.pos += i + 1
		return rest[:i], nil
	}
	r.pos = 0
	return rest, nil
}
