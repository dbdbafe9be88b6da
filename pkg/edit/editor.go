// Package edit implements the interactive command prompt of the debugger: a
// single-line editor with vim-like word motion and persistent history.
package edit

import (
	"strings"
	"unicode/utf8"

	"src.lace.dev/pkg/diag"
	"src.lace.dev/pkg/edit/histutil"
	"src.lace.dev/pkg/logutil"
	"src.lace.dev/pkg/strutil"
	"src.lace.dev/pkg/term"
	"src.lace.dev/pkg/ui"
)

var logger = logutil.GetLogger("[edit] ")

// SGR sequences for the prompt. The prompt is bold cyan unless minimal
// output is requested.
const (
	promptSGR = "\033[1;36m"
	resetSGR  = "\033[m"
)

// Editor is a line editor that reads debugger commands from a terminal. It
// is not safe for concurrent use.
type Editor struct {
	tty     term.TTY
	prompt  string
	minimal func() bool

	store *histutil.Store
	hist  histutil.Cursor

	// Line being edited, in bytes.
	buffer string
	// Cursor position in the line on display, in codepoints. The line on
	// display is a history entry when hist is at one, the buffer otherwise.
	renderCursor int

	// Most recently submitted line and the consumption position within it,
	// in bytes, used for splitting the line into commands.
	line        string
	splitCursor int
}

// NewEditor creates an Editor on the given TTY. The prompt is written before
// the edited line on every redraw; minimal is consulted on every redraw to
// decide whether to color it, and may be nil.
func NewEditor(tty term.TTY, prompt string, minimal func() bool) *Editor {
	return newEditor(tty, prompt, minimal, histutil.NewStore())
}

func newEditor(tty term.TTY, prompt string, minimal func() bool, store *histutil.Store) *Editor {
	if minimal == nil {
		minimal = func() bool { return false }
	}
	return &Editor{
		tty: tty, prompt: prompt, minimal: minimal,
		store: store, hist: store.Cursor(),
	}
}

// Close releases the editor's terminal reader and its backing history file.
// The terminal itself is left open.
func (ed *Editor) Close() {
	ed.tty.CloseReader()
	ed.store.Close()
}

// ReadCommand returns the next logical command: the next `;`-delimited piece
// of the current line, reading a new line from the terminal only when the
// previous one has been fully consumed. Pieces may be empty; the caller is
// expected to skip them. Errors are terminal I/O failures and are fatal.
func (ed *Editor) ReadCommand() (string, error) {
	if ed.splitCursor == 0 {
		line, err := ed.readLine()
		if err != nil {
			return "", err
		}
		ed.line = line
	}
	rest := ed.line[ed.splitCursor:]
	if i := strings.IndexByte(rest, ';'); i >= 0 {
		ed.splitCursor += i + 1
		return rest[:i], nil
	}
	ed.splitCursor = 0
	return rest, nil
}

// readLine reads one complete line, driving the key state machine until
// Enter submits a non-blank line. The terminal is in raw-ish mode for the
// duration of the call and restored on every exit path.
func (ed *Editor) readLine() (line string, err error) {
	restore, err := ed.tty.Setup()
	if err != nil {
		return "", err
	}
	defer func() {
		if restoreErr := restore(); restoreErr != nil {
			diag.Complainf("Failed to restore terminal attributes: %v", restoreErr)
		}
		// Move off the prompt line.
		ed.tty.WriteString("\n")
	}()

	for {
		if err := ed.redraw(); err != nil {
			return "", err
		}
		k, err := ed.tty.ReadKey()
		if err != nil {
			if term.IsReadErrorRecoverable(err) {
				logger.Printf("dropped recoverable read error: %v", err)
				continue
			}
			return "", err
		}
		if ed.handleKey(k) {
			break
		}
	}

	line = ed.buffer
	ed.buffer = ""
	ed.renderCursor = 0
	ed.store.AddCmd(line)
	ed.hist.Reset()
	logger.Printf("submitted %q", line)
	return line, nil
}

// redraw repaints the prompt line from scratch: clear the line, write the
// prompt and the line on display, and park the cursor.
func (ed *Editor) redraw() error {
	if err := ed.tty.ClearLine(); err != nil {
		return err
	}
	if err := ed.tty.MoveToColumn(0); err != nil {
		return err
	}
	prompt := ed.prompt
	if !ed.minimal() {
		prompt = promptSGR + ed.prompt + resetSGR
	}
	if err := ed.tty.WriteString(prompt); err != nil {
		return err
	}
	if err := ed.tty.WriteString(ed.displayedLine()); err != nil {
		return err
	}
	return ed.tty.MoveToColumn(
		utf8.RuneCountInString(ed.prompt) + ed.renderCursor)
}

// handleKey advances the state machine by one key and reports whether a line
// was submitted. Keys it does not know are ignored.
func (ed *Editor) handleKey(k ui.Key) bool {
	switch k {
	case ui.K(ui.Enter):
		if _, err := ed.hist.Get(); err != nil &&
			strings.TrimSpace(ed.buffer) == "" {
			// Nothing to submit; clear the line and keep reading.
			ed.buffer = ""
			ed.renderCursor = 0
			return false
		}
		ed.forkIfViewing()
		return true
	case ui.K(ui.Backspace):
		ed.forkIfViewing()
		if ed.renderCursor > 0 &&
			ed.renderCursor <= utf8.RuneCountInString(ed.buffer) {
			ed.buffer, _ = strutil.RemoveRune(ed.buffer, ed.renderCursor-1)
			ed.renderCursor--
		}
	case ui.K(ui.Delete):
		ed.forkIfViewing()
		if ed.renderCursor < utf8.RuneCountInString(ed.buffer) {
			ed.buffer, _ = strutil.RemoveRune(ed.buffer, ed.renderCursor)
		}
	case ui.K(ui.Left):
		if ed.renderCursor > 0 {
			ed.renderCursor--
		}
	case ui.K(ui.Right):
		if ed.renderCursor < utf8.RuneCountInString(ed.displayedLine()) {
			ed.renderCursor++
		}
	case ui.K(ui.Left, ui.Ctrl):
		ed.renderCursor = PrevWordStart(ed.displayedLine(), ed.renderCursor, Word)
	case ui.K(ui.Right, ui.Ctrl):
		ed.renderCursor = NextWordStart(ed.displayedLine(), ed.renderCursor, Word)
	case ui.K(ui.Up):
		if ed.hist.Prev() {
			ed.renderCursor = utf8.RuneCountInString(ed.displayedLine())
		}
	case ui.K(ui.Down):
		if ed.hist.Next() {
			ed.renderCursor = utf8.RuneCountInString(ed.displayedLine())
		}
	default:
		if k.Mod != 0 || k.Rune < ' ' || k.Rune == 0x7f {
			// Not a graphical key; ignored.
			return false
		}
		ed.forkIfViewing()
		ed.buffer = strutil.InsertRune(ed.buffer, ed.renderCursor, k.Rune)
		ed.renderCursor++
	}
	return false
}

// displayedLine returns the line on display: the history entry under the
// cursor when viewing one, the edit buffer otherwise.
func (ed *Editor) displayedLine() string {
	if cmd, err := ed.hist.Get(); err == nil {
		return cmd
	}
	return ed.buffer
}

// forkIfViewing copies the history entry on display into the edit buffer
// before a mutation, so that editing never changes history itself.
func (ed *Editor) forkIfViewing() {
	if cmd, err := ed.hist.Get(); err == nil {
		ed.buffer = cmd
		ed.hist.Reset()
	}
}
