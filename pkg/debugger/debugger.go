package debugger

import (
	"io"
	"os"
	"strings"

	"src.lace.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[debugger] ")

// Options configures a Session.
type Options struct {
	// Command supplies the session's commands up front instead of reading
	// them interactively.
	Command string
}

// Handler interprets a single command. It is the seam towards the rest of
// the toolchain; the reader side never looks inside command text.
type Handler interface {
	// HandleCommand runs one command, returning whether the session should
	// end and any fatal error.
	HandleCommand(cmd string) (stop bool, err error)
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(cmd string) (bool, error)

// HandleCommand calls f(cmd).
func (f HandlerFunc) HandleCommand(cmd string) (bool, error) {
	return f(cmd)
}

// Session drives one debugger REPL: read a logical command, dispatch it,
// repeat.
type Session struct {
	reader  Reader
	handler Handler
}

// NewSession creates a Session reading from the source selected by opts, with
// in and out as the session's terminal when interactive.
func NewSession(opts Options, handler Handler, in, out *os.File) *Session {
	return &Session{reader: NewReader(opts, in, out), handler: handler}
}

// Run loops until the command source is exhausted, the handler ends the
// session, or a fatal terminal error occurs. Blank commands are skipped
// without reaching the handler.
func (s *Session) Run() error {
	for {
		cmd, err := s.reader.ReadCommand()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		cmd = strings.TrimSpace(cmd)
		if cmd == "" {
			continue
		}
		logger.Printf("dispatching %q", cmd)
		stop, err := s.handler.HandleCommand(cmd)
		if stop || err != nil {
			return err
		}
	}
}

// Close releases the resources of the command source, if it holds any.
func (s *Session) Close() {
	if c, ok := s.reader.(interface{ Close() }); ok {
		c.Close()
	}
}
