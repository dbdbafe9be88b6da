package debugger

import (
	"fmt"
	"io"
	"os"

	"src.lace.dev/pkg/diag"
	"src.lace.dev/pkg/prog"
)

// Program is the debugger front end as a subprogram of the lace binary.
type Program struct {
	// Handler overrides the built-in command table. The assembler and VM side
	// of the toolchain installs its dispatcher here; when nil, only the
	// session-control commands work.
	Handler Handler
}

func (p *Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("debugger takes no arguments")
	}
	diag.SetMinimal(f.Minimal)

	handler := p.Handler
	if handler == nil {
		handler = builtinHandler(fds[1], fds[2])
	}
	s := NewSession(Options{Command: f.Command}, handler, fds[0], fds[2])
	defer s.Close()
	return s.Run()
}

// builtinHandler implements the commands that work without a machine
// attached.
func builtinHandler(out, errOut io.Writer) Handler {
	return HandlerFunc(func(cmd string) (bool, error) {
		switch cmd {
		case "quit", "exit":
			return true, nil
		case "help":
			fmt.Fprint(out, helpText)
			return false, nil
		default:
			fmt.Fprintf(errOut, "unknown command %q; try help\n", cmd)
			return false, nil
		}
	})
}

const helpText = `Session commands:
  help          show this message
  quit, exit    end the session
Multiple commands on one line can be separated with ';'. Any other command is
forwarded to the attached machine, if any.
`
