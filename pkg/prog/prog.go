// Package prog provides the entry point to the lace binary. Its principal
// function is Run, which dispatches to a Program after parsing flags.
package prog

import (
	"flag"
	"fmt"
	"io"
	"os"

	"src.lace.dev/pkg/buildinfo"
	"src.lace.dev/pkg/logutil"
)

// Flags keeps command-line flags.
type Flags struct {
	Log string

	Help, Version bool

	// Minimal requests plain, uncolored output, suited for blackbox tests
	// and dumb terminals.
	Minimal bool
	// Command supplies debugger commands up front instead of reading them
	// from the terminal.
	Command string
}

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("lace", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")
	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")
	fs.BoolVar(&f.Version, "version", false, "show version and quit")
	fs.BoolVar(&f.Minimal, "minimal", false, "produce minimal output")
	fs.StringVar(&f.Command, "command", "",
		"debugger commands to run, separated by ';' or newlines")
	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: lace [flags]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Program represents a program.
type Program interface {
	// Run runs the program against the three standard files, parsed flags and
	// remaining arguments.
	Run(fds [3]*os.File, f *Flags, args []string) error
}

// Run parses command-line flags and runs the Program. It returns the exit
// status of the process.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	fs := newFlagSet(f)
	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but not defined. Only -help is defined here, so this
			// means that -h was requested.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if f.Log != "" {
		if err = logutil.SetOutputFile(f.Log); err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	if f.Help {
		usage(fds[1], fs)
		return 0
	}
	if f.Version {
		fmt.Fprintln(fds[1], buildinfo.Version)
		return 0
	}

	err = p.Run(fds, f, fs.Args())
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	if _, ok := err.(badUsageError); ok {
		usage(fds[2], fs)
	}
	return 2
}

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error {
	return badUsageError{msg}
}

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }
