// Package progtest provides utilities for testing subprograms.
//
// The entry point is Test, which runs a Program against cases describing the
// command line and the expected exit status and outputs.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"src.lace.dev/pkg/must"
	"src.lace.dev/pkg/prog"
)

// Case describes one invocation of a program.
type Case struct {
	args       []string
	stdin      string
	wantExit   int
	wantStdout output
	wantStderr output
}

type output struct {
	text    string
	partial bool
}

// ThatLace returns a Case with the given command-line arguments.
func ThatLace(args ...string) Case {
	return Case{args: args}
}

// WithStdin returns an almost identical Case, with the given input available
// on standard input.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// ExitsWith returns an almost identical Case that requires the program to
// exit with the given status.
func (c Case) ExitsWith(code int) Case {
	c.wantExit = code
	return c
}

// WritesStdout returns an almost identical Case that requires the program to
// write exactly the given text to standard output.
func (c Case) WritesStdout(s string) Case {
	c.wantStdout = output{text: s}
	return c
}

// WritesStdoutContaining returns an almost identical Case that requires the
// program's standard output to contain the given text.
func (c Case) WritesStdoutContaining(s string) Case {
	c.wantStdout = output{text: s, partial: true}
	return c
}

// WritesStderrContaining returns an almost identical Case that requires the
// program's standard error to contain the given text.
func (c Case) WritesStderrContaining(s string) Case {
	c.wantStderr = output{text: s, partial: true}
	return c
}

// Test runs the program against all the cases.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := run(p, c.args, c.stdin)
			if exit != c.wantExit {
				t.Errorf("got exit code %d, want %d", exit, c.wantExit)
			}
			checkOutput(t, "stdout", stdout, c.wantStdout)
			checkOutput(t, "stderr", stderr, c.wantStderr)
		})
	}
}

func checkOutput(t *testing.T, name, got string, want output) {
	t.Helper()
	if want.partial {
		if !strings.Contains(got, want.text) {
			t.Errorf("got %s %q, want it to contain %q", name, got, want.text)
		}
	} else if got != want.text {
		t.Errorf("got %s %q, want %q", name, got, want.text)
	}
}

func run(p prog.Program, args []string, stdin string) (int, string, string) {
	r0, w0 := must.Pipe()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()

	must.OK1(w0.WriteString(stdin))
	w0.Close()

	stdoutDone := capture(r1)
	stderrDone := capture(r2)

	exit := prog.Run([3]*os.File{r0, w1, w2}, append([]string{"lace"}, args...), p)

	r0.Close()
	w1.Close()
	w2.Close()
	stdout := <-stdoutDone
	stderr := <-stderrDone
	r1.Close()
	r2.Close()
	return exit, stdout, stderr
}

func capture(r io.Reader) <-chan string {
	ch := make(chan string, 1)
	go func() {
		var sb strings.Builder
		io.Copy(&sb, r)
		ch <- sb.String()
	}()
	return ch
}
