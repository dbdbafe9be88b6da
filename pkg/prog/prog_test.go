package prog_test

import (
	"errors"
	"os"
	"testing"

	"src.lace.dev/pkg/buildinfo"
	"src.lace.dev/pkg/prog"
	"src.lace.dev/pkg/prog/progtest"
)

var (
	Test     = progtest.Test
	ThatLace = progtest.ThatLace
)

// testProgram exposes what Run passed to it.
type testProgram struct {
	run func(fds [3]*os.File, f *prog.Flags, args []string) error
}

func (p testProgram) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if p.run == nil {
		return nil
	}
	return p.run(fds, f, args)
}

func TestRun_Flags(t *testing.T) {
	Test(t, testProgram{},
		ThatLace("-bad-flag").ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -bad-flag"),
		ThatLace("-h").ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -h"),
		ThatLace("-help").WritesStdoutContaining("Usage: lace"),
		ThatLace("-version").WritesStdout(buildinfo.Version+"\n"),
	)
}

func TestRun_PassesFlagsAndArgsToProgram(t *testing.T) {
	p := testProgram{run: func(fds [3]*os.File, f *prog.Flags, args []string) error {
		if !f.Minimal {
			t.Errorf("Minimal flag not set")
		}
		if f.Command != "step" {
			t.Errorf("Command flag %q, want %q", f.Command, "step")
		}
		if len(args) != 1 || args[0] != "prog.asm" {
			t.Errorf("args %q, want [prog.asm]", args)
		}
		return nil
	}}
	Test(t, p, ThatLace("-minimal", "-command", "step", "prog.asm"))
}

func TestRun_ProgramError(t *testing.T) {
	p := testProgram{run: func([3]*os.File, *prog.Flags, []string) error {
		return errors.New("the machine is on fire")
	}}
	Test(t, p,
		ThatLace().ExitsWith(2).
			WritesStderrContaining("the machine is on fire"))
}

func TestRun_BadUsage(t *testing.T) {
	p := testProgram{run: func([3]*os.File, *prog.Flags, []string) error {
		return prog.BadUsage("lace takes no arguments")
	}}
	Test(t, p,
		ThatLace("x").ExitsWith(2).
			WritesStderrContaining("Usage: lace"))
}
