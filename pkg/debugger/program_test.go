package debugger_test

import (
	"testing"

	"src.lace.dev/pkg/debugger"
	"src.lace.dev/pkg/prog/progtest"
)

var (
	Test     = progtest.Test
	ThatLace = progtest.ThatLace
)

func TestProgram_BuiltinCommands(t *testing.T) {
	Test(t, &debugger.Program{},
		ThatLace("-minimal", "-command", "help;quit").
			WritesStdoutContaining("Session commands:"),
		ThatLace("-minimal", "-command", "frobnicate").ExitsWith(0).
			WritesStderrContaining(`unknown command "frobnicate"`),
		ThatLace("-minimal", "-command", "exit"),
		ThatLace("-minimal", "prog.asm").ExitsWith(2).
			WritesStderrContaining("debugger takes no arguments"),
	)
}

func TestProgram_ReadsCommandsFromRedirectedStdin(t *testing.T) {
	Test(t, &debugger.Program{},
		ThatLace("-minimal").WithStdin("help;quit\n").
			WritesStdoutContaining("Session commands:"))
}
