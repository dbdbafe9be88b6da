package term

import (
	"strings"
	"testing"
)

func TestWriter(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)

	check := func(want string) {
		t.Helper()
		if got := sb.String(); got != want {
			t.Errorf("wrote %q, want %q", got, want)
		}
		sb.Reset()
	}

	w.ClearLine()
	check("\033[2K")
	w.MoveToColumn(0)
	check("\r")
	w.MoveToColumn(12)
	check("\r\033[12C")
	w.WriteString("DEBUGGER> ")
	check("DEBUGGER> ")
}
