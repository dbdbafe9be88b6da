package debugger

import (
	"io"
	"strings"
	"testing"
)

func collectCommands(t *testing.T, r Reader) []string {
	t.Helper()
	var cmds []string
	for {
		cmd, err := r.ReadCommand()
		if err == io.EOF {
			return cmds
		}
		if err != nil {
			t.Fatalf("ReadCommand -> error %v", err)
		}
		cmds = append(cmds, cmd)
		if len(cmds) > 100 {
			t.Fatalf("reader does not terminate")
		}
	}
}

func TestArgsReader(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"step", []string{"step"}},
		{"step;continue", []string{"step", "continue"}},
		{"step;continue\nnext", []string{"step", "continue", "next"}},
		{"step;", []string{"step"}},
		{"a;;b", []string{"a", "", "b"}},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			got := collectCommands(t, newArgsReader(test.text))
			if !equal(got, test.want) {
				t.Errorf("commands %q, want %q", got, test.want)
			}
		})
	}
}

func TestBufferedReader(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"step\n", []string{"step"}},
		{"step;continue\nnext\n", []string{"step", "continue", "next"}},
		{"a;\n", []string{"a", ""}},
		{"last line without newline", []string{"last line without newline"}},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			got := collectCommands(t, newBufferedReader(strings.NewReader(test.text)))
			if !equal(got, test.want) {
				t.Errorf("commands %q, want %q", got, test.want)
			}
		})
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
