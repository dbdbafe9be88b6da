//go:build !windows && !plan9

package debugger

import (
	"testing"

	"github.com/creack/pty"
	"github.com/google/go-cmp/cmp"

	"src.lace.dev/pkg/edit"
	"src.lace.dev/pkg/must"
	"src.lace.dev/pkg/testutil"
)

// Exercises the whole interactive path on a real pty: source selection by
// isatty, raw-mode setup, key decoding and line splitting.
func TestSession_InteractiveOverPty(t *testing.T) {
	// Keep the history file of the test session away from the user's.
	dir := testutil.TempDir(t)
	testutil.Setenv(t, "XDG_CACHE_HOME", dir)
	testutil.Setenv(t, "HOME", dir)

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("cannot open pty: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	// Queue all input up front. The line discipline translates the carriage
	// returns either way, so this is safe to do before the session switches
	// the terminal mode.
	must.OK1(ptmx.WriteString("step;continue\rquit\r"))

	var got []string
	s := NewSession(Options{}, HandlerFunc(func(cmd string) (bool, error) {
		got = append(got, cmd)
		return cmd == "quit", nil
	}), tty, tty)
	defer s.Close()

	if _, ok := s.reader.(*edit.Editor); !ok {
		t.Fatalf("session did not select the interactive editor for a pty")
	}
	if err := s.Run(); err != nil {
		t.Errorf("Run -> error %v", err)
	}
	want := []string{"step", "continue", "quit"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}
