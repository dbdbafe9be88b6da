package debugger

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSession_DispatchesTrimmedNonBlankCommands(t *testing.T) {
	var got []string
	s := NewSession(Options{Command: " step ;;continue\nquit"},
		HandlerFunc(func(cmd string) (bool, error) {
			got = append(got, cmd)
			return cmd == "quit", nil
		}), nil, nil)
	defer s.Close()

	if err := s.Run(); err != nil {
		t.Errorf("Run -> error %v", err)
	}
	want := []string{"step", "continue", "quit"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_StopsOnHandlerError(t *testing.T) {
	errWrong := errors.New("machine fault")
	calls := 0
	s := NewSession(Options{Command: "step;continue"},
		HandlerFunc(func(cmd string) (bool, error) {
			calls++
			return false, errWrong
		}), nil, nil)
	defer s.Close()

	if err := s.Run(); err != errWrong {
		t.Errorf("Run -> error %v, want %v", err, errWrong)
	}
	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
}

func TestSession_ExhaustedSourceEndsRun(t *testing.T) {
	s := NewSession(Options{Command: ";  ; "},
		HandlerFunc(func(cmd string) (bool, error) {
			t.Errorf("handler called with %q for blank input", cmd)
			return false, nil
		}), nil, nil)
	defer s.Close()

	if err := s.Run(); err != nil {
		t.Errorf("Run -> error %v", err)
	}
}
