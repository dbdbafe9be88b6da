package diag

import (
	"os"
	"strings"
	"testing"
)

func TestComplain(t *testing.T) {
	var sb strings.Builder
	stderr = &sb
	defer func() { stderr = os.Stderr }()

	SetMinimal(false)
	defer SetMinimal(false)
	Complain("uh oh")
	if got, want := sb.String(), "\033[31;1muh oh\033[m\n"; got != want {
		t.Errorf("Complain writes %q, want %q", got, want)
	}

	sb.Reset()
	SetMinimal(true)
	if !Minimal() {
		t.Errorf("Minimal() is false after SetMinimal(true)")
	}
	Complainf("%d problems", 2)
	if got, want := sb.String(), "2 problems\n"; got != want {
		t.Errorf("Complainf writes %q, want %q", got, want)
	}
}
