package strutil

import (
	"testing"

	"src.lace.dev/pkg/tt"
)

func TestRemoveRune(t *testing.T) {
	tt.Test(t, tt.Fn("RemoveRune", func(s string, i int) (string, rune) {
		return RemoveRune(s, i)
	}), tt.Table{
		tt.Args("abc", 0).Rets("bc", 'a'),
		tt.Args("abc", 1).Rets("ac", 'b'),
		tt.Args("abc", 2).Rets("ab", 'c'),
		tt.Args("ä世c", 1).Rets("äc", '世'),
		tt.Args("ä世c", 0).Rets("世c", 'ä'),
	})
}

func TestRemoveRune_PanicsOnIndexOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("want panic, got none")
		}
	}()
	RemoveRune("abc", 3)
}
