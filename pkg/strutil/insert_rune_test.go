package strutil

import (
	"testing"

	"src.lace.dev/pkg/tt"
)

func TestInsertRune(t *testing.T) {
	tt.Test(t, tt.Fn("InsertRune", InsertRune), tt.Table{
		tt.Args("", 0, 'x').Rets("x"),
		tt.Args("abc", 0, 'x').Rets("xabc"),
		tt.Args("abc", 1, 'x').Rets("axbc"),
		tt.Args("abc", 3, 'x').Rets("abcx"),
		tt.Args("ä世", 1, 'x').Rets("äx世"),
		tt.Args("ab", 1, '世').Rets("a世b"),
	})
}

func TestInsertRune_PanicsOnIndexOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("want panic, got none")
		}
	}()
	InsertRune("abc", 4, 'x')
}
