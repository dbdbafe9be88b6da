package edit

import (
	"testing"

	"src.lace.dev/pkg/tt"
)

func TestNextWordStart(t *testing.T) {
	tt.Test(t, tt.Fn("NextWordStart", NextWordStart), tt.Table{
		tt.Args("", 0, Word).Rets(0),
		tt.Args("abc", 3, Word).Rets(3),
		tt.Args("abc", 7, Word).Rets(3),

		tt.Args("abc def", 0, Word).Rets(4),
		tt.Args("abc def", 2, Word).Rets(4),
		tt.Args("abc def", 4, Word).Rets(7),
		tt.Args("abc  def", 0, Word).Rets(5),
		// Starting on whitespace goes to the next non-whitespace character.
		tt.Args("abc def", 3, Word).Rets(4),
		tt.Args("  abc", 0, Word).Rets(2),

		// A class change is a boundary in Word style but not in FullWord.
		tt.Args("abc+def", 0, Word).Rets(3),
		tt.Args("abc+def", 0, FullWord).Rets(7),
		tt.Args("abc+def", 3, Word).Rets(4),
		tt.Args("x -= 1", 0, Word).Rets(2),
		tt.Args("x -= 1", 2, Word).Rets(5),

		// A trailing alphanumeric run ends at the whitespace in Word style.
		tt.Args("ab  ", 0, Word).Rets(2),
		tt.Args("ab  ", 0, FullWord).Rets(4),
		tt.Args("+-  ", 0, Word).Rets(4),

		// Codepoint indices, not bytes.
		tt.Args("wörld füll", 0, Word).Rets(6),
	})
}

func TestPrevWordStart(t *testing.T) {
	tt.Test(t, tt.Fn("PrevWordStart", PrevWordStart), tt.Table{
		tt.Args("", 0, Word).Rets(0),
		tt.Args("a", 1, Word).Rets(0),
		// Positions 0 and 1 are both the start of the line.
		tt.Args("ab", 1, Word).Rets(0),

		tt.Args("abc def", 7, Word).Rets(4),
		tt.Args("abc def", 4, Word).Rets(0),
		tt.Args("abc def", 5, Word).Rets(4),
		// Whitespace before the cursor is skipped first.
		tt.Args("abc def ", 8, Word).Rets(4),
		tt.Args("abc   ", 6, Word).Rets(0),

		tt.Args("abc+def", 7, Word).Rets(4),
		tt.Args("abc+def", 4, Word).Rets(3),
		tt.Args("abc+def", 3, Word).Rets(0),
		tt.Args("abc+def ghi", 8, Word).Rets(4),
		tt.Args("abc+def ghi", 8, FullWord).Rets(0),

		tt.Args("wörld füll", 10, Word).Rets(6),
	})
}
