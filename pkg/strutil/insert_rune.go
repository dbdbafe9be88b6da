package strutil

// InsertRune returns s with r inserted before its i-th rune. Inserting at
// i equal to the rune count appends. It panics if i is greater than the rune
// count; that is a bug in the caller, not an input error.
func InsertRune(s string, i int, r rune) string {
	index, runes := RuneIndex(s, i)
	if i > runes {
		panic("InsertRune: rune index out of range")
	}
	return s[:index] + string(r) + s[index:]
}
