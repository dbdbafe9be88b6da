package strutil

import "unicode/utf8"

// RemoveRune returns s with its i-th rune removed, along with the removed
// rune. It panics if s does not have more than i runes; that is a bug in the
// caller, not an input error.
func RemoveRune(s string, i int) (string, rune) {
	index, runes := RuneIndex(s, i)
	if i >= runes {
		panic("RemoveRune: rune index out of range")
	}
	r, size := utf8.DecodeRuneInString(s[index:])
	return s[:index] + s[index+size:], r
}
