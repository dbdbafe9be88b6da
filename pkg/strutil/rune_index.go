// Package strutil provides utilities for handling UTF-8 strings indexed by
// codepoint rather than by byte.
package strutil

// RuneIndex returns the byte index of the i-th rune of s along with the total
// number of runes, in one pass. If s has no more than i runes, the returned
// index is len(s).
func RuneIndex(s string, i int) (index, runes int) {
	index = len(s)
	for b := range s {
		if runes == i {
			index = b
		}
		runes++
	}
	return
}
