package edit

import "unicode"

// WordStyle selects how the word motions classify word boundaries, following
// vim's lowercase and uppercase motion families.
type WordStyle int

const (
	// Word treats a run of alphanumeric characters or a run of other
	// non-whitespace characters as a word, like vim's w and b.
	Word WordStyle = iota
	// FullWord treats any run of non-whitespace characters as a word, like
	// vim's W and B.
	FullWord
)

// NextWordStart returns the index of the start of the first word after the
// cursor, in codepoints. If there is no next word it returns the length of
// the text. The cursor may be anywhere in [0, length].
func NextWordStart(text string, cursor int, style WordStyle) int {
	rs := []rune(text)
	if cursor >= len(rs) {
		return len(rs)
	}
	if unicode.IsSpace(rs[cursor]) {
		// On whitespace: go to the first non-whitespace character.
		for i := cursor + 1; i < len(rs); i++ {
			if !unicode.IsSpace(rs[i]) {
				return i
			}
		}
		return len(rs)
	}
	alnum := isAlnum(rs[cursor])
	for i := cursor + 1; i < len(rs); i++ {
		if unicode.IsSpace(rs[i]) {
			// Whitespace ends the current word; the next word starts at the
			// first non-whitespace character after it.
			for j := i + 1; j < len(rs); j++ {
				if !unicode.IsSpace(rs[j]) {
					return j
				}
			}
			// Only whitespace remains. In Word style a trailing alphanumeric
			// run still ends at the whitespace itself.
			if style == Word && alnum {
				return i
			}
			return len(rs)
		}
		// In Word style, a class change is also a word boundary.
		if style == Word && isAlnum(rs[i]) != alnum {
			return i
		}
	}
	return len(rs)
}

// PrevWordStart returns the index of the start of the last word before the
// cursor, in codepoints. If there is no previous word it returns 0. The
// cursor may be anywhere in [0, length]; positions 0 and 1 both return 0.
func PrevWordStart(text string, cursor int, style WordStyle) int {
	if cursor <= 1 {
		return 0
	}
	rs := []rune(text)
	// Step onto the previous character and skip any whitespace run
	// immediately before the original position.
	cursor--
	for cursor > 0 && unicode.IsSpace(rs[cursor]) {
		cursor--
	}
	alnum := isAlnum(rs[cursor])
	for cursor > 0 {
		cursor--
		// Whitespace, or in Word style a character of the other class, means
		// the word starts just after it.
		if unicode.IsSpace(rs[cursor]) ||
			(style == Word && isAlnum(rs[cursor]) != alnum) {
			return cursor + 1
		}
	}
	return 0
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
