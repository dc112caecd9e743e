package transform

import "unicode/utf8"

// decodeRune returns the rune at byte offset pos and its width.
func decodeRune(value string, pos int) (rune, int) {
	if value[pos] < utf8.RuneSelf {
		return rune(value[pos]), 1
	}
	return utf8.DecodeRuneInString(value[pos:])
}
