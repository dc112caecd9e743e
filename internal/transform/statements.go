package transform

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitStatements splits a response into trimmed, non-empty statements.
// A period ends a statement unless the character before it is a digit, so
// decimals like "3.5" stay intact while "end.Next" still splits.
func SplitStatements(response string) []string {
	statements := make([]string, 0)
	start := 0
	prev := utf8.RuneError
	for pos, r := range response {
		if r == '.' && !unicode.IsDigit(prev) {
			statements = appendStatement(statements, response[start:pos])
			start = pos + 1
		}
		prev = r
	}
	return appendStatement(statements, response[start:])
}

func appendStatement(statements []string, piece string) []string {
	trimmed := trimSpace(piece)
	if trimmed == "" {
		return statements
	}
	return append(statements, trimmed)
}

// trimSpace strips surrounding whitespace, including the ASCII
// file/group/record/unit separators that some exports use as padding.
func trimSpace(value string) string {
	return strings.TrimFunc(value, isSpace)
}

func isSpace(r rune) bool {
	if r >= 0x1c && r <= 0x1f {
		return true
	}
	return unicode.IsSpace(r)
}
