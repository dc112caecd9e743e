package transform

import (
	"regexp"
	"strings"
)

// citationPattern matches markers such as "?12?".
var citationPattern = regexp.MustCompile(`\?\p{Nd}+\?`)

// ExtractCitations returns every citation marker in a statement, left to
// right, keeping duplicates.
func ExtractCitations(statement string) []string {
	found := citationPattern.FindAllString(statement, -1)
	if found == nil {
		return []string{}
	}
	return found
}

// ResolveSnippets collects the snippet lines that contain each citation.
// Matches are grouped by citation, in citation order, then line order.
// A line that matches several citations appears once per citation.
func ResolveSnippets(citations, lines []string) []string {
	snippets := make([]string, 0)
	for _, citation := range citations {
		for _, line := range lines {
			if strings.Contains(line, citation) {
				snippets = append(snippets, line)
			}
		}
	}
	return snippets
}

// SplitLines splits a text block into lines. Every common line boundary is
// honored (\n, \r\n, \r, \v, \f, \x1c-\x1e, U+0085, U+2028, U+2029) and a
// trailing boundary does not produce an empty last line.
func SplitLines(block string) []string {
	lines := make([]string, 0)
	start := 0
	for pos := 0; pos < len(block); {
		r, size := decodeRune(block, pos)
		if !isLineBreak(r) {
			pos += size
			continue
		}
		lines = append(lines, block[start:pos])
		pos += size
		if r == '\r' && pos < len(block) && block[pos] == '\n' {
			pos++
		}
		start = pos
	}
	if start < len(block) {
		lines = append(lines, block[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	default:
		return false
	}
}
