package bw

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxExtractionChars is the upper bound on the length of extracted text.
const MaxExtractionChars = 250_000

var (
	horizontalSpaceRe  = regexp.MustCompile(`[ \t\f\v\r]+`)
	spaceBeforeNewline = regexp.MustCompile(` +\n`)
	excessNewlinesRe   = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes whitespace in extracted text. Non-breaking spaces
// become regular spaces, runs of horizontal whitespace collapse to a single
// space, spaces before a newline are dropped, three or more consecutive
// newlines collapse to a blank line, and the result is trimmed.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = horizontalSpaceRe.ReplaceAllString(s, " ")
	s = spaceBeforeNewline.ReplaceAllString(s, "\n")
	s = excessNewlinesRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// ClampText limits s to max characters. It reports whether s was cut.
// Lengths are counted in Unicode code points.
func ClampText(s string, max int) (string, bool) {
	if utf8.RuneCountInString(s) <= max {
		return s, false
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i], true
		}
		n++
	}
	return s, false
}

// CharCount returns the number of characters in s.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}
