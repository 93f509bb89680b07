package styles

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultPxPerChar is the average glyph advance used for width estimates.
const DefaultPxPerChar = 7.0

const ellipsis = "…"

// Truncate trims text and shortens it to at most maxLen runes. Shortened
// text keeps its first maxLen-1 runes, right-trimmed, followed by an
// ellipsis.
func Truncate(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(text)
	return strings.TrimRightFunc(string(runes[:maxLen-1]), unicode.IsSpace) + ellipsis
}

// EstimateWidth approximates the rendered width of label in pixels at
// DefaultPxPerChar. It is a layout heuristic, not text shaping.
func EstimateWidth(label string) int {
	return EstimateWidthPx(label, DefaultPxPerChar)
}

// EstimateWidthPx approximates the rendered width of label at pxPerChar.
func EstimateWidthPx(label string, pxPerChar float64) int {
	return int(float64(utf8.RuneCountInString(label)) * pxPerChar)
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML escapes the five XML-significant characters. Each input byte is
// replaced at most once, so ampersands are never double-escaped. Runes that
// XML 1.0 does not allow, such as most control characters and invalid
// UTF-8, become U+FFFD.
func EscapeXML(s string) string {
	return xmlReplacer.Replace(strings.Map(xmlChar, s))
}

// xmlChar maps runes outside the XML 1.0 Char production to U+FFFD.
func xmlChar(r rune) rune {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return r
	case r >= 0x20 && r <= 0xD7FF,
		r >= 0xE000 && r <= 0xFFFD,
		r >= 0x10000 && r <= unicode.MaxRune:
		return r
	}
	return utf8.RuneError
}

// CollapseSpace replaces every whitespace run with a single space and trims
// the ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
