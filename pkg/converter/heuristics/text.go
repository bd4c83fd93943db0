// --- START OF FINAL REVISED FILE pkg/converter/heuristics/text.go ---
package heuristics

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// headingMaxWords is the longest line (in words) still considered a heading candidate.
	headingMaxWords = 8
	// bulletGlyphs are the leading characters recognised as a plain-text bullet.
	bulletGlyphs = "•-*"
)

// TextToMarkdown guesses Markdown structure for plain text, one line at a time.
//
// Short lines where at least half of the words (minimum one) start with an
// uppercase letter become "# " headings. Lines starting with a bullet glyph become
// "- " items. Blank lines are kept as paragraph separators and every other line is
// emitted trimmed. The result always ends in exactly one "\n".
func TextToMarkdown(text string) string {
	lines := splitLines(text)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		switch {
		case stripped == "":
			out = append(out, "")
		case looksLikeHeading(stripped):
			out = append(out, "# "+stripped)
		case startsWithBullet(stripped):
			content := strings.TrimSpace(strings.TrimLeft(stripped, bulletGlyphs))
			out = append(out, "- "+content)
		default:
			out = append(out, stripped)
		}
	}
	return strings.TrimRightFunc(strings.Join(out, "\n"), unicode.IsSpace) + "\n"
}

// looksLikeHeading applies the word-count and capitalisation heuristic to a trimmed line.
func looksLikeHeading(line string) bool {
	words := strings.Fields(line)
	if len(words) < 1 || len(words) > headingMaxWords {
		return false
	}
	upperish := 0
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		if unicode.IsUpper(r) {
			upperish++
		}
	}
	return upperish >= max(1, len(words)/2)
}

func startsWithBullet(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	return strings.ContainsRune(bulletGlyphs, r)
}

// TextToHTML wraps every blank-line separated paragraph of text in a <p> element
// inside a minimal HTML document.
func TextToHTML(text string) string {
	parts := []string{"<!DOCTYPE html>", "<html>", "<body>"}
	for _, p := range SplitParagraphs(text) {
		parts = append(parts, "<p>"+EscapeHTML(p)+"</p>")
	}
	parts = append(parts, "</body>", "</html>")
	return strings.Join(parts, "\n") + "\n"
}

// --- END OF FINAL REVISED FILE pkg/converter/heuristics/text.go ---
