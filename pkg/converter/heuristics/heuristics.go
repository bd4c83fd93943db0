// --- START OF FINAL REVISED FILE pkg/converter/heuristics/heuristics.go ---

// Package heuristics holds the line-based text transforms used by the converter:
// plain text to Markdown or HTML, and Markdown to HTML or flattened plain text.
//
// The transforms are pure string functions. They never fail and never touch the
// filesystem, so the orchestrator can compose them freely through its dispatch table.
package heuristics

import "strings"

// htmlEscaper escapes only the three characters that matter inside element content.
// Quotes are left alone on purpose: the output never places text inside attributes.
var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// lineBreaks normalizes CRLF and lone CR to LF before splitting.
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// EscapeHTML escapes &, < and > for use in HTML element content.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// NormalizeNewlines converts CRLF and CR line endings to LF.
func NormalizeNewlines(s string) string {
	return lineBreaks.Replace(s)
}

// splitLines splits text into lines without their terminators.
// A trailing line break does not produce a final empty line, and empty input yields no lines.
func splitLines(s string) []string {
	s = NormalizeNewlines(s)
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// SplitParagraphs splits text on blank-line boundaries ("\n\n"), trims every block
// and drops the empty ones.
func SplitParagraphs(text string) []string {
	var paragraphs []string
	for _, block := range strings.Split(text, "\n\n") {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}

// EnsureTrailingNewline appends a single "\n" when s does not already end with one.
func EnsureTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// --- END OF FINAL REVISED FILE pkg/converter/heuristics/heuristics.go ---
