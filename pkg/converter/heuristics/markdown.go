// --- START OF FINAL REVISED FILE pkg/converter/heuristics/markdown.go ---
package heuristics

import (
	"strings"
	"unicode"
)

const (
	htmlDocumentOpen  = "<!DOCTYPE html>\n<html>\n<body>\n"
	htmlDocumentClose = "\n</body>\n</html>\n"
)

// listState is the only state the Markdown block recogniser carries between lines.
type listState int

const (
	outsideList listState = iota
	insideList
)

// headingPrefixes is checked in order, longest prefix first.
var headingPrefixes = []struct {
	prefix string
	tag    string
}{
	{"### ", "h3"},
	{"## ", "h2"},
	{"# ", "h1"},
}

// bulletPrefixes are the unordered list markers understood by both Markdown transforms.
var bulletPrefixes = []string{"- ", "* ", "+ "}

// htmlBlockWriter accumulates HTML lines and owns the list state machine.
type htmlBlockWriter struct {
	lines []string
	state listState
}

func (w *htmlBlockWriter) emit(line string) {
	w.lines = append(w.lines, line)
}

// closeList transitions insideList -> outsideList, emitting the list end tag.
func (w *htmlBlockWriter) closeList() {
	if w.state == insideList {
		w.emit("</ul>")
		w.state = outsideList
	}
}

// openList transitions outsideList -> insideList, emitting the list start tag.
func (w *htmlBlockWriter) openList() {
	if w.state == outsideList {
		w.emit("<ul>")
		w.state = insideList
	}
}

// MarkdownToHTML renders the small Markdown subset this tool understands:
// "#", "##" and "###" headings, flat "-", "*" and "+" lists, and paragraphs.
// Every list opened is closed before the body ends.
func MarkdownToHTML(md string) string {
	w := &htmlBlockWriter{}
	for _, line := range splitLines(md) {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			w.closeList()
			continue
		}
		if tag, rest, ok := cutHeading(stripped); ok {
			w.closeList()
			w.emit("<" + tag + ">" + EscapeHTML(strings.TrimSpace(rest)) + "</" + tag + ">")
			continue
		}
		if rest, ok := cutBullet(stripped); ok {
			w.openList()
			w.emit("<li>" + EscapeHTML(strings.TrimSpace(rest)) + "</li>")
			continue
		}
		w.closeList()
		w.emit("<p>" + EscapeHTML(stripped) + "</p>")
	}
	w.closeList()
	return htmlDocumentOpen + strings.Join(w.lines, "\n") + htmlDocumentClose
}

func cutHeading(line string) (tag, rest string, ok bool) {
	for _, h := range headingPrefixes {
		if after, found := strings.CutPrefix(line, h.prefix); found {
			return h.tag, after, true
		}
	}
	return "", "", false
}

func cutBullet(line string) (string, bool) {
	for _, prefix := range bulletPrefixes {
		if after, found := strings.CutPrefix(line, prefix); found {
			return after, true
		}
	}
	return "", false
}

// MarkdownToPlainText flattens Markdown block markers: heading hashes, bullet markers
// and ordered-list numbers are removed, everything else is kept line for line.
func MarkdownToPlainText(md string) string {
	lines := splitLines(md)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		stripped := strings.TrimLeftFunc(line, unicode.IsSpace)
		switch {
		case strings.HasPrefix(stripped, "#"):
			stripped = strings.TrimSpace(strings.TrimLeft(stripped, "#"))
		case hasBulletPrefix(stripped):
			stripped = strings.TrimSpace(stripped[2:])
		default:
			if content, ok := cutOrderedMarker(stripped); ok {
				stripped = content
			}
		}
		out = append(out, stripped)
	}
	return strings.TrimSpace(strings.Join(out, "\n")) + "\n"
}

func hasBulletPrefix(line string) bool {
	_, ok := cutBullet(line)
	return ok
}

// cutOrderedMarker recognises "12. content" and "12 content": a leading run of digits
// with optional trailing periods, followed by whitespace and some content.
func cutOrderedMarker(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", false
	}
	number := strings.TrimRight(fields[0], ".")
	if number == "" || strings.IndexFunc(number, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
		return "", false
	}
	// line is already left-trimmed, so the marker is its first field.
	return strings.TrimSpace(line[len(fields[0]):]), true
}

// --- END OF FINAL REVISED FILE pkg/converter/heuristics/markdown.go ---
