// --- START OF FINAL REVISED FILE pkg/converter/dispatch.go ---
package converter

import (
	"fmt"

	"github.com/stackvity/sovereign-doc/pkg/converter/heuristics"
)

// Transform turns the loaded source text into the converted content.
// For a docx destination the converted content is the flattened text handed to the
// package writer.
type Transform func(text string) string

// Route is one supported (source, destination) pair of the dispatch table.
type Route struct {
	Source      Format
	Destination Format
	Name        string
	Transform   Transform
}

type routeKey struct {
	src, dst Format
}

func passthrough(text string) string { return text }

func textToMarkdown(text string) string {
	return heuristics.EnsureTrailingNewline(heuristics.TextToMarkdown(text))
}

// routes is the complete dispatch table. Any pair not listed is unsupported.
var routes = []Route{
	{Source: FormatText, Destination: FormatText, Name: "passthrough", Transform: passthrough},
	{Source: FormatMD, Destination: FormatText, Name: "passthrough", Transform: passthrough},
	{Source: FormatDocx, Destination: FormatText, Name: "passthrough", Transform: passthrough},

	{Source: FormatText, Destination: FormatMD, Name: "text-to-markdown", Transform: textToMarkdown},
	{Source: FormatMD, Destination: FormatMD, Name: "passthrough", Transform: heuristics.EnsureTrailingNewline},
	{Source: FormatDocx, Destination: FormatMD, Name: "text-to-markdown", Transform: textToMarkdown},

	{Source: FormatText, Destination: FormatHTML, Name: "text-to-html", Transform: heuristics.TextToHTML},
	{Source: FormatMD, Destination: FormatHTML, Name: "markdown-to-html", Transform: heuristics.MarkdownToHTML},
	{Source: FormatDocx, Destination: FormatHTML, Name: "text-to-html", Transform: heuristics.TextToHTML},

	{Source: FormatText, Destination: FormatDocx, Name: "passthrough", Transform: passthrough},
	{Source: FormatMD, Destination: FormatDocx, Name: "markdown-to-plaintext", Transform: heuristics.MarkdownToPlainText},
	{Source: FormatDocx, Destination: FormatDocx, Name: "passthrough", Transform: passthrough},
}

var routeIndex = func() map[routeKey]Route {
	index := make(map[routeKey]Route, len(routes))
	for _, r := range routes {
		index[routeKey{r.Source, r.Destination}] = r
	}
	return index
}()

// Routes returns every supported (source, destination) pair.
func Routes() []Route {
	return append([]Route(nil), routes...)
}

// LookupRoute returns the route for the given pair, or ErrFormat if it is unsupported.
func LookupRoute(src, dst Format) (Route, error) {
	r, ok := routeIndex[routeKey{src, dst}]
	if !ok {
		return Route{}, fmt.Errorf("%w: no conversion from %s to %s", ErrFormat, src, dst)
	}
	return r, nil
}

// --- END OF FINAL REVISED FILE pkg/converter/dispatch.go ---
