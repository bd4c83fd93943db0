// --- START OF FINAL REVISED FILE internal/cli/ui/styles.go ---
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Message prefixes printed by the CLI.
const (
	PrefixInfo  = "[SOVEREIGN DOC]"
	PrefixError = "[SOVEREIGN DOC ERROR]"
	PrefixFatal = "[SOVEREIGN DOC FATAL]"
	PrefixOK    = "OK:"
)

// --- Styles ---

const (
	ColorStatusSuccess = lipgloss.Color("40")  // Green
	ColorStatusFailed  = lipgloss.Color("196") // Red
	ColorStatusFatal   = lipgloss.Color("201") // Magenta
	ColorInfo          = lipgloss.Color("62")  // Purple
	ColorPath          = lipgloss.Color("244") // Dim gray
)

// Printer writes user-facing CLI messages. Regular output goes to out, error
// messages to errOut. Colors are applied per stream and only when that stream
// is a terminal that supports them.
type Printer struct {
	out    io.Writer
	errOut io.Writer

	infoStyle  lipgloss.Style
	okStyle    lipgloss.Style
	pathStyle  lipgloss.Style
	errorStyle lipgloss.Style
	fatalStyle lipgloss.Style
}

// NewPrinter creates a Printer over the two output streams.
func NewPrinter(out, errOut io.Writer) *Printer {
	outRenderer := lipgloss.NewRenderer(out)
	errRenderer := lipgloss.NewRenderer(errOut)
	return &Printer{
		out:        out,
		errOut:     errOut,
		infoStyle:  outRenderer.NewStyle().Bold(true).Foreground(ColorInfo),
		okStyle:    outRenderer.NewStyle().Foreground(ColorStatusSuccess),
		pathStyle:  outRenderer.NewStyle().Foreground(ColorPath),
		errorStyle: errRenderer.NewStyle().Bold(true).Foreground(ColorStatusFailed),
		fatalStyle: errRenderer.NewStyle().Bold(true).Foreground(ColorStatusFatal),
	}
}

// Out returns the regular output stream.
func (p *Printer) Out() io.Writer { return p.out }

// Converted prints the two lines announcing a successful single-file conversion.
func (p *Printer) Converted(inputName, outputName, outputPath string) {
	fmt.Fprintf(p.out, "Sovereign Doc: %s → %s\n", inputName, outputName)
	fmt.Fprintf(p.out, "Output saved to: %s\n", p.pathStyle.Render(outputPath))
}

// Infof prints a prefixed informational line. Lines already carrying the plain
// prefix are restyled rather than prefixed twice.
func (p *Printer) Infof(format string, args ...any) {
	msg := strings.TrimPrefix(fmt.Sprintf(format, args...), PrefixInfo+" ")
	fmt.Fprintf(p.out, "%s %s\n", p.infoStyle.Render(PrefixInfo), msg)
}

// OK prints an indented per-file success line.
func (p *Printer) OK(inputName, outputName string) {
	fmt.Fprintf(p.out, "  %s %s → %s\n", p.okStyle.Render(PrefixOK), inputName, outputName)
}

// Error prints a domain error message.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.errOut, "%s %s\n", p.errorStyle.Render(PrefixError), msg)
}

// Fatal prints an unexpected error message.
func (p *Printer) Fatal(msg string) {
	fmt.Fprintf(p.errOut, "%s %s\n", p.fatalStyle.Render(PrefixFatal), msg)
}

// Failure prints err with the prefix matching its kind.
func (p *Printer) Failure(msg string, isDomain bool) {
	if isDomain {
		p.Error(msg)
		return
	}
	p.Fatal(msg)
}

// --- END OF FINAL REVISED FILE internal/cli/ui/styles.go ---
