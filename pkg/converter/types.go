// --- START OF FINAL REVISED FILE pkg/converter/types.go ---
package converter

import (
	"fmt"
	"strings"

	"github.com/stackvity/sovereign-doc/pkg/util"
)

// Format identifies one of the supported document formats.
type Format string

// Constants representing the supported formats. The string value doubles as the
// destination token and the file extension (without the dot).
const (
	FormatDocx Format = "docx"
	FormatText Format = "txt"
	FormatMD   Format = "md"
	FormatHTML Format = "html"
)

// sourceFormats lists the formats accepted as conversion input.
var sourceFormats = []Format{FormatDocx, FormatText, FormatMD}

// destinationFormats lists the formats accepted as conversion output.
var destinationFormats = []Format{FormatText, FormatMD, FormatHTML, FormatDocx}

// Ext returns the file extension for the format, including the leading dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// SourceFormats returns the formats accepted as input, in a stable order.
func SourceFormats() []Format {
	return append([]Format(nil), sourceFormats...)
}

// DestinationFormats returns the destination tokens, in a stable order.
func DestinationFormats() []Format {
	return append([]Format(nil), destinationFormats...)
}

// ParseFormat resolves a destination token (case-insensitive) to a Format.
func ParseFormat(token string) (Format, error) {
	candidate := Format(strings.ToLower(strings.TrimSpace(token)))
	for _, f := range destinationFormats {
		if f == candidate {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unsupported output format %q (use txt, md, html, or docx)", ErrFormat, token)
}

// SourceFormatFromPath resolves the source format from the lower-cased extension of path.
// A bare dotfile such as ".md" has no extension and is rejected.
func SourceFormatFromPath(path string) (Format, error) {
	_, _, ext := util.SplitExt(path)
	ext = strings.ToLower(ext)
	for _, f := range sourceFormats {
		if f.Ext() == ext {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unsupported input format %q (use .docx, .txt, or .md)", ErrFormat, ext)
}

// Mode is a free-form label naming the collaborator that triggered a conversion.
// It is written verbatim to the run log.
type Mode string

// Constants for the invocation modes used by the bundled collaborators.
const (
	ModeCLISingle Mode = "cli-single"
	ModeCLIBatch  Mode = "cli-batch"
	ModeGUISingle Mode = "gui-single"
	ModeGUIBatch  Mode = "gui-batch"
	ModeCore      Mode = "core"
)

// Status defines the possible processing states of a file during a batch run.
type Status string

// Constants representing the defined file processing statuses.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
	StatusSkipped    Status = "skipped"
)

// ReportFormat defines the format of the batch summary printed by the CLI.
type ReportFormat string

const (
	ReportFormatText     ReportFormat = "text"
	ReportFormatJSON     ReportFormat = "json"
	ReportFormatYAML     ReportFormat = "yaml"
	ReportFormatMarkdown ReportFormat = "markdown"
)

// --- END OF FINAL REVISED FILE pkg/converter/types.go ---
