// --- START OF FINAL REVISED FILE internal/cli/report/report.go ---
// Package report renders a batch converter.Report for the command line.
//
// Header and CompletionLine frame the console transcript the CLI prints for the
// text format. Write renders the JSON, YAML and Markdown reports meant for
// tooling and sharing.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/nao1215/markdown"
	"gopkg.in/yaml.v3"

	"github.com/stackvity/sovereign-doc/pkg/converter"
)

// ErrUnknownFormat is returned by Write for a report format it cannot render.
var ErrUnknownFormat = errors.New("unknown report format")

// Entry is one processed file in the order the batch handled it.
type Entry struct {
	Path       string
	OutputPath string // Empty for failures
	Error      string // Empty for successes
	IsDomain   bool
}

// Succeeded reports whether the entry is a converted file.
func (e Entry) Succeeded() bool { return e.Error == "" }

// Entries merges converted files and errors back into processing order. The batch
// walks a single directory in name order, so comparing full paths restores it.
func Entries(r converter.Report) []Entry {
	entries := make([]Entry, 0, len(r.ConvertedFiles)+len(r.Errors))
	i, j := 0, 0
	for i < len(r.ConvertedFiles) || j < len(r.Errors) {
		takeConverted := j >= len(r.Errors) ||
			(i < len(r.ConvertedFiles) && r.ConvertedFiles[i].Path <= r.Errors[j].Path)
		if takeConverted {
			f := r.ConvertedFiles[i]
			entries = append(entries, Entry{Path: f.Path, OutputPath: f.OutputPath})
			i++
			continue
		}
		e := r.Errors[j]
		entries = append(entries, Entry{Path: e.Path, Error: e.Error, IsDomain: e.IsDomain})
		j++
	}
	return entries
}

// Write renders r to w in one of the document formats. The text format is a console
// transcript printed line by line by the CLI and is not handled here.
func Write(w io.Writer, format converter.ReportFormat, r converter.Report) error {
	switch format {
	case converter.ReportFormatJSON:
		return WriteJSON(w, r)
	case converter.ReportFormatYAML:
		return WriteYAML(w, r)
	case converter.ReportFormatMarkdown:
		return WriteMarkdown(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Header is the line announcing a batch, or the notice for an empty folder.
func Header(r converter.Report) string {
	if r.Summary.TotalFiles == 0 {
		return fmt.Sprintf("[SOVEREIGN DOC] No .docx files found in folder: %s", r.Summary.InputPath)
	}
	return fmt.Sprintf("[SOVEREIGN DOC] Converting %d .docx file(s) in folder: %s → %s",
		r.Summary.TotalFiles, r.Summary.InputPath, r.Summary.DestinationFormat)
}

// CompletionLine is the final summary line of a non-empty batch.
func CompletionLine(r converter.Report) string {
	return fmt.Sprintf("[SOVEREIGN DOC] Completed. Successfully converted %d of %d file(s).",
		r.Summary.SucceededCount, r.Summary.TotalFiles)
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r converter.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}

// WriteYAML writes r as a YAML document.
func WriteYAML(w io.Writer, r converter.Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("failed to encode YAML report: %w", err)
	}
	return encoder.Close()
}

// WriteMarkdown writes r as a Markdown document with a summary table and one
// table per file section.
func WriteMarkdown(w io.Writer, r converter.Report) error {
	md := markdown.NewMarkdown(w)
	s := r.Summary

	md.H1("Sovereign Doc Batch Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Folder", "`" + s.InputPath + "`"},
			{"Destination", string(s.DestinationFormat)},
			{"Mode", string(s.Mode)},
			{"Date", s.Timestamp.Format("2006-01-02 15:04:05 MST")},
			{"Files", strconv.Itoa(s.TotalFiles)},
			{"Succeeded", strconv.Itoa(s.SucceededCount)},
			{"Failed", strconv.Itoa(s.FailedCount)},
			{"Skipped", strconv.Itoa(s.SkippedCount)},
			{"Duration", strconv.FormatFloat(s.DurationSeconds, 'f', 2, 64) + "s"},
			{"Status", statusText(s)},
		},
	})
	md.PlainText("")

	md.H2("Converted Files")
	md.PlainText("")
	if len(r.ConvertedFiles) == 0 {
		md.PlainText("No files converted.")
	} else {
		rows := make([][]string, 0, len(r.ConvertedFiles))
		for _, f := range r.ConvertedFiles {
			rows = append(rows, []string{
				filepath.Base(f.Path),
				filepath.Base(f.OutputPath),
				strconv.FormatFloat(f.DurationMs, 'f', 1, 64),
				strconv.Itoa(f.CharsOut),
				strconv.FormatFloat(f.Score, 'f', 3, 64),
			})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Input", "Output", "Duration (ms)", "Chars", "Score"},
			Rows:   rows,
		})
	}
	md.PlainText("")

	if len(r.Errors) > 0 {
		md.H2("Errors")
		md.PlainText("")
		rows := make([][]string, 0, len(r.Errors))
		for _, e := range r.Errors {
			kind := "fatal"
			if e.IsDomain {
				kind = "error"
			}
			rows = append(rows, []string{filepath.Base(e.Path), kind, e.Error})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Input", "Kind", "Message"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if len(r.SkippedFiles) > 0 {
		md.H2("Skipped Files")
		md.PlainText("")
		items := make([]string, 0, len(r.SkippedFiles))
		for _, sk := range r.SkippedFiles {
			items = append(items, fmt.Sprintf("%s (%s)", filepath.Base(sk.Path), sk.Details))
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	return md.Build()
}

func statusText(s converter.ReportSummary) string {
	switch {
	case s.Cancelled:
		return "Cancelled"
	case s.FailedCount > 0:
		return "Completed with errors"
	default:
		return "Complete"
	}
}

// --- END OF FINAL REVISED FILE internal/cli/report/report.go ---
