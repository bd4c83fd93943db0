// --- START OF FINAL REVISED FILE internal/cli/cli.go ---
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/stackvity/sovereign-doc/internal/cli/hooks"
	"github.com/stackvity/sovereign-doc/internal/cli/report"
	"github.com/stackvity/sovereign-doc/internal/cli/ui"
	"github.com/stackvity/sovereign-doc/pkg/converter"
)

// Process exit codes.
const (
	ExitOK    = 0
	ExitError = 1
)

// Run orchestrates the main application logic after configuration loading.
// A directory input runs the batch over package files; anything else is
// converted as a single file. It returns the process exit code: a batch that ran
// to completion exits 0 even when some files failed.
func Run(ctx context.Context, opts converter.Options, logger *slog.Logger, stdout, stderr io.Writer) int {
	printer := ui.NewPrinter(stdout, stderr)
	if info, err := os.Stat(opts.InputPath); err == nil && info.IsDir() {
		return runBatch(ctx, opts, logger, printer, stderr)
	}
	return runSingle(opts, logger, printer)
}

func runSingle(opts converter.Options, logger *slog.Logger, printer *ui.Printer) int {
	c := converter.New(opts)
	res, err := c.Convert(opts.InputPath, opts.DestinationFormat, converter.ModeCLISingle, opts.Log.Enabled)
	if err != nil {
		logger.Debug("Conversion failed", slog.String("input", opts.InputPath), slog.Any("error", err))
		printer.Failure(err.Error(), converter.IsDomainError(err))
		return ExitError
	}
	printer.Converted(filepath.Base(res.InputPath), filepath.Base(res.OutputPath), res.OutputPath)
	return ExitOK
}

func runBatch(ctx context.Context, opts converter.Options, logger *slog.Logger, printer *ui.Printer, stderr io.Writer) int {
	var bar hooks.ProgressBar
	if !opts.Verbose && isTerminal(stderr) {
		bar = hooks.NewProgressBar(stderr)
	}
	opts.EventHooks = hooks.NewCLIHooks(logger, opts.Verbose, bar, stderr)

	c := converter.New(opts)
	rep, err := c.ConvertBatch(ctx, opts.InputPath, opts.DestinationFormat, converter.ModeCLIBatch, opts.Log.Enabled)
	if err != nil && !IsCancellation(err) {
		printer.Failure(err.Error(), converter.IsDomainError(err))
		return ExitError
	}
	rep.Summary.ConfigFilePath = opts.ConfigFilePath

	if writeErr := printReport(printer, opts.ReportFormat, rep); writeErr != nil {
		printer.Fatal(writeErr.Error())
		return ExitError
	}

	if rep.Summary.Cancelled {
		logger.Debug("Batch interrupted", slog.Any("error", err))
		printer.Fatal(fmt.Sprintf("batch cancelled after %d of %d file(s)",
			rep.Summary.SucceededCount+rep.Summary.FailedCount, rep.Summary.TotalFiles))
		return ExitError
	}
	return ExitOK
}

// printReport prints per-file failures on stderr and the report in the requested
// format on stdout. The text format interleaves OK lines and failures in
// processing order, like a live transcript.
func printReport(printer *ui.Printer, format converter.ReportFormat, rep converter.Report) error {
	entries := report.Entries(rep)

	if format != converter.ReportFormatText && format != "" {
		for _, e := range entries {
			if !e.Succeeded() {
				printer.Failure(failureLine(e), e.IsDomain)
			}
		}
		return report.Write(printer.Out(), format, rep)
	}

	printer.Infof("%s", report.Header(rep))
	if rep.Summary.TotalFiles == 0 {
		return nil
	}
	for _, e := range entries {
		if e.Succeeded() {
			printer.OK(filepath.Base(e.Path), filepath.Base(e.OutputPath))
			continue
		}
		printer.Failure(failureLine(e), e.IsDomain)
	}
	printer.Infof("%s", report.CompletionLine(rep))
	return nil
}

func failureLine(e report.Entry) string {
	return fmt.Sprintf("%s: %s", filepath.Base(e.Path), e.Error)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsCancellation reports whether err stems from an interrupted run.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// --- END OF FINAL REVISED FILE internal/cli/cli.go ---
