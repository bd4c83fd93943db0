// --- START OF FINAL REVISED FILE pkg/converter/batch.go ---
package converter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"
)

// ConvertBatch converts every package file found directly inside dir (see
// DiscoverPackages) to the destination format, one after another. A file that fails
// is recorded in the report and the loop moves on. Cancelling ctx stops the loop
// between files; the partial report is returned together with ctx.Err().
//
// An error is returned without a report only when the destination token is invalid
// or dir cannot be scanned.
func (c *Converter) ConvertBatch(ctx context.Context, dir, destination string, mode Mode, loggingEnabled bool) (Report, error) {
	startTime := time.Now()
	if mode == "" {
		mode = DefaultMode
	}
	logger := c.logger.With(slog.String("batchDir", dir))

	dst, err := ParseFormat(destination)
	if err != nil {
		return Report{}, err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return Report{}, fmt.Errorf("could not get absolute path for %s: %w", dir, err)
	}
	discovery, err := discoverPackages(absDir, c.ignorePatterns, logger)
	if err != nil {
		return Report{}, err
	}
	logger.Debug("Starting batch conversion",
		slog.Int("files", len(discovery.Files)),
		slog.Int("skipped", len(discovery.Skipped)),
		slog.String("to", string(dst)))

	report := Report{
		Summary: ReportSummary{
			InputPath:         absDir,
			DestinationFormat: dst,
			Mode:              mode,
			TotalFiles:        len(discovery.Files),
			SkippedCount:      len(discovery.Skipped),
			Timestamp:         startTime,
			SchemaVersion:     ReportSchemaVersion,
		},
		ConvertedFiles: []FileResult{},
		SkippedFiles:   discovery.Skipped,
		Errors:         []ErrorInfo{},
	}
	if report.SkippedFiles == nil {
		report.SkippedFiles = []SkippedInfo{}
	}

	for _, skipped := range discovery.Skipped {
		if hookErr := c.hooks.OnFileStatusUpdate(skipped.Path, StatusSkipped, skipped.Details, 0); hookErr != nil {
			logger.Warn("Event hook OnFileStatusUpdate (Skipped) failed", slog.String("path", skipped.Path), slog.String("error", hookErr.Error()))
		}
	}
	for _, path := range discovery.Files {
		if hookErr := c.hooks.OnFileDiscovered(path); hookErr != nil {
			logger.Warn("Event hook OnFileDiscovered failed", slog.String("path", path), slog.String("error", hookErr.Error()))
		}
	}

	var runErr error
loop:
	for _, path := range discovery.Files {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
			report.Summary.Cancelled = true
			logger.Info("Batch conversion cancelled", slog.String("reason", runErr.Error()))
			break loop
		default:
		}

		if hookErr := c.hooks.OnFileStatusUpdate(path, StatusProcessing, "", 0); hookErr != nil {
			logger.Warn("Event hook OnFileStatusUpdate (Processing) failed", slog.String("path", path), slog.String("error", hookErr.Error()))
		}
		fileStart := time.Now()
		res, err := c.Convert(path, string(dst), mode, loggingEnabled)
		if err != nil {
			logger.Debug("File conversion failed", slog.String("path", path), slog.String("error", err.Error()))
			report.Errors = append(report.Errors, ErrorInfo{Path: path, Error: err.Error(), IsDomain: IsDomainError(err)})
			if hookErr := c.hooks.OnFileStatusUpdate(path, StatusFailed, err.Error(), time.Since(fileStart)); hookErr != nil {
				logger.Warn("Event hook OnFileStatusUpdate (Failed) failed", slog.String("path", path), slog.String("error", hookErr.Error()))
			}
			continue
		}
		report.ConvertedFiles = append(report.ConvertedFiles, newFileResult(res))
		if hookErr := c.hooks.OnFileStatusUpdate(path, StatusSuccess, res.OutputPath, res.Duration); hookErr != nil {
			logger.Warn("Event hook OnFileStatusUpdate (Success) failed", slog.String("path", path), slog.String("error", hookErr.Error()))
		}
	}

	report.Summary.SucceededCount = len(report.ConvertedFiles)
	report.Summary.FailedCount = len(report.Errors)
	report.Summary.DurationSeconds = time.Since(startTime).Seconds()

	if hookErr := c.hooks.OnRunComplete(report); hookErr != nil {
		logger.Warn("Error reported by OnRunComplete hook", slog.String("hookError", hookErr.Error()))
	}
	logger.Debug("Batch conversion finished",
		slog.Int("succeeded", report.Summary.SucceededCount),
		slog.Int("failed", report.Summary.FailedCount))
	return report, runErr
}

// --- END OF FINAL REVISED FILE pkg/converter/batch.go ---
