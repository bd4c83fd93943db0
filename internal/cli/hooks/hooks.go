// --- START OF FINAL REVISED FILE internal/cli/hooks/hooks.go ---
package hooks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/stackvity/sovereign-doc/pkg/converter"
)

// CLIHooks implements the converter.Hooks interface, bridging batch events
// to the CLI's progress bar or, in verbose mode, to the logger.
// Per-file result lines are printed by the CLI from the final report.
type CLIHooks struct {
	logger         *slog.Logger
	verboseEnabled bool
	progressBar    ProgressBar // nil when no bar is shown
	barOut         io.Writer   // Where the bar draws; receives a trailing newline on completion
	discovered     int
	mu             sync.Mutex // Protects progressBar and discovered
}

// ProgressBar defines the interface needed to interact with the progress bar.
// *progressbar.ProgressBar satisfies it.
type ProgressBar interface {
	Add(num int) error
	ChangeMax(newMax int)
	Describe(description string)
	Close() error
}

// NoOpProgressBar provides a default null implementation.
type NoOpProgressBar struct{}

// Add implements ProgressBar.
func (n *NoOpProgressBar) Add(num int) error { return nil }

// ChangeMax implements ProgressBar.
func (n *NoOpProgressBar) ChangeMax(newMax int) {}

// Describe implements ProgressBar.
func (n *NoOpProgressBar) Describe(description string) {}

// Close implements ProgressBar.
func (n *NoOpProgressBar) Close() error { return nil }

// NewProgressBar creates the terminal progress bar used for batch runs. The
// maximum starts unknown and grows as files are discovered.
func NewProgressBar(w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Converting"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

// --- Constructor ---

// NewCLIHooks creates a new CLIHooks instance.
// Pass nil for progBar when no bar should be drawn (verbose or non-TTY runs).
func NewCLIHooks(logger *slog.Logger, verboseEnabled bool, progBar ProgressBar, barOut io.Writer) converter.Hooks {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if barOut == nil {
		barOut = io.Discard
	}
	return &CLIHooks{
		logger:         logger,
		verboseEnabled: verboseEnabled,
		progressBar:    progBar,
		barOut:         barOut,
	}
}

// --- Interface Method Implementations ---

// OnFileDiscovered handles the event when a package file is found in the batch folder.
func (h *CLIHooks) OnFileDiscovered(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.discovered++

	if h.verboseEnabled {
		h.logger.Debug("File discovered", slog.String("path", path))
	}
	if h.progressBar != nil {
		h.progressBar.ChangeMax(h.discovered)
	}
	return nil // Library ignores hook errors
}

// OnFileStatusUpdate handles events when a file's processing status changes.
func (h *CLIHooks) OnFileStatusUpdate(path string, status converter.Status, message string, duration time.Duration) error {
	// Verbose Logging Mode
	if h.verboseEnabled {
		logLevel := slog.LevelDebug // Default for most statuses
		logMsg := "File status updated"
		attrs := []any{
			slog.String("path", path),
			slog.String("status", string(status)),
		}
		if duration > 0 {
			attrs = append(attrs, slog.Duration("duration", duration))
		}
		if message != "" {
			logKey := "message"
			switch status {
			case converter.StatusFailed:
				logKey = "error"
			case converter.StatusSuccess:
				logKey = "output"
			}
			attrs = append(attrs, slog.String(logKey, message))
		}

		switch status {
		case converter.StatusSuccess, converter.StatusSkipped:
			logLevel = slog.LevelInfo
		case converter.StatusFailed:
			logLevel = slog.LevelError
			logMsg = "File conversion failed"
		}
		h.logger.Log(context.Background(), logLevel, logMsg, attrs...)
		return nil
	}

	// Progress Bar Mode (Non-Verbose, TTY)
	if h.progressBar != nil {
		h.mu.Lock()
		defer h.mu.Unlock()

		switch status {
		case converter.StatusProcessing:
			h.progressBar.Describe(fmt.Sprintf("Converting %s", filepath.Base(path)))
		case converter.StatusSuccess, converter.StatusFailed:
			// Skipped files were never counted in the maximum.
			_ = h.progressBar.Add(1)
		}
	}
	return nil // Library ignores hook errors
}

// OnRunComplete finalizes the progress bar. The summary itself is printed by the CLI.
func (h *CLIHooks) OnRunComplete(report converter.Report) error {
	if h.progressBar == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_ = h.progressBar.Close() // Ignore error closing bar
	// Add a newline after the progress bar finishes to prevent overlap with the summary.
	_, _ = fmt.Fprintln(h.barOut)
	return nil // Library ignores hook errors
}

// --- END OF FINAL REVISED FILE internal/cli/hooks/hooks.go ---
