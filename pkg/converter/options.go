// --- START OF FINAL REVISED FILE pkg/converter/options.go ---
package converter

import (
	"log/slog"
	"time"

	"github.com/stackvity/sovereign-doc/pkg/converter/encoding"
	"github.com/stackvity/sovereign-doc/pkg/converter/runlog"
)

// Hooks defines callbacks for status updates during a batch run.
// Batch runs are sequential, so implementations are called from one goroutine at a time.
type Hooks interface {
	OnFileDiscovered(path string) error
	OnFileStatusUpdate(path string, status Status, message string, duration time.Duration) error
	OnRunComplete(report Report) error
}

// NoOpHooks provides a default, do-nothing implementation of the Hooks interface.
type NoOpHooks struct{}

// OnFileDiscovered implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnFileDiscovered(path string) error { return nil }

// OnFileStatusUpdate implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnFileStatusUpdate(path string, status Status, message string, duration time.Duration) error {
	return nil
}

// OnRunComplete implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnRunComplete(report Report) error { return nil }

// Recorder receives one record per successful conversion when logging is enabled.
// Errors are logged at debug level and never reach the caller of Convert.
type Recorder interface {
	Record(rec runlog.Record) error
}

// PackageReader extracts the flattened paragraph text of a package container.
type PackageReader interface {
	ExtractText(path string) (string, error)
}

// PackageWriter writes text as a package container. It must never overwrite an
// existing file.
type PackageWriter interface {
	WriteFile(path, text string) error
}

// LogOptions configures the CSV run log.
type LogOptions struct {
	Enabled bool   `mapstructure:"enabled"` // Write one record per successful conversion
	File    string `mapstructure:"file"`    // Log file path (empty = next to the executable)
}

// Options holds all configuration for a Converter.
type Options struct {
	// --- Invocation ---
	InputPath         string `mapstructure:"-"`  // File or directory given on the command line
	DestinationFormat string `mapstructure:"to"` // Destination token ("txt", "md", "html", "docx")

	// --- Behavior & Control ---
	ConfigFilePath string       `mapstructure:"-"`       // Path to the loaded config file (for reporting)
	Verbose        bool         `mapstructure:"verbose"` // Enable debug logging
	ReportFormat   ReportFormat `mapstructure:"report"`  // Batch summary format ("text", "json", "yaml", "markdown")
	Log            LogOptions   `mapstructure:"log"`

	// --- File Handling & Filtering ---
	IgnorePatterns  []string `mapstructure:"ignore"`          // Base-name globs skipped during batch discovery
	DefaultEncoding string   `mapstructure:"defaultEncoding"` // Fallback charset for text sources

	// --- Injected Dependencies ---
	EventHooks      Hooks                    `mapstructure:"-"` // Optional: batch callbacks (NoOpHooks if nil)
	Logger          slog.Handler             `mapstructure:"-"` // Optional: logging backend (discarded if nil)
	Recorder        Recorder                 `mapstructure:"-"` // Optional: run log (CSV next to the executable if nil)
	EncodingHandler encoding.EncodingHandler `mapstructure:"-"` // Optional: text decoding implementation
	PackageReader   PackageReader            `mapstructure:"-"` // Optional: package extraction implementation
	PackageWriter   PackageWriter            `mapstructure:"-"` // Optional: package writing implementation
}

// --- END OF FINAL REVISED FILE pkg/converter/options.go ---
