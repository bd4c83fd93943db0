// --- START OF FINAL REVISED FILE pkg/converter/runlog/runlog.go ---
// Package runlog appends one CSV row per successful conversion to a local log file.
// The file is opened in append mode for every record and is never locked; it is meant
// for a single user running one process at a time.
package runlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultLogFileName is the name of the log file created next to the executable.
const DefaultLogFileName = "sovereign_doc_log.csv"

// TimestampLayout is ISO-8601 at second precision, without a zone.
const TimestampLayout = "2006-01-02T15:04:05"

// Header lists the CSV columns in the order they are written.
var Header = []string{
	"timestamp",
	"input_path",
	"output_path",
	"src_format",
	"dst_format",
	"mode",
	"duration_ms",
	"chars_out",
	"omega_score",
}

// Record is one conversion log entry.
type Record struct {
	Timestamp         time.Time
	InputPath         string
	OutputPath        string
	SourceFormat      string
	DestinationFormat string
	Mode              string
	DurationMs        float64
	CharsOut          int
	OmegaScore        float64
}

// Fields renders the record as CSV fields in Header order.
func (r Record) Fields() []string {
	ts := r.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return []string{
		ts.Format(TimestampLayout),
		r.InputPath,
		r.OutputPath,
		r.SourceFormat,
		r.DestinationFormat,
		r.Mode,
		strconv.FormatFloat(r.DurationMs, 'f', 1, 64),
		strconv.Itoa(r.CharsOut),
		strconv.FormatFloat(r.OmegaScore, 'f', 3, 64),
	}
}

// DefaultPath returns DefaultLogFileName inside the directory of the running
// executable. If the executable cannot be resolved, the current directory is used.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultLogFileName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DefaultLogFileName)
}

// CSVRecorder appends records to a CSV file, writing the header row first when
// the file does not exist yet.
type CSVRecorder struct {
	path string
}

// NewCSVRecorder creates a recorder for path. An empty path selects DefaultPath().
func NewCSVRecorder(path string) *CSVRecorder {
	if path == "" {
		path = DefaultPath()
	}
	return &CSVRecorder{path: path}
}

// Path returns the log file location.
func (r *CSVRecorder) Path() string {
	return r.path
}

// Record appends rec to the log file.
func (r *CSVRecorder) Record(rec Record) error {
	newFile := false
	if _, err := os.Stat(r.path); errors.Is(err, fs.ErrNotExist) {
		newFile = true
	}

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open run log %s: %w", r.path, err)
	}

	w := csv.NewWriter(f)
	w.UseCRLF = true
	if newFile {
		if err := w.Write(Header); err != nil {
			_ = f.Close()
			return fmt.Errorf("write run log header: %w", err)
		}
	}
	if err := w.Write(rec.Fields()); err != nil {
		_ = f.Close()
		return fmt.Errorf("write run log record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush run log: %w", err)
	}
	return f.Close()
}

// NoOpRecorder discards every record.
type NoOpRecorder struct{}

// Record implements the recorder interface. It performs no action.
func (NoOpRecorder) Record(Record) error { return nil }

// --- END OF FINAL REVISED FILE pkg/converter/runlog/runlog.go ---
