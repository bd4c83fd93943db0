// --- START OF FINAL REVISED FILE pkg/converter/report.go ---
package converter

import "time"

// Report summarizes the result of a single ConvertBatch run.
type Report struct {
	Summary        ReportSummary `json:"summary" yaml:"summary"`
	ConvertedFiles []FileResult  `json:"convertedFiles" yaml:"convertedFiles"`
	SkippedFiles   []SkippedInfo `json:"skippedFiles" yaml:"skippedFiles"`
	Errors         []ErrorInfo   `json:"errors" yaml:"errors"`
}

// ReportSummary contains aggregated statistics for a ConvertBatch run.
type ReportSummary struct {
	InputPath         string    `json:"inputPath" yaml:"inputPath"`
	DestinationFormat Format    `json:"destinationFormat" yaml:"destinationFormat"`
	Mode              Mode      `json:"mode" yaml:"mode"`
	ConfigFilePath    string    `json:"configFilePath,omitempty" yaml:"configFilePath,omitempty"`
	TotalFiles        int       `json:"totalFiles" yaml:"totalFiles"`
	SucceededCount    int       `json:"succeededCount" yaml:"succeededCount"`
	FailedCount       int       `json:"failedCount" yaml:"failedCount"`
	SkippedCount      int       `json:"skippedCount" yaml:"skippedCount"`
	Cancelled         bool      `json:"cancelled" yaml:"cancelled"`
	DurationSeconds   float64   `json:"durationSeconds" yaml:"durationSeconds"`
	Timestamp         time.Time `json:"timestamp" yaml:"timestamp"`
	SchemaVersion     string    `json:"schemaVersion,omitempty" yaml:"schemaVersion,omitempty"`
}

// FileResult details a single file that was converted successfully.
type FileResult struct {
	Path       string  `json:"path" yaml:"path"`
	OutputPath string  `json:"outputPath" yaml:"outputPath"`
	DurationMs float64 `json:"durationMs" yaml:"durationMs"`
	CharsOut   int     `json:"charsOut" yaml:"charsOut"`
	Score      float64 `json:"score" yaml:"score"`
}

// SkippedInfo details a file that was intentionally skipped during a batch run.
type SkippedInfo struct {
	Path    string `json:"path" yaml:"path"`
	Reason  string `json:"reason" yaml:"reason"`
	Details string `json:"details" yaml:"details"`
}

// ErrorInfo details an error encountered while converting a specific file.
// IsDomain distinguishes core-raised errors from internal failures.
type ErrorInfo struct {
	Path     string `json:"path" yaml:"path"`
	Error    string `json:"error" yaml:"error"`
	IsDomain bool   `json:"isDomain" yaml:"isDomain"`
}

// newFileResult converts a single-file Result into its report entry.
func newFileResult(res Result) FileResult {
	return FileResult{
		Path:       res.InputPath,
		OutputPath: res.OutputPath,
		DurationMs: float64(res.Duration) / float64(time.Millisecond),
		CharsOut:   res.CharsOut,
		Score:      res.Score,
	}
}

// --- END OF FINAL REVISED FILE pkg/converter/report.go ---
