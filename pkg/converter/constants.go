// --- START OF FINAL REVISED FILE pkg/converter/constants.go ---
package converter

// Constants defining default values for configuration options.
// These are used when setting up Viper defaults in the configuration loading process.
const (
	// DefaultLogEnabled is the default state of the CSV run log.
	DefaultLogEnabled = true
	// DefaultEncoding is the fallback charset for non-UTF-8 text sources without a BOM.
	// Empty means the detector's own guess is used.
	DefaultEncoding = ""
	// DefaultVerbose is the default state for verbose logging.
	DefaultVerbose = false
	// DefaultReportFormat is the default format for the batch summary.
	DefaultReportFormat = ReportFormatText
	// DefaultMode labels conversions started through the package-level Convert.
	DefaultMode = ModeCore
)

// Quality score tuning. These values are part of the run log format and must not change.
const (
	// ScoreLengthCap is the rune count at which the length component saturates.
	ScoreLengthCap = 10000.0
	// ScoreStructureCap is the marker/paragraph count at which the structure component saturates.
	ScoreStructureCap = 50.0
	// ScoreLengthWeight weights the length component.
	ScoreLengthWeight = 0.4
	// ScoreStructureWeight weights the structure component.
	ScoreStructureWeight = 0.6
)

// Constants related to report schema.
const (
	// ReportSchemaVersion indicates the version of the batch report structure.
	ReportSchemaVersion = "1.0"
)

// Constants defining skip reasons used in the Report.
const (
	SkipReasonIgnored = "ignored_pattern"
)

// --- END OF FINAL REVISED FILE pkg/converter/constants.go ---
