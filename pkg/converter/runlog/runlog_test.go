// --- START OF FINAL REVISED FILE pkg/converter/runlog/runlog_test.go ---
package runlog_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stackvity/sovereign-doc/pkg/converter/runlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() runlog.Record {
	return runlog.Record{
		Timestamp:         time.Date(2024, 3, 9, 14, 5, 7, 999, time.Local),
		InputPath:         "/docs/report.docx",
		OutputPath:        "/docs/report (1).md",
		SourceFormat:      "docx",
		DestinationFormat: "md",
		Mode:              "cli-single",
		DurationMs:        12.345,
		CharsOut:          120,
		OmegaScore:        0.0416,
	}
}

func TestRecordFields_Formatting(t *testing.T) {
	fields := sampleRecord().Fields()

	require.Len(t, fields, len(runlog.Header))
	assert.Equal(t, "2024-03-09T14:05:07", fields[0], "Second precision, no zone")
	assert.Equal(t, "12.3", fields[6], "duration_ms has one decimal")
	assert.Equal(t, "120", fields[7])
	assert.Equal(t, "0.042", fields[8], "omega_score has three decimals")
}

func TestRecordFields_ZeroTimestampUsesNow(t *testing.T) {
	rec := sampleRecord()
	rec.Timestamp = time.Time{}

	ts, err := time.ParseInLocation(runlog.TimestampLayout, rec.Fields()[0], time.Local)

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, 5*time.Second)
}

func TestCSVRecorder_HeaderWrittenOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), runlog.DefaultLogFileName)
	recorder := runlog.NewCSVRecorder(path)

	require.NoError(t, recorder.Record(sampleRecord()))
	second := sampleRecord()
	second.Mode = "cli-batch"
	require.NoError(t, recorder.Record(second))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), strings.Join(runlog.Header, ",")+"\r\n"), "Header row first, CRLF terminated")

	rows, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "One header plus two records")
	assert.Equal(t, runlog.Header, rows[0])
	assert.Equal(t, "cli-single", rows[1][5])
	assert.Equal(t, "cli-batch", rows[2][5])
	assert.Equal(t, "/docs/report (1).md", rows[1][2])
}

func TestCSVRecorder_AppendsToExistingFileWithoutHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.csv")
	require.NoError(t, os.WriteFile(path, []byte("previous,row\r\n"), 0644))

	require.NoError(t, runlog.NewCSVRecorder(path).Record(sampleRecord()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(raw), "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "previous,row", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2024-03-09T14:05:07,"))
}

func TestCSVRecorder_QuotesFieldsWithCommas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	rec := sampleRecord()
	rec.InputPath = "/docs/a, b.docx"

	require.NoError(t, runlog.NewCSVRecorder(path).Record(rec))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "/docs/a, b.docx", rows[1][1])
}

func TestCSVRecorder_UnwritableLocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "log.csv")

	err := runlog.NewCSVRecorder(path).Record(sampleRecord())

	assert.Error(t, err)
}

func TestNewCSVRecorder_DefaultPath(t *testing.T) {
	recorder := runlog.NewCSVRecorder("")

	assert.Equal(t, runlog.DefaultPath(), recorder.Path())
	assert.Equal(t, runlog.DefaultLogFileName, filepath.Base(recorder.Path()))
}

func TestNoOpRecorder(t *testing.T) {
	assert.NoError(t, runlog.NoOpRecorder{}.Record(sampleRecord()))
}

// --- END OF FINAL REVISED FILE pkg/converter/runlog/runlog_test.go ---
