// --- START OF FINAL REVISED FILE pkg/converter/constants_test.go ---
package converter_test

import (
	"testing"

	"github.com/stackvity/sovereign-doc/pkg/converter"
	"github.com/stretchr/testify/assert"
)

// TestDefaultConfigurationConstants verifies default configuration constants.
func TestDefaultConfigurationConstants(t *testing.T) {
	assert.True(t, converter.DefaultLogEnabled)
	assert.Equal(t, "", converter.DefaultEncoding)
	assert.False(t, converter.DefaultVerbose)
	assert.Equal(t, converter.ReportFormatText, converter.DefaultReportFormat)
	assert.Equal(t, converter.ModeCore, converter.DefaultMode)
}

// TestScoreConstants pins the score tuning values used by the run log.
func TestScoreConstants(t *testing.T) {
	assert.Equal(t, 10000.0, converter.ScoreLengthCap)
	assert.Equal(t, 50.0, converter.ScoreStructureCap)
	assert.Equal(t, 0.4, converter.ScoreLengthWeight)
	assert.Equal(t, 0.6, converter.ScoreStructureWeight)
	assert.InDelta(t, 1.0, converter.ScoreLengthWeight+converter.ScoreStructureWeight, 1e-9)
}

// --- END OF FINAL REVISED FILE pkg/converter/constants_test.go ---
