// --- START OF FINAL REVISED FILE pkg/converter/types_test.go ---
package converter_test

import (
	"errors"
	"testing"

	"github.com/stackvity/sovereign-doc/pkg/converter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStatusConstants verifies the string values of Status constants.
func TestStatusConstants(t *testing.T) {
	assert.Equal(t, "pending", string(converter.StatusPending))
	assert.Equal(t, "processing", string(converter.StatusProcessing))
	assert.Equal(t, "success", string(converter.StatusSuccess))
	assert.Equal(t, "failed", string(converter.StatusFailed))
	assert.Equal(t, "skipped", string(converter.StatusSkipped))
}

// TestModeConstants verifies the labels written to the run log.
func TestModeConstants(t *testing.T) {
	assert.Equal(t, "cli-single", string(converter.ModeCLISingle))
	assert.Equal(t, "cli-batch", string(converter.ModeCLIBatch))
	assert.Equal(t, "gui-single", string(converter.ModeGUISingle))
	assert.Equal(t, "gui-batch", string(converter.ModeGUIBatch))
	assert.Equal(t, "core", string(converter.ModeCore))
}

// TestReportFormatConstants verifies the string values of ReportFormat constants.
func TestReportFormatConstants(t *testing.T) {
	assert.Equal(t, "text", string(converter.ReportFormatText))
	assert.Equal(t, "json", string(converter.ReportFormatJSON))
	assert.Equal(t, "yaml", string(converter.ReportFormatYAML))
	assert.Equal(t, "markdown", string(converter.ReportFormatMarkdown))
}

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		token    string
		expected converter.Format
	}{
		{"txt", converter.FormatText},
		{"MD", converter.FormatMD},
		{" Html ", converter.FormatHTML},
		{"DocX", converter.FormatDocx},
	}
	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			f, err := converter.ParseFormat(tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, f)
		})
	}

	for _, bad := range []string{"", "pdf", "markdown", ".md"} {
		t.Run("reject "+bad, func(t *testing.T) {
			_, err := converter.ParseFormat(bad)
			require.Error(t, err)
			assert.True(t, errors.Is(err, converter.ErrFormat))
			assert.True(t, converter.IsDomainError(err))
		})
	}
}

func TestSourceFormatFromPath(t *testing.T) {
	f, err := converter.SourceFormatFromPath("/a/b/Report.DOCX")
	require.NoError(t, err)
	assert.Equal(t, converter.FormatDocx, f)

	f, err = converter.SourceFormatFromPath("notes.txt")
	require.NoError(t, err)
	assert.Equal(t, converter.FormatText, f)

	f, err = converter.SourceFormatFromPath("readme.md")
	require.NoError(t, err)
	assert.Equal(t, converter.FormatMD, f)

	for _, bad := range []string{"page.html", "archive.zip", "noext", ".md.bak", ".md", "/notes/.docx"} {
		_, err := converter.SourceFormatFromPath(bad)
		assert.ErrorIs(t, err, converter.ErrFormat, bad)
	}
}

func TestFormatListsAreCopies(t *testing.T) {
	src := converter.SourceFormats()
	src[0] = "mutated"
	assert.Equal(t, converter.FormatDocx, converter.SourceFormats()[0])
	assert.Len(t, converter.DestinationFormats(), 4)
	assert.Equal(t, ".html", converter.FormatHTML.Ext())
}

// --- END OF FINAL REVISED FILE pkg/converter/types_test.go ---
