// --- START OF FINAL REVISED FILE pkg/converter/score_test.go ---
package converter_test

import (
	"strings"
	"testing"

	"github.com/stackvity/sovereign-doc/pkg/converter"
	"github.com/stretchr/testify/assert"
)

func TestComputeQualityScore_EmptyIsZero(t *testing.T) {
	for _, dst := range converter.DestinationFormats() {
		assert.Equal(t, 0.0, converter.ComputeQualityScore("", dst), string(dst))
	}
}

func TestComputeQualityScore_Formulas(t *testing.T) {
	testCases := []struct {
		name      string
		converted string
		dst       converter.Format
		expected  float64
	}{
		{
			name:      "Text has no structure component",
			converted: strings.Repeat("a", 5000),
			dst:       converter.FormatText,
			expected:  0.4 * 0.5,
		},
		{
			name:      "Markdown counts headings and list markers on left-trimmed lines",
			converted: "# H\n  - a\n* b\n1. c\n2. d\nplain\n",
			dst:       converter.FormatMD,
			expected:  0.4*(30.0/10000) + 0.6*(4.0/50),
		},
		{
			name:      "HTML counts blank-line boundaries plus one",
			converted: "a\n\nb\n\nc",
			dst:       converter.FormatHTML,
			expected:  0.4*(7.0/10000) + 0.6*(3.0/50),
		},
		{
			name:      "Package output uses the paragraph count too",
			converted: "x",
			dst:       converter.FormatDocx,
			expected:  0.4*(1.0/10000) + 0.6*(1.0/50),
		},
		{
			name:      "Length is measured in runes",
			converted: strings.Repeat("é", 100),
			dst:       converter.FormatText,
			expected:  0.4 * (100.0 / 10000),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, converter.ComputeQualityScore(tc.converted, tc.dst), 1e-9)
		})
	}
}

func TestComputeQualityScore_BoundedAndSaturating(t *testing.T) {
	huge := strings.Repeat("# heading\n\n", 5000)
	for _, dst := range converter.DestinationFormats() {
		score := converter.ComputeQualityScore(huge, dst)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
	assert.InDelta(t, 1.0, converter.ComputeQualityScore(huge, converter.FormatMD), 1e-9)
	assert.InDelta(t, 0.4, converter.ComputeQualityScore(huge, converter.FormatText), 1e-9, "Text caps at the length weight")
}

func TestComputeQualityScore_Deterministic(t *testing.T) {
	input := "# A\n\n- b\n\nc\n"
	first := converter.ComputeQualityScore(input, converter.FormatMD)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, converter.ComputeQualityScore(input, converter.FormatMD))
	}
}

// --- END OF FINAL REVISED FILE pkg/converter/score_test.go ---
