// --- START OF FINAL REVISED FILE pkg/converter/score.go ---
package converter

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// markdownListMarkers are the line prefixes counted as list structure in Markdown output.
var markdownListMarkers = []string{"- ", "* ", "1. "}

// ComputeQualityScore returns a bounded heuristic of output richness in [0, 1].
// It combines a length component with a per-format structure component and is
// deterministic. Empty output scores 0 in every format.
func ComputeQualityScore(converted string, dst Format) float64 {
	if converted == "" {
		return 0
	}
	lengthScore := min(float64(utf8.RuneCountInString(converted))/ScoreLengthCap, 1)

	var structureScore float64
	switch dst {
	case FormatMD:
		markers := 0
		for _, line := range strings.Split(converted, "\n") {
			trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
			if strings.HasPrefix(trimmed, "#") {
				markers++
			}
			for _, marker := range markdownListMarkers {
				if strings.HasPrefix(trimmed, marker) {
					markers++
					break
				}
			}
		}
		structureScore = min(float64(markers)/ScoreStructureCap, 1)
	case FormatHTML, FormatDocx:
		paragraphs := strings.Count(converted, "\n\n") + 1
		structureScore = min(float64(paragraphs)/ScoreStructureCap, 1)
	}

	score := ScoreLengthWeight*lengthScore + ScoreStructureWeight*structureScore
	return max(0, min(score, 1))
}

// --- END OF FINAL REVISED FILE pkg/converter/score.go ---
