// --- START OF FINAL REVISED FILE pkg/converter/paths.go ---
package converter

import (
	"fmt"

	"github.com/stackvity/sovereign-doc/pkg/util"
)

// OutputPathFor derives the output path for inputPath converted to dst: same
// directory and stem with the destination extension, or the first free
// "stem (n).ext" sibling when that is taken.
func OutputPathFor(inputPath string, dst Format) (string, error) {
	candidate := util.ReplaceExt(inputPath, dst.Ext())
	path, err := util.UniquePath(candidate)
	if err != nil {
		return "", fmt.Errorf("resolve output path for %s: %w", inputPath, err)
	}
	return path, nil
}

// --- END OF FINAL REVISED FILE pkg/converter/paths.go ---
