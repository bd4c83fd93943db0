// --- START OF FINAL REVISED FILE pkg/util/util.go ---
package util

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SplitExt splits a path into its directory, file stem and extension.
// Only the last extension is split off ("report.tar.docx" -> "report.tar", ".docx").
// A leading dot on its own is part of the stem (".rels" has no extension).
func SplitExt(path string) (dir, stem, ext string) {
	dir = filepath.Dir(path)
	base := filepath.Base(path)
	ext = filepath.Ext(base)
	if ext == base {
		// Dotfile such as ".profile": treat the whole name as the stem.
		ext = ""
	}
	stem = strings.TrimSuffix(base, ext)
	return dir, stem, ext
}

// ReplaceExt returns path with its last extension replaced by newExt.
// newExt may be given with or without the leading dot.
func ReplaceExt(path, newExt string) string {
	if newExt != "" && !strings.HasPrefix(newExt, ".") {
		newExt = "." + newExt
	}
	dir, stem, _ := SplitExt(path)
	return filepath.Join(dir, stem+newExt)
}

// UniquePath returns candidate if nothing exists there, otherwise the first free
// "stem (n).ext" sibling for n = 1, 2, ...
// The returned path did not exist at the time of the check; callers that must never
// overwrite should still create the file exclusively.
func UniquePath(candidate string) (string, error) {
	dir, stem, ext := SplitExt(candidate)
	path := candidate
	for counter := 1; ; counter++ {
		exists, err := Exists(path)
		if err != nil {
			return "", fmt.Errorf("cannot check output path %q: %w", path, err)
		}
		if !exists {
			return path, nil
		}
		path = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, counter, ext))
	}
}

// Exists reports whether anything (file, directory or broken link) exists at path.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// MatchesAnyPattern checks a base file name against a list of glob patterns
// (filepath.Match syntax). Malformed patterns never match.
func MatchesAnyPattern(name string, patterns []string) (bool, string) {
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if match, _ := filepath.Match(pattern, name); match {
			return true, pattern
		}
	}
	return false, ""
}

// CreateExclusive writes data to a new file at path. It fails with fs.ErrExist when
// anything already exists there. A file left incomplete by a failed write or close is
// removed again.
func CreateExclusive(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	return finishWrite(f, path, data)
}

// finishWrite writes data to f, closes it and removes path if either step failed.
func finishWrite(f io.WriteCloser, path string, data []byte) error {
	_, err := f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}

// --- END OF FINAL REVISED FILE pkg/util/util.go ---
