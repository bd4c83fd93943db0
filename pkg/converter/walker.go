// --- START OF FINAL REVISED FILE pkg/converter/walker.go ---
package converter

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/stackvity/sovereign-doc/pkg/util"
)

// IgnoreFileName is an optional file inside a batch directory listing extra
// base-name globs to skip, one per line. Blank lines and lines starting with '#'
// are ignored.
const IgnoreFileName = ".sovereigndocignore"

// Discovery is the result of scanning a batch directory.
type Discovery struct {
	Files   []string      // Absolute paths of package files to convert, sorted by name
	Skipped []SkippedInfo // Package files excluded by an ignore pattern
}

// DiscoverPackages lists the regular *.docx files (extension matched
// case-insensitively) directly inside dir. Subdirectories are not searched. Files
// whose base name matches one of ignorePatterns, or a pattern from the directory's
// IgnoreFileName, are reported as skipped.
func DiscoverPackages(dir string, ignorePatterns []string) (Discovery, error) {
	return discoverPackages(dir, ignorePatterns, slog.New(slog.DiscardHandler))
}

func discoverPackages(dir string, ignorePatterns []string, logger *slog.Logger) (Discovery, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return Discovery{}, fmt.Errorf("could not get absolute path for %s: %w", dir, err)
	}
	info, err := os.Stat(absDir)
	if err != nil || !info.IsDir() {
		return Discovery{}, fmt.Errorf("%w: %s is not a directory", ErrNotFound, dir)
	}

	patterns := append([]string(nil), ignorePatterns...)
	filePatterns, err := loadPatternsFromFile(filepath.Join(absDir, IgnoreFileName))
	if err != nil {
		return Discovery{}, err
	}
	if len(filePatterns) > 0 {
		logger.Debug("Loaded patterns from ignore file", slog.Int("count", len(filePatterns)))
		patterns = append(patterns, filePatterns...)
	}

	// os.ReadDir returns entries sorted by file name.
	entries, err := os.ReadDir(absDir)
	if err != nil {
		return Discovery{}, fmt.Errorf("read batch directory %s: %w", absDir, err)
	}

	var result Discovery
	for _, entry := range entries {
		name := entry.Name()
		if _, _, ext := util.SplitExt(name); !strings.EqualFold(ext, FormatDocx.Ext()) {
			continue
		}
		path := filepath.Join(absDir, name)
		// Stat follows symbolic links, so a link to a package file is converted.
		fi, err := os.Stat(path)
		if err != nil {
			logger.Warn("Error accessing path during discovery", slog.String("path", path), slog.String("error", err.Error()))
			continue
		}
		if !fi.Mode().IsRegular() {
			logger.Debug("Skipping non-regular entry", slog.String("path", path))
			continue
		}
		if matched, pattern := util.MatchesAnyPattern(name, patterns); matched {
			logger.Debug("Path ignored", slog.String("path", path), slog.String("pattern", pattern))
			result.Skipped = append(result.Skipped, SkippedInfo{
				Path:    path,
				Reason:  SkipReasonIgnored,
				Details: fmt.Sprintf("Matched pattern: %s", pattern),
			})
			continue
		}
		result.Files = append(result.Files, path)
	}
	return result, nil
}

// loadPatternsFromFile reads an ignore file and returns its patterns. A missing
// file yields no patterns.
func loadPatternsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open ignore file %s: %w", filePath, err)
	}
	defer file.Close()
	var patterns []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			patterns = append(patterns, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ignore file %s: %w", filePath, err)
	}
	return patterns, nil
}

// --- END OF FINAL REVISED FILE pkg/converter/walker.go ---
