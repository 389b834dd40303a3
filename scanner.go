package csstw

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks input discovery statistics
type ScanStats struct {
	FilesDiscovered int // Files matched by the input patterns
	FilesScanned    int // Files kept after filtering
	FilesSkipped    int // Minified or gitignored files
}

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore of the working directory once.
// A missing .gitignore disables the check.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// isMinified reports whether path is a minified stylesheet
func isMinified(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".min.css")
}

// shouldSkipFile determines if a file should be excluded from conversion.
//
// Two-layer filtering:
// 1. Pattern check: skip *.min.css files
// 2. Gitignore check: skip ignored files (relative paths only)
func shouldSkipFile(path string, gi *ignore.GitIgnore) bool {
	if isMinified(path) {
		return true
	}

	// Absolute paths (like /tmp/...) are outside the project gitignore
	if gi != nil && !filepath.IsAbs(path) && gi.MatchesPath(path) {
		return true
	}

	return false
}

// inputPattern turns a directory into a recursive *.css glob
func inputPattern(pattern string) string {
	if info, err := os.Stat(pattern); err == nil && info.IsDir() {
		return filepath.Join(pattern, "**", "*.css")
	}
	return pattern
}

// ExpandInputs expands glob patterns, directories and file names to the CSS
// files to convert, in pattern order without duplicates.
func ExpandInputs(patterns []string) ([]string, ScanStats, error) {
	return expandInputs(patterns, loadGitIgnore())
}

func expandInputs(patterns []string, gi *ignore.GitIgnore) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(inputPattern(pattern))
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(match, gi) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

// GetRelativePath returns a path relative to the working directory
func GetRelativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}

	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(cwd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}

	return rel
}
