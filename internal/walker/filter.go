package walker

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultSkipDirs are directory names never descended into.
var DefaultSkipDirs = []string{
	".git",
	"node_modules",
	".idea",
	".vscode",
}

// shouldSkipDir checks whether a directory name matches a default skip
// entry. This is used during traversal to skip entire subtrees.
func shouldSkipDir(name string) bool {
	for _, skip := range DefaultSkipDirs {
		if strings.EqualFold(name, skip) {
			return true
		}
	}
	return false
}

// MatchesExclude returns true if the given relative path matches any of the
// exclude patterns. If patterns is empty, nothing is excluded.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny checks if relPath matches any of the given glob patterns,
// either as a whole or by its base name. Patterns support **.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := filepath.Base(normalized)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.Match(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

// ValidatePatterns reports the first malformed glob pattern.
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return fmt.Errorf("invalid glob pattern %q", pattern)
		}
	}
	return nil
}
