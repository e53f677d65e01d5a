// Package walker lists the static assets copied next to a rendered page.
package walker

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileInfo holds metadata about a single asset discovered during traversal.
type FileInfo struct {
	Path        string // Absolute path on disk.
	RelPath     string // Slash-separated path relative to the root directory.
	Size        int64  // File size in bytes.
	ContentHash string // SHA-256 hex digest of the file content.
}

// Config controls the behaviour of Walk.
type Config struct {
	RootDir string   // Root directory to walk.
	Exclude []string // Glob patterns; matching files and directories are skipped.
}

// Walk traverses the directory tree rooted at cfg.RootDir and returns every
// regular file that passes filtering, honouring a .gitignore at the root.
func Walk(cfg Config) ([]FileInfo, error) {
	root, err := filepath.Abs(cfg.RootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve root: %w", err)
	}

	gitignorePatterns := loadGitignore(filepath.Join(root, ".gitignore"))

	var files []FileInfo
	err = WalkDirs(cfg, func(dir string) error { return nil }, func(path, relPath string, d fs.DirEntry) error {
		if matchesGitignore(relPath, gitignorePatterns) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		hash, err := HashFile(path)
		if err != nil {
			return nil
		}
		files = append(files, FileInfo{
			Path:        path,
			RelPath:     relPath,
			Size:        info.Size(),
			ContentHash: hash,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// WalkDirs visits every directory and regular file under cfg.RootDir that
// is not skipped or excluded. relPath is slash-separated.
func WalkDirs(cfg Config, onDir func(dir string) error, onFile func(path, relPath string, d fs.DirEntry) error) error {
	root, err := filepath.Abs(cfg.RootDir)
	if err != nil {
		return fmt.Errorf("walker: resolve root: %w", err)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			// Skip entries we cannot read instead of aborting.
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if path != root && (shouldSkipDir(d.Name()) || MatchesExclude(relPath, cfg.Exclude)) {
				return filepath.SkipDir
			}
			return onDir(path)
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if MatchesExclude(relPath, cfg.Exclude) {
			return nil
		}
		return onFile(path, relPath, d)
	})
	if err != nil {
		return fmt.Errorf("walker: traversal: %w", err)
	}
	return nil
}

// HashFile computes the SHA-256 digest of the given file.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// loadGitignore reads a .gitignore file and returns its non-empty,
// non-comment lines as patterns.
func loadGitignore(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// matchesGitignore checks if a relative path matches any gitignore pattern.
// Patterns without a slash match any path component; others match the
// full relative path.
func matchesGitignore(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	normalized := filepath.ToSlash(relPath)
	parts := strings.Split(normalized, "/")

	for _, pattern := range patterns {
		dirOnly := strings.HasSuffix(pattern, "/")
		pattern = strings.TrimPrefix(strings.TrimSuffix(pattern, "/"), "/")

		if !strings.Contains(pattern, "/") {
			for i, part := range parts {
				matched, _ := filepath.Match(pattern, part)
				if !matched {
					continue
				}
				// A directory-only pattern must match a parent component.
				if !dirOnly || i < len(parts)-1 {
					return true
				}
			}
			continue
		}

		if matched, _ := filepath.Match(pattern, normalized); matched {
			return true
		}
		if strings.HasPrefix(normalized, pattern+"/") {
			return true
		}
	}
	return false
}
