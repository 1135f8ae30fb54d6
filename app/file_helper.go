package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// FileHelper discovers report files on the local filesystem
type FileHelper struct {
	workDir string
}

// NewFileHelper creates a FileHelper rooted at the working directory
func NewFileHelper() *FileHelper {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return &FileHelper{workDir: wd}
}

// NewFileHelperAt creates a FileHelper rooted at dir
func NewFileHelperAt(dir string) *FileHelper {
	return &FileHelper{workDir: dir}
}

// WorkDir returns the directory relative patterns are resolved against
func (h *FileHelper) WorkDir() string {
	return h.workDir
}

// SplitPattern splits a multi-line pattern into include globs and exclude
// globs (lines starting with "!"). Blank lines and "#" comments are dropped.
func SplitPattern(pattern string) (includes, excludes []string) {
	for _, line := range strings.Split(pattern, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "!") {
			if ex := strings.TrimSpace(strings.TrimPrefix(line, "!")); ex != "" {
				excludes = append(excludes, ex)
			}
			continue
		}
		includes = append(includes, line)
	}
	return includes, excludes
}

// Discover expands pattern into absolute file paths. Matches keep the order
// of the include lines, then lexical walk order; duplicates are dropped.
func (h *FileHelper) Discover(pattern string, excludes []string) ([]string, error) {
	includes, negated := SplitPattern(pattern)
	if len(includes) == 0 {
		return nil, fmt.Errorf("pattern %q has no include globs", pattern)
	}

	var matcher *ignore.GitIgnore
	if all := append(negated, excludes...); len(all) > 0 {
		matcher = ignore.CompileIgnoreLines(all...)
	}

	seen := make(map[string]bool)
	var files []string
	for _, inc := range includes {
		if !doublestar.ValidatePathPattern(inc) {
			return nil, fmt.Errorf("invalid glob %q: %w", inc, doublestar.ErrBadPattern)
		}
		if !filepath.IsAbs(inc) {
			inc = filepath.Join(h.workDir, inc)
		}

		matches, err := doublestar.FilepathGlob(inc, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
		if err != nil {
			return nil, fmt.Errorf("failed to expand %q: %w", inc, err)
		}

		for _, m := range matches {
			abs, err := filepath.Abs(m)
			if err != nil {
				return nil, err
			}
			if seen[abs] || h.isExcluded(matcher, abs) {
				continue
			}
			seen[abs] = true
			files = append(files, abs)
		}
	}

	return files, nil
}

// isExcluded matches a path, relative to the working directory, against the exclusions
func (h *FileHelper) isExcluded(matcher *ignore.GitIgnore, path string) bool {
	if matcher == nil {
		return false
	}
	rel, err := filepath.Rel(h.workDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = path
	}
	return matcher.MatchesPath(filepath.ToSlash(rel))
}
