package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bennypowers.dev/vss/internal/collections"
	"github.com/bmatcuk/doublestar/v4"
)

// ErrNoInput is returned when no pattern is given
var ErrNoInput = errors.New("no input pattern")

// isVue reports whether path has a .vue extension, in any case
func isVue(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".vue")
}

// Discover expands a glob pattern (with ** support) into the .vue files it
// matches. A path to an existing file is returned as-is, and a directory
// is searched recursively.
func Discover(pattern string) ([]string, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, ErrNoInput
	}

	if info, err := os.Stat(pattern); err == nil {
		if !info.IsDir() {
			return []string{pattern}, nil
		}
		pattern = filepath.Join(pattern, "**", "*.vue")
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	var files []string
	for _, match := range matches {
		if isVue(match) {
			files = append(files, match)
		}
	}
	sort.Strings(files)
	return files, nil
}

// DiscoverAll expands every pattern, dropping files matched more than once
func DiscoverAll(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, ErrNoInput
	}

	seen := collections.NewSet[string]()
	var files []string
	for _, pattern := range patterns {
		matches, err := Discover(pattern)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if seen.Insert(filepath.Clean(match)) {
				files = append(files, match)
			}
		}
	}
	return files, nil
}
