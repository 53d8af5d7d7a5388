// Package pathutil normalizes CLI-supplied path lists and collects item
// definition part files from input directories.
package pathutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// NormalizeList flattens a repeatable flag value into a canonical ordered
// list: comma-joined entries are split, surrounding quotes and whitespace
// are stripped, and empty entries are dropped.
func NormalizeList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			part = strings.Trim(part, `"'`)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// JoinPath collapses a repeated positional path argument into the single
// element path it denotes. Shells split unquoted paths with spaces into
// multiple arguments, so the segments are rejoined with a space.
func JoinPath(values []string) string {
	return strings.Join(NormalizeList(values), " ")
}

// CollectParts walks an input directory and returns the relative
// slash-separated paths of all regular files, sorted. Paths matching any
// of the doublestar exclude patterns are skipped.
func CollectParts(inputDir string, exclude []string) ([]string, error) {
	info, err := os.Stat(inputDir)
	if err != nil {
		return nil, fmt.Errorf("input %q is not accessible: %w", inputDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input %q is not a directory", inputDir)
	}

	var parts []string
	err = filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}
		relSlash := filepath.ToSlash(rel)

		for _, pattern := range exclude {
			ok, err := doublestar.Match(pattern, relSlash)
			if err != nil {
				return fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
			}
			if ok {
				return nil
			}
		}

		parts = append(parts, relSlash)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(parts)
	return parts, nil
}
