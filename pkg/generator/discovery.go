package generator

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DiscoverFiles walks rootDir applying the include/exclude globs from
// cfg. Returns a sorted slice of absolute paths so downstream phases
// and the merged output are deterministic.
func DiscoverFiles(rootDir string, cfg Config) ([]string, error) {
	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern: %s", pattern)
		}
	}
	for _, pattern := range cfg.Include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern: %s", pattern)
		}
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}
	if info, err := os.Stat(absRoot); err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", rootDir, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", rootDir)
	}

	var files []string

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Keep walking past unreadable entries.
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		// Exclusions apply to directories and files alike so a
		// matched directory prunes its whole subtree.
		for _, pattern := range cfg.Exclude {
			matched, _ := doublestar.PathMatch(pattern, relPath)
			if matched {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() {
			return nil
		}

		if len(cfg.Include) > 0 {
			matched := false
			for _, pattern := range cfg.Include {
				if m, _ := doublestar.PathMatch(pattern, relPath); m {
					matched = true
					break
				}
			}
			if !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
