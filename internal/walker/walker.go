package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// reviewableExtensions is the fixed allow-list of source file extensions the
// review engine understands.
var reviewableExtensions = map[string]bool{
	".py":   true,
	".js":   true,
	".java": true,
	".c":    true,
	".cpp":  true,
	".go":   true,
	".rs":   true,
	".rb":   true,
	".php":  true,
	".ts":   true,
	".jsx":  true,
	".tsx":  true,
}

// Options control a traversal.
type Options struct {
	Recursive bool
	// ExcludePatterns are glob-ish suffix patterns from the config. A
	// directory is skipped when its name equals a pattern with the stars
	// stripped; a file is skipped when its name ends with one.
	ExcludePatterns []string
}

// Reviewable reports whether path carries an allow-listed extension.
func Reviewable(path string) bool {
	return reviewableExtensions[strings.ToLower(filepath.Ext(path))]
}

// List returns the reviewable unit paths under root in walk order.
func List(root string, opts Options) ([]string, error) {
	if opts.Recursive {
		return listRecursive(root, opts.ExcludePatterns)
	}
	return listFlat(root, opts.ExcludePatterns)
}

func listRecursive(root string, patterns []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && excludedDir(d.Name(), patterns) {
				return fs.SkipDir
			}
			return nil
		}
		if excludedFile(d.Name(), patterns) || !Reviewable(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}

func listFlat(root string, patterns []string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", root, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || excludedFile(e.Name(), patterns) {
			continue
		}
		path := filepath.Join(root, e.Name())
		if Reviewable(path) {
			files = append(files, path)
		}
	}
	return files, nil
}

func excludedDir(name string, patterns []string) bool {
	for _, p := range patterns {
		if name == strings.ReplaceAll(p, "*", "") {
			return true
		}
	}
	return false
}

func excludedFile(name string, patterns []string) bool {
	for _, p := range patterns {
		suffix := strings.ReplaceAll(p, "*", "")
		if suffix != "" && strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
