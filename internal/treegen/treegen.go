// Package treegen renders a filtered directory tree as text.
package treegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codesum/internal/walker"
)

// ErrInvalidRoot is returned when the root is missing or not a directory.
var ErrInvalidRoot = walker.ErrInvalidRoot

// Options controls which entries appear in the rendered tree.
type Options struct {
	// ExcludeDirs are exact directory names to hide.
	ExcludeDirs []string
	// ExcludeFiles hide files by suffix; a leading "*" in a pattern is
	// ignored, so "*.dll" and ".gitignore" both work.
	ExcludeFiles []string
}

// Render walks root and returns the tree, one entry per line, directories
// suffixed with a slash. Entries are sorted per directory.
func Render(root string, opts Options) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidRoot, root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}

	dirs := make(map[string]struct{}, len(opts.ExcludeDirs))
	for _, name := range opts.ExcludeDirs {
		dirs[name] = struct{}{}
	}
	suffixes := make([]string, 0, len(opts.ExcludeFiles))
	for _, pattern := range opts.ExcludeFiles {
		if pattern = strings.TrimPrefix(pattern, "*"); pattern != "" {
			suffixes = append(suffixes, pattern)
		}
	}

	var lines []string
	var visit func(dir, prefix string) error
	visit = func(dir, prefix string) error {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("list %s: %w", dir, err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() {
				if _, excluded := dirs[name]; excluded {
					continue
				}
				lines = append(lines, prefix+"├── "+name+"/")
				if err := visit(filepath.Join(dir, name), prefix+"│   "); err != nil {
					return err
				}
				continue
			}
			if fileExcluded(name, suffixes) {
				continue
			}
			lines = append(lines, prefix+"├── "+name)
		}
		return nil
	}

	if err := visit(root, ""); err != nil {
		return "", err
	}
	// An empty or fully excluded root renders as an empty tree, not an error.
	if len(lines) == 0 {
		return "", nil
	}
	return strings.Join(lines, "\n") + "\n", nil
}

func fileExcluded(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
