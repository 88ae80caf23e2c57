// Package walker enumerates candidate files beneath a project root.
//
// Traversal prunes excluded directories top-down, so nothing inside an
// excluded subtree is ever considered. Entries are visited in sorted order
// per directory to keep downstream output reproducible.
package walker

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"codesum/internal/logging"
)

// ErrInvalidRoot marks a root path that is missing or not a directory.
var ErrInvalidRoot = errors.New("invalid root")

// Candidate is one file selected by the walk.
type Candidate struct {
	// Path is the absolute location on disk.
	Path string
	// RelPath is relative to the walk root, with forward-slash separators.
	RelPath string
	// Ext is the requested extension that matched, as supplied by the caller.
	Ext string
}

// Rules decides which directories are pruned from traversal. Matching is
// case-insensitive on the bare directory name at every depth.
type Rules struct {
	names    map[string]struct{}
	suffixes []string
}

// Directory names and auto-generated project suffixes excluded by default.
var (
	defaultExcludedNames    = []string{"bin", "obj", "resources", "assets"}
	defaultExcludedSuffixes = []string{".droid", ".winui"}
)

// NewRules builds exclusion rules from the fixed defaults plus extra
// directory names supplied by the caller.
func NewRules(extraNames []string) Rules {
	names := make(map[string]struct{}, len(defaultExcludedNames)+len(extraNames))
	for _, name := range defaultExcludedNames {
		names[name] = struct{}{}
	}
	for _, name := range extraNames {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			names[name] = struct{}{}
		}
	}
	return Rules{names: names, suffixes: defaultExcludedSuffixes}
}

// ExcludesDir reports whether a directory with the given bare name is pruned.
func (r Rules) ExcludesDir(name string) bool {
	lower := strings.ToLower(name)
	if _, ok := r.names[lower]; ok {
		return true
	}
	for _, suffix := range r.suffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// Walk returns every file under root whose lower-cased name ends with one of
// the requested extensions. Extensions are checked in caller order; the first
// match labels the candidate and a file is reported at most once.
//
// Only an invalid or unlistable root fails the walk. A nested directory that
// cannot be listed is logged and skipped, so one bad permission bit cannot
// empty the whole run.
func Walk(root string, extensions []string, rules Rules, logger *slog.Logger) ([]Candidate, error) {
	log := logging.NewComponentLogger(logger, "walker")

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRoot, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve %s: %v", ErrInvalidRoot, root, err)
	}

	lowered := make([]string, len(extensions))
	for i, ext := range extensions {
		lowered[i] = strings.ToLower(ext)
	}

	var candidates []Candidate
	var visit func(dir, rel string) error
	visit = func(dir, rel string) error {
		// os.ReadDir sorts by filename, which pins traversal order.
		entries, err := os.ReadDir(dir)
		if err != nil {
			if rel == "" {
				return fmt.Errorf("list %s: %w", dir, err)
			}
			log.Warn("skipping unreadable directory",
				logging.Args(logging.String(logging.FieldPath, rel), logging.Error(err))...)
			return nil
		}

		for _, entry := range entries {
			name := entry.Name()
			childRel := name
			if rel != "" {
				childRel = rel + "/" + name
			}
			if entry.IsDir() {
				if rules.ExcludesDir(name) {
					continue
				}
				if err := visit(filepath.Join(dir, name), childRel); err != nil {
					return err
				}
				continue
			}
			lowerName := strings.ToLower(name)
			for i, ext := range lowered {
				if strings.HasSuffix(lowerName, ext) {
					candidates = append(candidates, Candidate{
						Path:    filepath.Join(dir, name),
						RelPath: childRel,
						Ext:     extensions[i],
					})
					break
				}
			}
		}
		return nil
	}

	if err := visit(absRoot, ""); err != nil {
		return nil, err
	}
	return candidates, nil
}
