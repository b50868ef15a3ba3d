// Package fs provides file system adapters for stat, read, write and discovery of stylesheets.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// DefaultPrune lists directory names discovery never descends into, in
// addition to hidden directories.
var DefaultPrune = []string{"node_modules", "vendor"}

// Walker discovers files for recursive include patterns.
type Walker struct {
	prune map[string]struct{}
}

// NewWalker creates a Walker pruning the named directories, or DefaultPrune
// when none are given.
func NewWalker(prune ...string) *Walker {
	if len(prune) == 0 {
		prune = DefaultPrune
	}
	w := &Walker{prune: make(map[string]struct{}, len(prune))}
	for _, name := range prune {
		w.prune[name] = struct{}{}
	}
	return w
}

// Match yields, in lexical order, every file below root whose base name
// matches pattern. Yielded paths include root. Unreadable directories are
// passed over.
func (w *Walker) Match(root, pattern string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			switch {
			case err != nil:
				return nil //nolint:nilerr // Discovery is best effort
			case entry.IsDir():
				if path != root && w.pruned(entry.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if ok, _ := filepath.Match(pattern, entry.Name()); ok && !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) pruned(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	_, ok := w.prune[name]
	return ok
}
