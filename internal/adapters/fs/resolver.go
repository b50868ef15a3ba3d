package fs

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/restyle/internal/core/domain"
	"go.trai.ch/restyle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceResolver = (*Resolver)(nil)

// recursivePrefix marks a pattern that matches base names at any depth.
const recursivePrefix = "**/"

// Resolver implements ports.SourceResolver using filepath.Glob.
// A pattern starting with "**/" matches its remainder against file names
// at any depth below root.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// Resolve returns the sorted, deduplicated stylesheets matching patterns under root.
// Partials (base name starting with "_") are excluded; they are only reachable through imports.
func (r *Resolver) Resolve(root string, patterns []string) ([]string, error) {
	uniquePaths := make(map[string]struct{})

	for _, pattern := range patterns {
		matches, err := r.match(root, pattern)
		if err != nil {
			return nil, err
		}

		for _, match := range matches {
			if strings.HasPrefix(filepath.Base(match), domain.PartialPrefix) {
				continue
			}
			abs, err := filepath.Abs(match)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrGlobFailed.Error()), "path", match)
			}
			uniquePaths[abs] = struct{}{}
		}
	}

	result := make([]string, 0, len(uniquePaths))
	for path := range uniquePaths {
		result = append(result, path)
	}
	slices.Sort(result)

	return result, nil
}

func (r *Resolver) match(root, pattern string) ([]string, error) {
	if rest, ok := strings.CutPrefix(pattern, recursivePrefix); ok {
		// Validate the remainder so malformed patterns fail loudly instead of matching nothing.
		if _, err := filepath.Match(rest, ""); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrGlobFailed.Error()), "pattern", pattern)
		}
		var matches []string
		for path := range r.walker.Match(root, rest) {
			matches = append(matches, path)
		}
		return matches, nil
	}

	matches, err := filepath.Glob(filepath.Join(root, pattern))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrGlobFailed.Error()), "pattern", pattern)
	}
	return matches, nil
}
