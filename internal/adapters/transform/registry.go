// Package transform provides the stylesheet plugins and the registry that
// builds plugin chains from configuration.
package transform

import (
	"go.trai.ch/restyle/internal/core/domain"
	"go.trai.ch/restyle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TransformRegistry = (*Registry)(nil)

// Registry implements ports.TransformRegistry over a fixed set of plugins.
type Registry struct {
	plugins map[string]domain.Transform
}

// NewRegistry creates a Registry holding plugins, keyed by their names.
// A later plugin replaces an earlier one with the same name.
func NewRegistry(plugins ...domain.Transform) *Registry {
	r := &Registry{plugins: make(map[string]domain.Transform, len(plugins))}
	for _, p := range plugins {
		r.plugins[p.Name()] = p
	}
	return r
}

// Chain returns the plugins for names in order. Names may repeat.
func (r *Registry) Chain(names []string) ([]domain.Transform, error) {
	chain := make([]domain.Transform, 0, len(names))
	for _, name := range names {
		p, ok := r.plugins[name]
		if !ok {
			return nil, zerr.With(domain.ErrUnknownPlugin, "plugin", name)
		}
		chain = append(chain, p)
	}
	return chain, nil
}
