package ports

import "go.trai.ch/restyle/internal/core/domain"

// Transform is an opaque stylesheet plugin: text in, text out, or failure.
// For a fixed configuration it must be a pure function of its input text.
//
//go:generate mockgen -source=transform.go -destination=mocks/mock_transform.go -package=mocks
type Transform = domain.Transform

// TransformRegistry builds plugin chains from configured names.
type TransformRegistry interface {
	// Chain returns the transforms for names, in order.
	Chain(names []string) ([]domain.Transform, error)
}
