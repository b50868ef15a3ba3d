package ports

import "go.trai.ch/restyle/internal/core/domain"

// ImportExtractor finds the files a stylesheet imports directly.
//
//go:generate mockgen -source=imports.go -destination=mocks/mock_imports.go -package=mocks
type ImportExtractor interface {
	// ExtractImports returns the top-level imports of text in source order.
	ExtractImports(text string) ([]domain.ImportSpec, error)

	// ResolveImport resolves spec against the directory of the importing file.
	ResolveImport(spec domain.ImportSpec, fromDir string) string
}
