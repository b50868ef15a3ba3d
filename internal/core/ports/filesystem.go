package ports

import "time"

//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks

// FileSystem reads sources and materializes outputs.
type FileSystem interface {
	// ReadFile returns the content of path.
	// Errors wrap fs.ErrNotExist when the file is missing.
	ReadFile(path string) (string, error)

	// EnsureDir creates dir and its parents if needed.
	EnsureDir(dir string) error

	// WriteFile replaces the content of path. Readers never observe a partial write.
	WriteFile(path, content string) error

	// SetModTime sets the modification time of path.
	SetModTime(path string, mtime time.Time) error
}

// SourceResolver discovers the stylesheets of a project.
type SourceResolver interface {
	// Resolve returns the sorted absolute paths matching patterns under root.
	Resolve(root string, patterns []string) ([]string, error)
}
