package fs

import (
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/restyle/internal/core/domain"
	"go.trai.ch/restyle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*Files)(nil)

// Files implements ports.FileSystem on the local disk.
type Files struct{}

// NewFiles creates a new Files.
func NewFiles() *Files {
	return &Files{}
}

// ReadFile returns the content of path. The returned error wraps
// fs.ErrNotExist when the file is missing.
func (f *Files) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	return string(data), nil
}

// EnsureDir creates dir and its parents. It is idempotent and safe to call concurrently.
func (f *Files) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDirCreateFailed.Error()), "dir", dir)
	}
	return nil
}

// WriteFile writes content to a temporary file next to path and renames it
// into place, so a failed write never leaves a truncated output behind.
func (f *Files) WriteFile(path, content string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()

	// Remove the temp file on any failure path.
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}

	committed = true
	return nil
}

// SetModTime sets both the access and modification time of path to mtime.
func (f *Files) SetModTime(path string, mtime time.Time) error {
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	return nil
}
