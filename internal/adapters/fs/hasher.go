package fs

import (
	"io"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/restyle/internal/core/domain"
	"go.trai.ch/zerr"
)

// Hasher computes content digests of compiled stylesheets.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ETag returns a strong HTTP entity tag for the file at path.
func (h *Hasher) ETag(path string) (string, error) {
	sum, err := h.ComputeFileHash(path)
	if err != nil {
		return "", err
	}
	return strconv.Quote(strconv.FormatUint(sum, 16)), nil
}
