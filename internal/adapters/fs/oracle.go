package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"time"

	"go.trai.ch/restyle/internal/core/domain"
	"go.trai.ch/restyle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TimestampOracle = (*Oracle)(nil)

// Oracle implements ports.TimestampOracle with os.Stat.
type Oracle struct{}

// NewOracle creates a new Oracle.
func NewOracle() *Oracle {
	return &Oracle{}
}

// ModTime returns the modification time of path, reporting a missing path
// as ok == false rather than as an error.
func (o *Oracle) ModTime(path string) (time.Time, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}
	return info.ModTime(), true, nil
}
