// Package ports defines the core interfaces for the application.
package ports

import "time"

// TimestampOracle looks up file modification times.
//
//go:generate mockgen -source=timestamps.go -destination=mocks/mock_timestamps.go -package=mocks
type TimestampOracle interface {
	// ModTime returns the modification time of path.
	// A path that does not exist is reported as ok == false with a nil error;
	// every other failure is returned as an error.
	ModTime(path string) (mtime time.Time, ok bool, err error)
}
