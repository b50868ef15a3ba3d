package ports

import (
	"context"
	"iter"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates a file or directory was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed.
	OpRename
)

func (op WatchOp) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpWrite:
		return "write"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// WatchEvent is a change below a watched stylesheet directory.
type WatchEvent struct {
	// Path is the absolute path that changed.
	Path string
	// Operation is the type of change.
	Operation WatchOp
}

// Watcher watches a source tree for changes.
type Watcher interface {
	// Start begins watching root recursively until ctx is done or Stop is called.
	Start(ctx context.Context, root string) error
	// Stop releases the watcher.
	Stop() error
	// Events yields changes until the watcher stops.
	Events() iter.Seq[WatchEvent]
}
