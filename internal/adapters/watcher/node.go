package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/restyle/internal/adapters/logger"
	"go.trai.ch/restyle/internal/core/ports"
)

// NodeID is the unique identifier for the watcher factory Graft node.
const NodeID graft.ID = "adapter.watcher"

// Factory opens a new watcher. Each watch session owns its fsnotify handle,
// so commands that never watch never open one.
type Factory func() (ports.Watcher, error)

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (Factory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return func() (ports.Watcher, error) {
				w, err := NewWatcher(log)
				if err != nil {
					return nil, err
				}
				return w, nil
			}, nil
		},
	})
}
