package graphcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/restyle/internal/core/ports"
)

const (
	// CacheNodeID is the unique identifier for the concrete graph cache Graft node.
	CacheNodeID graft.ID = "adapter.graphcache.cache"
	// NodeID is the unique identifier for the graph cache port Graft node.
	NodeID graft.ID = "adapter.graphcache"
)

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        CacheNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Cache, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.DependencyGraphCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{CacheNodeID},
		Run: func(ctx context.Context) (ports.DependencyGraphCache, error) {
			cache, err := graft.Dep[*Cache](ctx)
			if err != nil {
				return nil, err
			}
			return cache, nil
		},
	})
}
