package transform

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/restyle/internal/adapters/stylesheet"
	"go.trai.ch/restyle/internal/core/ports"
)

// NodeID is the unique identifier for the transform registry Graft node.
const NodeID graft.ID = "adapter.transform.registry"

func init() {
	graft.Register(graft.Node[ports.TransformRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{stylesheet.InlinerNodeID},
		Run: func(ctx context.Context) (ports.TransformRegistry, error) {
			inliner, err := graft.Dep[*stylesheet.Inliner](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(inliner, NewMinifier(), NewBanner()), nil
		},
	})
}
