package staleness

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/restyle/internal/adapters/fs"
	"go.trai.ch/restyle/internal/adapters/graphcache"
	"go.trai.ch/restyle/internal/adapters/logger"
	"go.trai.ch/restyle/internal/core/ports"
)

// NodeID is the unique identifier for the staleness evaluator Graft node.
const NodeID graft.ID = "engine.staleness"

func init() {
	graft.Register(graft.Node[*Evaluator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.OracleNodeID, graphcache.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Evaluator, error) {
			oracle, err := graft.Dep[ports.TimestampOracle](ctx)
			if err != nil {
				return nil, err
			}
			graph, err := graft.Dep[ports.DependencyGraphCache](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(oracle, graph, log), nil
		},
	})
}
