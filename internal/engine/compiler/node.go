package compiler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/restyle/internal/adapters/fs"
	"go.trai.ch/restyle/internal/adapters/graphcache"
	"go.trai.ch/restyle/internal/adapters/logger"
	"go.trai.ch/restyle/internal/adapters/stylesheet"
	"go.trai.ch/restyle/internal/adapters/telemetry"
	"go.trai.ch/restyle/internal/core/ports"
	"go.trai.ch/restyle/internal/engine/staleness"
)

// NodeID is the unique identifier for the compiler Graft node.
const NodeID graft.ID = "engine.compiler"

func init() {
	graft.Register(graft.Node[*Compiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.FilesNodeID,
			fs.OracleNodeID,
			stylesheet.ExtractorNodeID,
			graphcache.NodeID,
			staleness.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Compiler, error) {
			files, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			oracle, err := graft.Dep[ports.TimestampOracle](ctx)
			if err != nil {
				return nil, err
			}
			extractor, err := graft.Dep[*stylesheet.Extractor](ctx)
			if err != nil {
				return nil, err
			}
			graph, err := graft.Dep[ports.DependencyGraphCache](ctx)
			if err != nil {
				return nil, err
			}
			evaluator, err := graft.Dep[*staleness.Evaluator](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(files, oracle, extractor, graph, evaluator, tracer, log), nil
		},
	})
}
