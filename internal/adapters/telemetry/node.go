package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/restyle/internal/adapters/logger"
	"go.trai.ch/restyle/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the tracer Graft node.
	NodeID graft.ID = "adapter.telemetry"
	// BridgeNodeID is the unique identifier for the log bridge Graft node.
	BridgeNodeID graft.ID = "adapter.telemetry.bridge"
)

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return NewOTelTracer(InstrumentationName), nil
		},
	})

	graft.Register(graft.Node[*LogBridge]{
		ID:        BridgeNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*LogBridge, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLogBridge(log), nil
		},
	})
}
