package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/restyle/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/restyle/internal/adapters/fs"         //nolint:depguard // Wired in app layer
	"go.trai.ch/restyle/internal/adapters/graphcache" //nolint:depguard // Wired in app layer
	"go.trai.ch/restyle/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/restyle/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/restyle/internal/adapters/transform"  //nolint:depguard // Wired in app layer
	"go.trai.ch/restyle/internal/adapters/watcher"    //nolint:depguard // Wired in app layer
	"go.trai.ch/restyle/internal/core/ports"
	"go.trai.ch/restyle/internal/engine/compiler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ResolverNodeID,
			fs.FilesNodeID,
			fs.HasherNodeID,
			transform.NodeID,
			compiler.NodeID,
			graphcache.CacheNodeID,
			watcher.NodeID,
			telemetry.BridgeNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.SourceResolver](ctx)
	if err != nil {
		return nil, err
	}

	files, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[*fs.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[ports.TransformRegistry](ctx)
	if err != nil {
		return nil, err
	}

	comp, err := graft.Dep[*compiler.Compiler](ctx)
	if err != nil {
		return nil, err
	}

	graph, err := graft.Dep[*graphcache.Cache](ctx)
	if err != nil {
		return nil, err
	}

	newWatcher, err := graft.Dep[watcher.Factory](ctx)
	if err != nil {
		return nil, err
	}

	bridge, err := graft.Dep[*telemetry.LogBridge](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	a := New(loader, resolver, registry, comp, files, hasher, WatcherFactory(newWatcher), log)
	return a.WithSpanProcessors(bridge).WithImportIndex(graph), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
