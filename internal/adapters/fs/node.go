package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/restyle/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ResolverNodeID is the unique identifier for the source resolver Graft node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// OracleNodeID is the unique identifier for the timestamp oracle Graft node.
	OracleNodeID graft.ID = "adapter.fs.oracle"
	// FilesNodeID is the unique identifier for the file system Graft node.
	FilesNodeID graft.ID = "adapter.fs.files"
	// HasherNodeID is the unique identifier for the content hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	// Walker Node (Concrete implementation needed by Resolver)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	// Resolver Node
	graft.Register(graft.Node[ports.SourceResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.SourceResolver, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(walker), nil
		},
	})

	// Oracle Node
	graft.Register(graft.Node[ports.TimestampOracle]{
		ID:        OracleNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TimestampOracle, error) {
			return NewOracle(), nil
		},
	})

	// Files Node
	graft.Register(graft.Node[ports.FileSystem]{
		ID:        FilesNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileSystem, error) {
			return NewFiles(), nil
		},
	})

	// Hasher Node
	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Hasher, error) {
			return NewHasher(), nil
		},
	})
}
