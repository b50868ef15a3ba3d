package stylesheet

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/restyle/internal/adapters/fs"
	"go.trai.ch/restyle/internal/adapters/logger"
	"go.trai.ch/restyle/internal/core/ports"
)

const (
	// ExtractorNodeID is the unique identifier for the concrete extractor Graft node.
	ExtractorNodeID graft.ID = "adapter.stylesheet.extractor"
	// ImportsNodeID is the unique identifier for the import extractor port Graft node.
	ImportsNodeID graft.ID = "adapter.stylesheet.imports"
	// InlinerNodeID is the unique identifier for the inline transform Graft node.
	InlinerNodeID graft.ID = "adapter.stylesheet.inliner"
)

func init() {
	graft.Register(graft.Node[*Extractor]{
		ID:        ExtractorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Extractor, error) {
			return NewExtractor(), nil
		},
	})

	graft.Register(graft.Node[ports.ImportExtractor]{
		ID:        ImportsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ExtractorNodeID},
		Run: func(ctx context.Context) (ports.ImportExtractor, error) {
			extractor, err := graft.Dep[*Extractor](ctx)
			if err != nil {
				return nil, err
			}
			return extractor, nil
		},
	})

	graft.Register(graft.Node[*Inliner]{
		ID:        InlinerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FilesNodeID, ExtractorNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Inliner, error) {
			files, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			extractor, err := graft.Dep[*Extractor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewInliner(files, extractor, log), nil
		},
	})
}
