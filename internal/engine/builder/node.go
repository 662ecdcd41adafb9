package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tide/internal/adapters/graphstore"
	"go.trai.ch/tide/internal/adapters/logger"
	"go.trai.ch/tide/internal/core/ports"
)

// NodeID is the unique identifier for the graph builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{graphstore.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			store, err := graft.Dep[ports.GraphStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(store, log), nil
		},
	})
}
