package graphstore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tide/internal/adapters/config"
	"go.trai.ch/tide/internal/core/ports"
)

// NodeID is the unique identifier for the graph store Graft node.
const NodeID graft.ID = "adapter.graph_store"

func init() {
	graft.Register(graft.Node[ports.GraphStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.GraphStore, error) {
			tf, err := graft.Dep[*config.Tidefile](ctx)
			if err != nil {
				return nil, err
			}
			return NewFile(tf.Graph.Path), nil
		},
	})
}
