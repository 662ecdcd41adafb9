package routecache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tide/internal/adapters/config"
	"go.trai.ch/tide/internal/adapters/logger"
	"go.trai.ch/tide/internal/core/ports"
)

// NodeID is the unique identifier for the route cache Graft node.
const NodeID graft.ID = "adapter.route_cache"

func init() {
	graft.Register(graft.Node[ports.RouteCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.RouteCache, error) {
			tf, err := graft.Dep[*config.Tidefile](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return Open(tf.Cache, log)
		},
	})
}
