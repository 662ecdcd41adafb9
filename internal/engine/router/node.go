package router

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tide/internal/adapters/graphstore"
	"go.trai.ch/tide/internal/adapters/logger"
	"go.trai.ch/tide/internal/adapters/metrics"
	"go.trai.ch/tide/internal/adapters/routecache"
	"go.trai.ch/tide/internal/adapters/telemetry"
	"go.trai.ch/tide/internal/core/ports"
	"go.trai.ch/tide/internal/engine/builder"
)

// NodeID is the unique identifier for the route service Graft node.
const NodeID graft.ID = "engine.router"

func init() {
	graft.Register(graft.Node[*Service]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			builder.NodeID,
			graphstore.NodeID,
			routecache.NodeID,
			telemetry.NodeID,
			metrics.NodeID,
			logger.NodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (*Service, error) {
	b, err := graft.Dep[*builder.Builder](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.GraphStore](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[ports.RouteCache](ctx)
	if err != nil {
		return nil, err
	}

	provider, err := graft.Dep[*telemetry.Provider](ctx)
	if err != nil {
		return nil, err
	}

	collector, err := graft.Dep[*metrics.Collector](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(b, store, cache, provider, collector, log), nil
}
