package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tide/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/tide/internal/adapters/graphstore" //nolint:depguard // Wired in app layer
	"go.trai.ch/tide/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/tide/internal/adapters/metrics"    //nolint:depguard // Wired in app layer
	"go.trai.ch/tide/internal/adapters/routecache" //nolint:depguard // Wired in app layer
	"go.trai.ch/tide/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/tide/internal/adapters/watcher"    //nolint:depguard // Wired in app layer
	"go.trai.ch/tide/internal/core/ports"
	"go.trai.ch/tide/internal/engine/router"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			router.NodeID,
			graphstore.NodeID,
			routecache.NodeID,
			logger.NodeID,
			config.NodeID,
			metrics.NodeID,
			telemetry.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

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
	svc, err := graft.Dep[*router.Service](ctx)
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

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tf, err := graft.Dep[*config.Tidefile](ctx)
	if err != nil {
		return nil, err
	}

	collector, err := graft.Dep[*metrics.Collector](ctx)
	if err != nil {
		return nil, err
	}

	provider, err := graft.Dep[*telemetry.Provider](ctx)
	if err != nil {
		return nil, err
	}

	graphWatcher, err := graft.Dep[ports.GraphWatcher](ctx)
	if err != nil {
		return nil, err
	}

	opts := ServerOptions{
		Addr:      tf.HTTP.Addr,
		RateLimit: tf.HTTP.RateLimit,
		Burst:     tf.HTTP.Burst,
		Metrics:   collector,
	}
	if tf.Graph.Watch {
		opts.Watcher = graphWatcher
	}

	return New(svc, store, cache, log).
		WithServer(opts).
		OnClose(provider.Shutdown), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
	}, nil
}
