// Package app implements the application layer for tide.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.trai.ch/tide/internal/adapters/httpapi"
	"go.trai.ch/tide/internal/core/domain"
	"go.trai.ch/tide/internal/core/ports"
	"go.trai.ch/tide/internal/engine/router"
	"go.trai.ch/tide/internal/engine/stats"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ServerOptions configures the HTTP host started by Serve.
type ServerOptions struct {
	Addr      string
	RateLimit float64
	Burst     int
	Metrics   httpapi.RequestMetrics
	// Watcher, when set, reports graph edits while serving.
	Watcher ports.GraphWatcher
}

// App represents the main application logic.
type App struct {
	router   *router.Service
	store    ports.GraphStore
	cache    ports.RouteCache
	logger   ports.Logger
	server   ServerOptions
	shutdown []func(context.Context) error
}

// New creates a new App instance.
func New(svc *router.Service, store ports.GraphStore, cache ports.RouteCache, log ports.Logger) *App {
	return &App{
		router: svc,
		store:  store,
		cache:  cache,
		logger: log,
		server: ServerOptions{Addr: ":8080"},
	}
}

// WithServer sets the options used by Serve.
func (a *App) WithServer(opts ServerOptions) *App {
	a.server = opts
	return a
}

// OnClose registers fn to run when the App is closed, after the route cache.
func (a *App) OnClose(fn func(context.Context) error) *App {
	a.shutdown = append(a.shutdown, fn)
	return a
}

// Resolve returns the least-cost route between two locations.
func (a *App) Resolve(ctx context.Context, origin, destination string) (domain.Resolution, error) {
	if origin == "" || destination == "" {
		return domain.Resolution{}, domain.ErrEmptyLocation
	}
	return a.router.Resolve(ctx, origin, destination)
}

// Nodes returns every location in the graph store, ordered by name.
func (a *App) Nodes(ctx context.Context) ([]domain.Node, error) {
	nodes, err := a.store.Nodes(ctx)
	if err != nil {
		return nil, errors.Join(domain.ErrStoreUnavailable, err)
	}
	return nodes, nil
}

// Stats summarizes the graph store and the route cache.
func (a *App) Stats(ctx context.Context, top int) (domain.Stats, error) {
	return stats.Compute(ctx, a.store, a.cache, top)
}

// Ping reports whether the graph store is readable.
func (a *App) Ping(ctx context.Context) error {
	if err := a.store.Ping(ctx); err != nil {
		return errors.Join(domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Serve runs the HTTP API until ctx is canceled.
// With a watcher configured, graph edits are logged alongside.
func (a *App) Serve(ctx context.Context) error {
	gin.SetMode(gin.ReleaseMode)

	srv := httpapi.NewServer(a, a.logger, httpapi.Options{
		RateLimit: a.server.RateLimit,
		Burst:     a.server.Burst,
		Metrics:   a.server.Metrics,
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(ctx, a.server.Addr)
	})
	if a.server.Watcher != nil {
		g.Go(func() error {
			return a.server.Watcher.Watch(ctx, func() { a.graphChanged(ctx) })
		})
	}
	return g.Wait()
}

// graphChanged reports the new graph. Cached routes are kept as they are.
func (a *App) graphChanged(ctx context.Context) {
	graph, err := a.router.Snapshot(ctx)
	if err != nil {
		a.logger.Error(zerr.Wrap(err, "graph changed but could not be read"))
		return
	}
	a.logger.Info(fmt.Sprintf(
		"graph changed: %d locations, %d connections, fingerprint %016x",
		graph.NodeCount(), graph.EdgeCount(), graph.Fingerprint(),
	))
}

// Close releases the route cache and runs the registered close hooks.
func (a *App) Close(ctx context.Context) error {
	errs := a.cache.Close()
	for _, fn := range a.shutdown {
		errs = errors.Join(errs, fn(ctx))
	}
	return errs
}

// Components bundles everything the command line needs.
type Components struct {
	App    *App
	Logger ports.Logger
}
