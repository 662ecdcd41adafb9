// Package router resolves least-cost coastal-aware routes through the route cache.
package router

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.trai.ch/tide/internal/core/domain"
	"go.trai.ch/tide/internal/core/ports"
	"go.trai.ch/tide/internal/engine/builder"
	"go.trai.ch/tide/internal/engine/solver"
	"go.trai.ch/zerr"
)

// Service answers route queries, computing and caching results on a miss.
type Service struct {
	builder *builder.Builder
	store   ports.GraphStore
	cache   ports.RouteCache
	tracer  ports.Tracer
	metrics ports.Metrics
	logger  ports.Logger
	now     func() time.Time
}

// New creates a new Service.
func New(
	b *builder.Builder,
	store ports.GraphStore,
	cache ports.RouteCache,
	tracer ports.Tracer,
	metrics ports.Metrics,
	log ports.Logger,
) *Service {
	return &Service{
		builder: b,
		store:   store,
		cache:   cache,
		tracer:  tracer,
		metrics: metrics,
		logger:  log,
		now:     time.Now,
	}
}

// WithClock replaces the clock used to stamp cached records and time computations.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Resolve returns the least-cost path from origin to destination.
//
// A cached record for the exact ordered pair is returned as stored. Otherwise
// the graph is rebuilt from the graph store, solved and tagged, and the result
// is written to the cache. Losing an insert race to a concurrent resolver is
// not an error. Only graph store failures are returned.
func (s *Service) Resolve(ctx context.Context, origin, destination string) (domain.Resolution, error) {
	ctx, span := s.tracer.Start(ctx, "resolve",
		ports.WithAttribute("tide.origin", origin),
		ports.WithAttribute("tide.destination", destination),
	)
	defer span.End()

	key := domain.RouteKey{Origin: origin, Destination: destination}

	if res, ok := s.lookup(ctx, key); ok {
		span.SetAttribute("tide.cache_hit", true)
		setResultAttributes(span, res)
		return res, nil
	}
	span.SetAttribute("tide.cache_hit", false)

	start := s.now()
	res, fingerprint, err := s.compute(ctx, origin, destination)
	if err != nil {
		span.RecordError(err)
		return domain.Resolution{}, err
	}
	s.metrics.ObserveResolve(s.now().Sub(start), res.Found())
	span.SetAttribute("tide.graph_fingerprint", fingerprint)
	setResultAttributes(span, res)

	s.persist(ctx, key, res)

	return res, nil
}

// lookup consults the cache. A failing cache read is logged and treated as a miss.
func (s *Service) lookup(ctx context.Context, key domain.RouteKey) (domain.Resolution, bool) {
	rec, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Error(zerr.With(err, "route", key.String()))
	}
	if rec == nil {
		s.metrics.CacheMiss()
		return domain.Resolution{}, false
	}
	s.metrics.CacheHit()
	return domain.ResolutionFromRecord(rec), true
}

func (s *Service) compute(ctx context.Context, origin, destination string) (domain.Resolution, uint64, error) {
	graph, err := s.builder.Build(ctx)
	if err != nil {
		return domain.Resolution{}, 0, err
	}

	coastal, err := s.store.CoastalSet(ctx)
	if err != nil {
		return domain.Resolution{}, 0, errors.Join(domain.ErrStoreUnavailable, err)
	}

	path, found := solver.ShortestPath(graph, origin, destination)
	if !found {
		return domain.NotFound(), graph.Fingerprint(), nil
	}
	return domain.ResolutionFromPath(path, coastal), graph.Fingerprint(), nil
}

func (s *Service) persist(ctx context.Context, key domain.RouteKey, res domain.Resolution) {
	_, err := s.cache.Put(ctx, domain.NewPathRecord(key, res, s.now()))
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrRouteExists):
		s.metrics.CacheConflict()
		s.logger.Warn(fmt.Sprintf("route %s was cached concurrently, keeping computed result", key))
	default:
		s.logger.Error(zerr.With(err, "route", key.String()))
	}
}

// Snapshot builds the graph as a route computation would see it now.
// Cached records are never compared against it.
func (s *Service) Snapshot(ctx context.Context) (*domain.Graph, error) {
	return s.builder.Build(ctx)
}

func setResultAttributes(span ports.Span, res domain.Resolution) {
	span.SetAttribute("tide.found", res.Found())
	span.SetAttribute("tide.valid", res.Valid)
	if res.Cost != nil {
		span.SetAttribute("tide.cost", *res.Cost)
	}
}
