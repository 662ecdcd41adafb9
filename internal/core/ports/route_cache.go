package ports

import (
	"context"

	"go.trai.ch/tide/internal/core/domain"
)

// RouteCache persists computed routes keyed by the ordered (origin, destination) pair.
//
//go:generate go run go.uber.org/mock/mockgen -source=route_cache.go -destination=mocks/mock_route_cache.go -package=mocks
type RouteCache interface {
	// Get retrieves the record for the exact ordered pair.
	// Returns nil, nil if not found. A stored (B, A) record never answers (A, B).
	Get(ctx context.Context, key domain.RouteKey) (*domain.PathRecord, error)

	// Put inserts the record if no record exists for its key.
	// It returns domain.ErrRouteExists when the key is already taken and never
	// overwrites an existing record.
	Put(ctx context.Context, record domain.PathRecord) (*domain.PathRecord, error)

	// List returns every cached record.
	List(ctx context.Context) ([]domain.PathRecord, error)

	// Close releases any resources held by the cache.
	Close() error
}
