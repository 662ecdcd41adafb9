// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/tide/internal/core/domain"
)

// GraphStore is the source of truth for locations, connections and coastal flags.
// The core only reads from it, once per route computation.
//
//go:generate go run go.uber.org/mock/mockgen -source=graph_store.go -destination=mocks/mock_graph_store.go -package=mocks
type GraphStore interface {
	// Nodes returns every location ordered by name.
	Nodes(ctx context.Context) ([]domain.Node, error)

	// Edges returns every undirected weighted connection.
	Edges(ctx context.Context) ([]domain.Edge, error)

	// CoastalSet returns the names of all coastal locations.
	CoastalSet(ctx context.Context) (domain.CoastalSet, error)

	// Ping reports whether the store can currently be read.
	Ping(ctx context.Context) error
}
