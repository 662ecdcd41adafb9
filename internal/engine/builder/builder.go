// Package builder turns graph store rows into an in-memory domain.Graph.
package builder

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/tide/internal/core/domain"
	"go.trai.ch/tide/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Builder reads the graph store and assembles a weighted undirected graph.
type Builder struct {
	store  ports.GraphStore
	logger ports.Logger
}

// New creates a new Builder.
func New(store ports.GraphStore, logger ports.Logger) *Builder {
	return &Builder{store: store, logger: logger}
}

// Build reads all nodes and edges and returns the graph.
//
// Every node row becomes a vertex, so locations without connections are still
// resolvable to themselves. When the store yields two edges for the same
// unordered pair the last one wins. Self-loops and negative weights are skipped.
// Store failures are returned joined with domain.ErrStoreUnavailable.
func (b *Builder) Build(ctx context.Context) (*domain.Graph, error) {
	var (
		nodes []domain.Node
		edges []domain.Edge
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		nodes, err = b.store.Nodes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		edges, err = b.store.Edges(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Join(domain.ErrStoreUnavailable, err)
	}

	graph := domain.NewGraph()
	for _, n := range nodes {
		graph.AddNode(n.Name)
	}

	for _, e := range edges {
		switch {
		case e.IsSelfLoop():
			b.logger.Warn(fmt.Sprintf("skipping self-loop on %q", e.A))
			continue
		case e.Weight < 0:
			b.logger.Warn(fmt.Sprintf("skipping connection %s-%s with negative distance %d", e.A, e.B, e.Weight))
			continue
		}
		if _, dup := graph.Weight(e.A, e.B); dup {
			b.logger.Warn(fmt.Sprintf("duplicate connection %s-%s, keeping distance %d", e.A, e.B, e.Weight))
		}
		graph.AddEdge(e.A, e.B, e.Weight)
	}

	return graph, nil
}
