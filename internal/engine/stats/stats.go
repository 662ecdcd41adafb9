// Package stats summarizes the graph store and the route cache.
package stats

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"go.trai.ch/tide/internal/core/domain"
	"go.trai.ch/tide/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// DefaultTop is the number of locations reported in each visit ranking.
const DefaultTop = 5

// Compute counts locations, connections and cached routes, and ranks the
// locations by how many cached paths pass through them.
//
// Only locations that occur in at least one cached path are ranked. Equal
// counts are ordered by name. A non-positive top falls back to DefaultTop.
func Compute(ctx context.Context, store ports.GraphStore, cache ports.RouteCache, top int) (domain.Stats, error) {
	if top <= 0 {
		top = DefaultTop
	}

	var (
		nodes   []domain.Node
		edges   []domain.Edge
		records []domain.PathRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if nodes, err = store.Nodes(gctx); err != nil {
			return errors.Join(domain.ErrStoreUnavailable, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if edges, err = store.Edges(gctx); err != nil {
			return errors.Join(domain.ErrStoreUnavailable, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = cache.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Stats{}, err
	}

	counts := countVisits(records)

	most := slices.Clone(counts)
	slices.SortFunc(most, func(a, b domain.VisitCount) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.Name, b.Name))
	})

	least := counts
	slices.SortFunc(least, func(a, b domain.VisitCount) int {
		return cmp.Or(cmp.Compare(a.Count, b.Count), cmp.Compare(a.Name, b.Name))
	})

	return domain.Stats{
		Locations:    len(nodes),
		Connections:  len(edges),
		Routes:       len(records),
		MostVisited:  most[:min(top, len(most))],
		LeastVisited: least[:min(top, len(least))],
	}, nil
}

// countVisits counts every occurrence of a name in every cached path.
func countVisits(records []domain.PathRecord) []domain.VisitCount {
	tally := make(map[string]int)
	for _, r := range records {
		for _, name := range r.Path {
			tally[name]++
		}
	}

	counts := make([]domain.VisitCount, 0, len(tally))
	for name, n := range tally {
		counts = append(counts, domain.VisitCount{Name: name, Count: n})
	}
	return counts
}
