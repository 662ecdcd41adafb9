// Package solver computes least-cost paths over a domain.Graph.
package solver

import (
	"container/heap"
	"slices"

	"go.trai.ch/tide/internal/core/domain"
)

// ShortestPath returns the least-cost path from origin to destination.
// The second return value is false when either endpoint is not a vertex or
// when no path connects them. Weights are expected to be non-negative.
func ShortestPath(g *domain.Graph, origin, destination string) (domain.Path, bool) {
	if g == nil || !g.HasNode(origin) || !g.HasNode(destination) {
		return domain.Path{}, false
	}
	if origin == destination {
		return domain.Path{Nodes: []string{origin}}, true
	}

	r := &runner{
		g:       g,
		target:  destination,
		dist:    map[string]int64{origin: 0},
		prev:    make(map[string]string),
		visited: make(map[string]bool),
	}
	heap.Push(&r.pq, &nodeItem{id: origin, dist: 0})

	if !r.process() {
		return domain.Path{}, false
	}

	return domain.Path{
		Nodes: r.path(origin),
		Cost:  r.dist[destination],
	}, true
}

type runner struct {
	g       *domain.Graph
	target  string
	dist    map[string]int64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// process drains the queue until the target is settled.
// It reports whether the target was reached.
func (r *runner) process() bool {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale entry left behind by a later improvement.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if u == r.target {
			return true
		}

		r.relax(u)
	}
	return false
}

func (r *runner) relax(u string) {
	for v, w := range r.g.Neighbors(u) {
		if r.visited[v] {
			continue
		}
		newDist := r.dist[u] + w
		if d, ok := r.dist[v]; ok && newDist >= d {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

func (r *runner) path(origin string) []string {
	nodes := []string{r.target}
	for at := r.target; at != origin; {
		at = r.prev[at]
		nodes = append(nodes, at)
	}
	slices.Reverse(nodes)
	return nodes
}

type nodeItem struct {
	id   string
	dist int64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by name so equal-cost runs are reproducible.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
