// Package domain contains the core domain models for route resolution over a
// weighted undirected graph of locations.
package domain

import (
	"encoding/binary"
	"iter"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Graph is an undirected weighted graph keyed by location name.
// The zero value is not usable; use NewGraph.
type Graph struct {
	adj   map[string]map[string]int64
	edges int
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		adj: make(map[string]map[string]int64),
	}
}

// AddNode adds a vertex. Adding an existing vertex is a no-op.
func (g *Graph) AddNode(name string) {
	if _, ok := g.adj[name]; !ok {
		g.adj[name] = make(map[string]int64)
	}
}

// AddEdge connects a and b in both directions with the given weight,
// creating either vertex if needed. A second edge for the same unordered pair
// replaces the first.
func (g *Graph) AddEdge(a, b string, weight int64) {
	g.AddNode(a)
	g.AddNode(b)
	if _, exists := g.adj[a][b]; !exists {
		g.edges++
	}
	g.adj[a][b] = weight
	g.adj[b][a] = weight
}

// HasNode reports whether name is a vertex of the graph.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.adj[name]
	return ok
}

// Weight returns the weight of the edge between a and b.
func (g *Graph) Weight(a, b string) (int64, bool) {
	w, ok := g.adj[a][b]
	return w, ok
}

// Neighbors yields every vertex adjacent to name together with the edge weight.
func (g *Graph) Neighbors(name string) iter.Seq2[string, int64] {
	return func(yield func(string, int64) bool) {
		for n, w := range g.adj[name] {
			if !yield(n, w) {
				return
			}
		}
	}
}

// Nodes returns all vertex names in lexical order.
func (g *Graph) Nodes() []string {
	names := make([]string, 0, len(g.adj))
	for name := range g.adj {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NodeCount returns the number of vertices.
func (g *Graph) NodeCount() int {
	return len(g.adj)
}

// EdgeCount returns the number of distinct unordered edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Fingerprint returns a stable hash of the vertices and weighted edges.
// Two graphs with the same structure have the same fingerprint regardless of
// insertion order.
func (g *Graph) Fingerprint() uint64 {
	hasher := xxhash.New()
	var buf [8]byte

	for _, a := range g.Nodes() {
		_, _ = hasher.WriteString(a)
		_, _ = hasher.Write([]byte{0})

		neighbors := make([]string, 0, len(g.adj[a]))
		for b := range g.adj[a] {
			if a < b {
				neighbors = append(neighbors, b)
			}
		}
		slices.Sort(neighbors)

		for _, b := range neighbors {
			_, _ = hasher.WriteString(b)
			binary.LittleEndian.PutUint64(buf[:], uint64(g.adj[a][b]))
			_, _ = hasher.Write(buf[:])
		}
		_, _ = hasher.Write([]byte{0}) // Section separator
	}

	return hasher.Sum64()
}
