package graphstore

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"

	"go.trai.ch/tide/internal/core/domain"
)

// Memory is a mutable in-process graph store.
// It is safe for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	nodes map[string]domain.Node
	edges map[[2]string]domain.Edge
}

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{
		nodes: make(map[string]domain.Node),
		edges: make(map[[2]string]domain.Edge),
	}
}

// PutNode adds or replaces a location.
func (m *Memory) PutNode(n domain.Node) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nodes[n.Name] = n
}

// RemoveNode deletes a location together with its connections.
func (m *Memory) RemoveNode(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.nodes, name)
	maps.DeleteFunc(m.edges, func(_ [2]string, e domain.Edge) bool {
		return e.A == name || e.B == name
	})
}

// Connect adds or replaces the connection between a and b.
// Unknown endpoints are added as non-coastal locations.
func (m *Memory) Connect(a, b string, weight int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, name := range []string{a, b} {
		if _, ok := m.nodes[name]; !ok {
			m.nodes[name] = domain.Node{Name: name}
		}
	}
	m.edges[pairKey(a, b)] = domain.Edge{A: a, B: b, Weight: weight}
}

// Disconnect removes the connection between a and b, if any.
func (m *Memory) Disconnect(a, b string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.edges, pairKey(a, b))
}

// Nodes returns every location ordered by name.
func (m *Memory) Nodes(_ context.Context) ([]domain.Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	nodes := slices.Collect(maps.Values(m.nodes))
	slices.SortFunc(nodes, func(a, b domain.Node) int { return cmp.Compare(a.Name, b.Name) })
	return nodes, nil
}

// Edges returns every connection ordered by endpoint names.
func (m *Memory) Edges(_ context.Context) ([]domain.Edge, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := slices.SortedFunc(maps.Keys(m.edges), func(a, b [2]string) int {
		return cmp.Or(cmp.Compare(a[0], b[0]), cmp.Compare(a[1], b[1]))
	})
	edges := make([]domain.Edge, 0, len(keys))
	for _, k := range keys {
		edges = append(edges, m.edges[k])
	}
	return edges, nil
}

// CoastalSet returns the names of all coastal locations.
func (m *Memory) CoastalSet(_ context.Context) (domain.CoastalSet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	set := make(domain.CoastalSet)
	for name, n := range m.nodes {
		if n.Coastal {
			set[name] = struct{}{}
		}
	}
	return set, nil
}

// Ping always succeeds.
func (m *Memory) Ping(_ context.Context) error {
	return nil
}
