package domain

// Node is a named location as held by the graph store.
type Node struct {
	Name    string `json:"name" yaml:"name"`
	Coastal bool   `json:"coastal,omitzero" yaml:"coastal"`
	// Visits is maintained by the graph store and only read here.
	Visits int `json:"visits,omitzero" yaml:"visits"`
}

// Edge is an undirected weighted connection between two locations.
type Edge struct {
	A      string `json:"a" yaml:"a"`
	B      string `json:"b" yaml:"b"`
	Weight int64  `json:"weight" yaml:"weight"`
}

// IsSelfLoop reports whether both endpoints are the same location.
func (e Edge) IsSelfLoop() bool {
	return e.A == e.B
}

// CoastalSet is the set of location names flagged as coastal.
type CoastalSet map[string]struct{}

// NewCoastalSet creates a CoastalSet from the given names.
func NewCoastalSet(names ...string) CoastalSet {
	set := make(CoastalSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// CoastalSetFromNodes collects the names of all coastal nodes.
func CoastalSetFromNodes(nodes []Node) CoastalSet {
	set := make(CoastalSet)
	for _, n := range nodes {
		if n.Coastal {
			set[n.Name] = struct{}{}
		}
	}
	return set
}

// Has reports whether name is coastal.
func (s CoastalSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}
