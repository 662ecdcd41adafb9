package domain

import "time"

// Path is a least-cost walk through the graph.
type Path struct {
	Nodes []string
	Cost  int64
}

// RouteKey identifies a cached route. It is ordered: (A, B) and (B, A) are
// distinct keys.
type RouteKey struct {
	Origin      string
	Destination string
}

// String returns a human-readable form of the key.
func (k RouteKey) String() string {
	return k.Origin + " -> " + k.Destination
}

// Bytes returns the storage encoding of the key. Location names never contain
// a NUL byte, so the encoding is unambiguous.
func (k RouteKey) Bytes() []byte {
	b := make([]byte, 0, len(k.Origin)+len(k.Destination)+1)
	b = append(b, k.Origin...)
	b = append(b, 0)
	return append(b, k.Destination...)
}

// PathRecord is a cached route result for one ordered (origin, destination) pair.
// Records are written once and never updated.
type PathRecord struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Path        []string  `json:"path"`
	Cost        int64     `json:"cost"`
	Valid       bool      `json:"valid"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// Key returns the cache key of the record.
func (r *PathRecord) Key() RouteKey {
	return RouteKey{Origin: r.Origin, Destination: r.Destination}
}

// Resolution is the answer to a route query.
// Cost is nil when no path connects the endpoints.
type Resolution struct {
	Path  []string `json:"path"`
	Cost  *int64   `json:"cost"`
	Valid bool     `json:"valid"`
}

// Found reports whether the resolution holds a path.
func (r Resolution) Found() bool {
	return len(r.Path) > 0
}

// NotFound returns the resolution for disconnected or unknown endpoints.
func NotFound() Resolution {
	return Resolution{Path: []string{}}
}

// ResolutionFromPath builds the resolution for a found path.
func ResolutionFromPath(p Path, coastal CoastalSet) Resolution {
	cost := p.Cost
	return Resolution{
		Path:  p.Nodes,
		Cost:  &cost,
		Valid: IsValid(p.Nodes, coastal),
	}
}

// ResolutionFromRecord rebuilds a resolution from a cached record.
// A record with an empty path stores cost 0, which maps back to an absent cost,
// and is never valid whatever the stored flag says.
func ResolutionFromRecord(r *PathRecord) Resolution {
	if len(r.Path) == 0 {
		return NotFound()
	}
	cost := r.Cost
	return Resolution{
		Path:  r.Path,
		Cost:  &cost,
		Valid: r.Valid,
	}
}

// NewPathRecord converts a resolution into the record persisted for key.
func NewPathRecord(key RouteKey, res Resolution, now time.Time) PathRecord {
	var cost int64
	if res.Cost != nil {
		cost = *res.Cost
	}
	path := res.Path
	if path == nil {
		path = []string{}
	}
	return PathRecord{
		Origin:      key.Origin,
		Destination: key.Destination,
		Path:        path,
		Cost:        cost,
		Valid:       res.Valid,
		CreatedAt:   now,
	}
}
