package domain

// VisitCount is the number of cached routes that pass through a location.
type VisitCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats summarizes the graph store and the route cache.
type Stats struct {
	Locations    int          `json:"locations"`
	Connections  int          `json:"connections"`
	Routes       int          `json:"routes"`
	MostVisited  []VisitCount `json:"most_visited"`
	LeastVisited []VisitCount `json:"least_visited"`
}
