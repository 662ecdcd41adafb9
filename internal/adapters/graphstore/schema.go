package graphstore

// GraphFile represents the structure of a graph.yaml file.
type GraphFile struct {
	Locations   []LocationDTO   `yaml:"locations" validate:"dive"`
	Connections []ConnectionDTO `yaml:"connections" validate:"dive"`
}

// LocationDTO represents a location entry in the graph file.
type LocationDTO struct {
	Name    string `yaml:"name" validate:"required"`
	Coastal bool   `yaml:"coastal"`
	Visits  int    `yaml:"visits" validate:"gte=0"`
}

// ConnectionDTO represents an undirected connection in the graph file.
type ConnectionDTO struct {
	From     string `yaml:"from" validate:"required"`
	To       string `yaml:"to" validate:"required"`
	Distance int64  `yaml:"distance"`
}
