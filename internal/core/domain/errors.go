package domain

import "go.trai.ch/zerr"

var (
	// ErrRouteExists is returned by a route cache when a record for the same
	// ordered (origin, destination) pair has already been stored.
	ErrRouteExists = zerr.New("route already cached")

	// ErrStoreUnavailable is returned when the graph store cannot be read.
	ErrStoreUnavailable = zerr.New("graph store unavailable")

	// ErrEmptyLocation is returned when an origin or destination is empty.
	ErrEmptyLocation = zerr.New("origin and destination are required")

	// ErrSameLocation is returned by host surfaces that reject identical endpoints.
	ErrSameLocation = zerr.New("origin and destination must differ")

	// ErrDuplicateNode is returned when a graph file declares the same location twice.
	ErrDuplicateNode = zerr.New("duplicate location")

	// ErrDuplicateEdge is returned when a graph file connects the same pair twice.
	ErrDuplicateEdge = zerr.New("duplicate connection")

	// ErrSelfLoop is returned when a graph file connects a location to itself.
	ErrSelfLoop = zerr.New("connection must join two distinct locations")

	// ErrUnknownLocation is returned when a connection references a location that is not declared.
	ErrUnknownLocation = zerr.New("connection references unknown location")

	// ErrInvalidWeight is returned when a connection has a non-positive distance.
	ErrInvalidWeight = zerr.New("connection distance must be positive")

	// ErrGraphReadFailed is returned when the graph file cannot be read.
	ErrGraphReadFailed = zerr.New("failed to read graph file")

	// ErrGraphParseFailed is returned when the graph file cannot be parsed.
	ErrGraphParseFailed = zerr.New("failed to parse graph file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrUnknownCacheBackend is returned when the configured cache backend is not supported.
	ErrUnknownCacheBackend = zerr.New("unknown cache backend")

	// ErrCacheOpenFailed is returned when the route cache cannot be opened.
	ErrCacheOpenFailed = zerr.New("failed to open route cache")

	// ErrCacheReadFailed is returned when a cached route cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cached route")

	// ErrCacheWriteFailed is returned when a route cannot be written to the cache.
	ErrCacheWriteFailed = zerr.New("failed to write cached route")

	// ErrCacheUnmarshalFailed is returned when a cached route cannot be decoded.
	ErrCacheUnmarshalFailed = zerr.New("failed to unmarshal cached route")

	// ErrCacheMarshalFailed is returned when a route cannot be encoded for the cache.
	ErrCacheMarshalFailed = zerr.New("failed to marshal cached route")
)
