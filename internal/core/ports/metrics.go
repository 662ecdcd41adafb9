package ports

import "time"

// Metrics records route resolution counters.
//
//go:generate go run go.uber.org/mock/mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// CacheHit counts a resolution served from the route cache.
	CacheHit()
	// CacheMiss counts a resolution that had to be computed.
	CacheMiss()
	// CacheConflict counts a lost insert race on the route cache.
	CacheConflict()
	// ObserveResolve records how long a computed resolution took and whether a path was found.
	ObserveResolve(d time.Duration, found bool)
}
