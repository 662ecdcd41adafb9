// Package routecache selects the route cache backend named in the configuration.
package routecache

import (
	"go.trai.ch/tide/internal/adapters/badger"
	"go.trai.ch/tide/internal/adapters/cas"
	"go.trai.ch/tide/internal/adapters/config"
	"go.trai.ch/tide/internal/adapters/memory"
	"go.trai.ch/tide/internal/core/domain"
	"go.trai.ch/tide/internal/core/ports"
	"go.trai.ch/zerr"
)

// Open returns the route cache for cfg.
func Open(cfg config.CacheConfig, log ports.Logger) (ports.RouteCache, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return cas.NewStore(cfg.Path), nil
	case config.BackendBadger:
		bc := badger.DefaultConfig(cfg.Path)
		bc.Logger = log
		store, err := badger.Open(bc)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendMemory:
		return memory.NewStore(), nil
	default:
		return nil, zerr.With(domain.ErrUnknownCacheBackend, "backend", cfg.Backend)
	}
}
