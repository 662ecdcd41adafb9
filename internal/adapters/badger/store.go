// Package badger implements the route cache on top of BadgerDB.
package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"go.trai.ch/tide/internal/core/domain"
	"go.trai.ch/tide/internal/core/ports"
	"go.trai.ch/zerr"
)

var routePrefix = []byte("route/")

// Config holds configuration for the Badger route cache.
type Config struct {
	// Path is the directory for database files. Ignored when InMemory is true.
	Path string

	// InMemory keeps all data in RAM. Useful for tests.
	InMemory bool

	// SyncWrites fsyncs every commit.
	SyncWrites bool

	// Logger receives Badger's warnings and errors. Nil silences Badger.
	Logger ports.Logger
}

// DefaultConfig returns a durable configuration rooted at path.
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig returns a configuration for tests.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapts ports.Logger to Badger's Logger interface.
// Info and debug chatter is dropped.
type badgerLogger struct {
	logger ports.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Errorf("badger: "+format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf("badger: "+format, args...))
}

func (l *badgerLogger) Infof(string, ...any) {}

func (l *badgerLogger) Debugf(string, ...any) {}

// Store implements ports.RouteCache with BadgerDB.
// Inserts run in an optimistic transaction, so concurrent writers of the same
// key cannot both commit.
type Store struct {
	db *badger.DB
}

// Open opens or creates the database described by cfg.
func Open(cfg Config) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, zerr.Wrap(errors.New("path is required for a persistent cache"), domain.ErrCacheOpenFailed.Error())
		}
		if err := os.MkdirAll(cfg.Path, domain.DirPerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheOpenFailed.Error()), "path", cfg.Path)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}

	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheOpenFailed.Error()), "path", cfg.Path)
	}
	return &Store{db: db}, nil
}

// Get retrieves the record for the exact ordered key.
func (s *Store) Get(_ context.Context, key domain.RouteKey) (*domain.PathRecord, error) {
	var record *domain.PathRecord

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(routeKey(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
		}
		record, err = decode(item)
		return err
	})
	if err != nil {
		return nil, zerr.With(err, "route", key.String())
	}
	return record, nil
}

// Put inserts the record unless its key is already cached.
func (s *Store) Put(_ context.Context, record domain.PathRecord) (*domain.PathRecord, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}
	k := routeKey(record.Key())

	err = s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(k)
		switch {
		case err == nil:
			return domain.ErrRouteExists
		case !errors.Is(err, badger.ErrKeyNotFound):
			return zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
		}
		return txn.Set(k, data)
	})

	switch {
	case err == nil:
		return &record, nil
	case errors.Is(err, domain.ErrRouteExists), errors.Is(err, badger.ErrConflict):
		// A concurrent transaction committed the same key first.
		return nil, domain.ErrRouteExists
	default:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "route", record.Key().String())
	}
}

// List returns every cached record ordered by origin then destination.
func (s *Store) List(_ context.Context) ([]domain.PathRecord, error) {
	var records []domain.PathRecord

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = routePrefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(routePrefix); it.ValidForPrefix(routePrefix); it.Next() {
			record, err := decode(it.Item())
			if err != nil {
				return err
			}
			records = append(records, *record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// routeKey encodes a route key. The NUL separator sorts before any name byte,
// so iteration order is origin then destination.
func routeKey(key domain.RouteKey) []byte {
	return append(append([]byte{}, routePrefix...), key.Bytes()...)
}

func decode(item *badger.Item) (*domain.PathRecord, error) {
	var record domain.PathRecord
	err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &record)
	})
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheUnmarshalFailed.Error())
	}
	return &record, nil
}
