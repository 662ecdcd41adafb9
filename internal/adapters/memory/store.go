// Package memory implements an in-process route cache ordered by route key.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/tidwall/btree"
	"go.trai.ch/tide/internal/core/domain"
)

// Store implements ports.RouteCache with an ordered B-tree.
// Records live for the lifetime of the process.
type Store struct {
	mu   sync.Mutex
	tree *btree.BTreeG[domain.PathRecord]
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		// Locking is done by Store so that lookup and insert form one step.
		tree: btree.NewBTreeGOptions(lessRecord, btree.Options{NoLocks: true}),
	}
}

func lessRecord(a, b domain.PathRecord) bool {
	return cmp.Or(cmp.Compare(a.Origin, b.Origin), cmp.Compare(a.Destination, b.Destination)) < 0
}

// Get retrieves the record for the exact ordered key.
func (s *Store) Get(_ context.Context, key domain.RouteKey) (*domain.PathRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.tree.Get(domain.PathRecord{Origin: key.Origin, Destination: key.Destination})
	if !ok {
		return nil, nil
	}
	record.Path = slices.Clone(record.Path)
	return &record, nil
}

// Put inserts the record unless its key is already cached.
func (s *Store) Put(_ context.Context, record domain.PathRecord) (*domain.PathRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tree.Get(record); exists {
		return nil, domain.ErrRouteExists
	}
	record.Path = slices.Clone(record.Path)
	s.tree.Set(record)
	return &record, nil
}

// List returns every cached record ordered by origin then destination.
func (s *Store) List(_ context.Context) ([]domain.PathRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]domain.PathRecord, 0, s.tree.Len())
	s.tree.Scan(func(r domain.PathRecord) bool {
		r.Path = slices.Clone(r.Path)
		records = append(records, r)
		return true
	})
	return records, nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
