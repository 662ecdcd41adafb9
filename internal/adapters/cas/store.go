// Package cas implements a file-per-route cache keyed by a content hash of the route key.
package cas

import (
	"cmp"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/tide/internal/core/domain"
	"go.trai.ch/zerr"
)

const recordExt = ".json"

// Store implements ports.RouteCache with one JSON file per ordered route key.
// Inserts are atomic: the record is written to a temporary file and hard-linked
// into place, which fails if another writer got there first.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is created on first write.
func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// Get retrieves the record for the exact ordered key.
func (s *Store) Get(_ context.Context, key domain.RouteKey) (*domain.PathRecord, error) {
	filename := s.getFilename(key)
	record, err := readRecord(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(err, "route", key.String())
	}
	return record, nil
}

// Put inserts the record unless its key is already cached.
func (s *Store) Put(_ context.Context, record domain.PathRecord) (*domain.PathRecord, error) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "dir", s.dir)
	}

	tmp, err := os.CreateTemp(s.dir, ".route-*")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := writeAndSync(tmp, data); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	if err := os.Link(tmpName, s.getFilename(record.Key())); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, domain.ErrRouteExists
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "route", record.Key().String())
	}

	return &record, nil
}

// List returns every cached record ordered by origin then destination.
func (s *Store) List(_ context.Context) ([]domain.PathRecord, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}

	records := make([]domain.PathRecord, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, recordExt) {
			continue
		}
		record, err := readRecord(filepath.Join(s.dir, name))
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	slices.SortFunc(records, func(a, b domain.PathRecord) int {
		return cmp.Or(cmp.Compare(a.Origin, b.Origin), cmp.Compare(a.Destination, b.Destination))
	})
	return records, nil
}

// Close is a no-op; the store holds no open handles.
func (s *Store) Close() error {
	return nil
}

func (s *Store) getFilename(key domain.RouteKey) string {
	hash := sha256.Sum256(key.Bytes())
	return filepath.Join(s.dir, hex.EncodeToString(hash[:])+recordExt)
}

func readRecord(filename string) (*domain.PathRecord, error) {
	//nolint:gosec // Path is constructed from the cache directory and a hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}

	var record domain.PathRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheUnmarshalFailed.Error()), "file", filepath.Base(filename))
	}
	return &record, nil
}

func writeAndSync(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
