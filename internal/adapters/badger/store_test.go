package badger_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tide/internal/adapters/badger"
	"go.trai.ch/tide/internal/core/domain"
)

func openInMemory(t *testing.T) *badger.Store {
	t.Helper()
	store, err := badger.Open(badger.InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func rec(origin, destination string, path ...string) domain.PathRecord {
	if path == nil {
		path = []string{}
	}
	return domain.PathRecord{Origin: origin, Destination: destination, Path: path, Cost: int64(len(path))}
}

func TestStore_PutAndGet(t *testing.T) {
	ctx := context.Background()
	store := openInMemory(t)

	want := rec("Ibarra", "Loja", "Ibarra", "Otavalo", "Loja")
	want.Valid = true
	_, err := store.Put(ctx, want)
	require.NoError(t, err)

	got, err := store.Get(ctx, want.Key())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)

	missing, err := store.Get(ctx, domain.RouteKey{Origin: "Loja", Destination: "Ibarra"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_PutConflict(t *testing.T) {
	ctx := context.Background()
	store := openInMemory(t)

	first := rec("A", "B", "A", "B")
	_, err := store.Put(ctx, first)
	require.NoError(t, err)

	_, err = store.Put(ctx, rec("A", "B"))
	require.ErrorIs(t, err, domain.ErrRouteExists)

	got, err := store.Get(ctx, first.Key())
	require.NoError(t, err)
	assert.Equal(t, first, *got)
}

func TestStore_ConcurrentPutSingleWinner(t *testing.T) {
	ctx := context.Background()
	store := openInMemory(t)
	r := rec("Quito", "Manta", "Quito", "Manta")

	const writers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        int
		conflicts int
	)
	for range writers {
		wg.Go(func() {
			_, err := store.Put(ctx, r)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if assert.ErrorIs(t, err, domain.ErrRouteExists) {
				conflicts++
			}
		})
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, writers-1, conflicts)
}

func TestStore_List(t *testing.T) {
	ctx := context.Background()
	store := openInMemory(t)

	for _, r := range []domain.PathRecord{rec("B", "A", "B", "A"), rec("A", "C"), rec("A", "B", "A", "B"), rec("AB", "A")} {
		_, err := store.Put(ctx, r)
		require.NoError(t, err)
	}

	records, err := store.List(ctx)
	require.NoError(t, err)

	keys := make([]domain.RouteKey, 0, len(records))
	for _, r := range records {
		keys = append(keys, r.Key())
	}
	assert.Equal(t, []domain.RouteKey{
		{Origin: "A", Destination: "B"},
		{Origin: "A", Destination: "C"},
		{Origin: "AB", Destination: "A"},
		{Origin: "B", Destination: "A"},
	}, keys)
}

func TestStore_Persistent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := badger.Open(badger.DefaultConfig(dir))
	require.NoError(t, err)
	want := rec("Ibarra", "Loja", "Ibarra", "Loja")
	_, err = store.Put(ctx, want)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := badger.Open(badger.DefaultConfig(dir))
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Get(ctx, want.Key())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := badger.Open(badger.Config{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCacheOpenFailed.Error())
}
