package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tide/internal/adapters/graphstore"
	"go.trai.ch/tide/internal/adapters/memory"
	"go.trai.ch/tide/internal/adapters/metrics"
	"go.trai.ch/tide/internal/adapters/telemetry"
	"go.trai.ch/tide/internal/app"
	"go.trai.ch/tide/internal/core/domain"
	"go.trai.ch/tide/internal/core/ports"
	"go.trai.ch/tide/internal/core/ports/mocks"
	"go.trai.ch/tide/internal/engine/builder"
	"go.trai.ch/tide/internal/engine/router"
	"go.uber.org/mock/gomock"
)

func andesStore() *graphstore.Memory {
	store := graphstore.NewMemory()
	store.PutNode(domain.Node{Name: "Loja", Coastal: true})
	store.Connect("Ibarra", "Otavalo", 30)
	store.Connect("Otavalo", "Loja", 50)
	store.Connect("Ibarra", "Loja", 100)
	return store
}

func newApp(store ports.GraphStore, cache ports.RouteCache, log ports.Logger) *app.App {
	svc := router.New(builder.New(store, log), store, cache, telemetry.NewNoOpTracer(), metrics.New(), log)
	return app.New(svc, store, cache, log)
}

func TestApp_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := memory.NewStore()
	a := newApp(andesStore(), cache, mocks.NewMockLogger(ctrl))

	res, err := a.Resolve(context.Background(), "Ibarra", "Loja")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ibarra", "Otavalo", "Loja"}, res.Path)
	require.NotNil(t, res.Cost)
	assert.Equal(t, int64(80), *res.Cost)
	assert.True(t, res.Valid)

	_, err = a.Resolve(context.Background(), "", "Loja")
	require.ErrorIs(t, err, domain.ErrEmptyLocation)
}

func TestApp_NodesAndStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := newApp(andesStore(), memory.NewStore(), mocks.NewMockLogger(ctrl))

	nodes, err := a.Nodes(context.Background())
	require.NoError(t, err)
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name
	}
	assert.Equal(t, []string{"Ibarra", "Loja", "Otavalo"}, names)

	_, err = a.Resolve(context.Background(), "Ibarra", "Loja")
	require.NoError(t, err)

	st, err := a.Stats(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Locations)
	assert.Equal(t, 3, st.Connections)
	assert.Equal(t, 1, st.Routes)
	assert.Len(t, st.MostVisited, 2)
}

func TestApp_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockGraphStore(ctrl)
	errBoom := errors.New("no such file")
	a := newApp(store, memory.NewStore(), mocks.NewMockLogger(ctrl))

	store.EXPECT().Nodes(gomock.Any()).Return(nil, errBoom)
	_, err := a.Nodes(context.Background())
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)

	store.EXPECT().Ping(gomock.Any()).Return(errBoom)
	err = a.Ping(context.Background())
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	require.ErrorIs(t, err, errBoom)
}

func TestApp_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockRouteCache(ctrl)
	errCache := errors.New("cache close")
	errHook := errors.New("hook")

	var hooked bool
	a := newApp(andesStore(), cache, mocks.NewMockLogger(ctrl)).
		OnClose(func(context.Context) error {
			hooked = true
			return errHook
		})

	cache.EXPECT().Close().Return(errCache)

	err := a.Close(context.Background())
	require.ErrorIs(t, err, errCache)
	require.ErrorIs(t, err, errHook)
	assert.True(t, hooked)
}

func TestApp_Serve(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any())

	a := newApp(andesStore(), memory.NewStore(), log).
		WithServer(app.ServerOptions{Addr: "127.0.0.1:0"})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Serve(ctx))
}

func TestApp_ServeReportsGraphChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	w := mocks.NewMockGraphWatcher(ctrl)

	changed := make(chan string, 1)
	log.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		if strings.HasPrefix(msg, "graph changed") {
			changed <- msg
		}
	}).Times(2)

	w.EXPECT().Watch(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, onChange func()) error {
		onChange()
		<-ctx.Done()
		return nil
	})

	a := newApp(andesStore(), memory.NewStore(), log).
		WithServer(app.ServerOptions{Addr: "127.0.0.1:0", Watcher: w})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Serve(ctx) }()

	select {
	case msg := <-changed:
		assert.Contains(t, msg, "3 locations, 3 connections")
	case <-time.After(2 * time.Second):
		t.Fatal("graph change was not reported")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestApp_ServeWatcherFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	w := mocks.NewMockGraphWatcher(ctrl)
	errWatch := errors.New("inotify limit reached")
	w.EXPECT().Watch(gomock.Any(), gomock.Any()).Return(errWatch)

	a := newApp(andesStore(), memory.NewStore(), log).
		WithServer(app.ServerOptions{Addr: "127.0.0.1:0", Watcher: w})

	err := a.Serve(context.Background())
	require.ErrorIs(t, err, errWatch)
}
