package builder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tide/internal/core/domain"
	"go.trai.ch/tide/internal/core/ports/mocks"
	"go.trai.ch/tide/internal/engine/builder"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*builder.Builder, *mocks.MockGraphStore, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockGraphStore(ctrl)
	log := mocks.NewMockLogger(ctrl)
	return builder.New(store, log), store, log
}

func TestBuild(t *testing.T) {
	b, store, _ := setup(t)
	store.EXPECT().Nodes(gomock.Any()).Return([]domain.Node{
		{Name: "Ibarra"}, {Name: "Loja", Coastal: true}, {Name: "Otavalo"}, {Name: "Galapagos"},
	}, nil)
	store.EXPECT().Edges(gomock.Any()).Return([]domain.Edge{
		{A: "Ibarra", B: "Otavalo", Weight: 30},
		{A: "Otavalo", B: "Loja", Weight: 50},
	}, nil)

	g, err := b.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Galapagos", "Ibarra", "Loja", "Otavalo"}, g.Nodes())
	assert.Equal(t, 2, g.EdgeCount())

	w, ok := g.Weight("Loja", "Otavalo")
	assert.True(t, ok)
	assert.Equal(t, int64(50), w)
}

func TestBuild_EdgeWithUndeclaredNode(t *testing.T) {
	b, store, _ := setup(t)
	store.EXPECT().Nodes(gomock.Any()).Return(nil, nil)
	store.EXPECT().Edges(gomock.Any()).Return([]domain.Edge{{A: "Manta", B: "Portoviejo", Weight: 40}}, nil)

	g, err := b.Build(context.Background())
	require.NoError(t, err)

	assert.True(t, g.HasNode("Manta"))
	assert.True(t, g.HasNode("Portoviejo"))
}

func TestBuild_DuplicateEdgeLastWins(t *testing.T) {
	b, store, log := setup(t)
	store.EXPECT().Nodes(gomock.Any()).Return(nil, nil)
	store.EXPECT().Edges(gomock.Any()).Return([]domain.Edge{
		{A: "A", B: "B", Weight: 10},
		{A: "B", B: "A", Weight: 4},
	}, nil)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	g, err := b.Build(context.Background())
	require.NoError(t, err)

	w, _ := g.Weight("A", "B")
	assert.Equal(t, int64(4), w)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestBuild_SkipsInvalidEdges(t *testing.T) {
	b, store, log := setup(t)
	store.EXPECT().Nodes(gomock.Any()).Return(nil, nil)
	store.EXPECT().Edges(gomock.Any()).Return([]domain.Edge{
		{A: "A", B: "A", Weight: 1},
		{A: "A", B: "B", Weight: -3},
		{A: "B", B: "C", Weight: 2},
	}, nil)
	log.EXPECT().Warn(gomock.Any()).Times(2)

	g, err := b.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, g.EdgeCount())
	_, ok := g.Weight("A", "B")
	assert.False(t, ok)
}

func TestBuild_StoreUnavailable(t *testing.T) {
	cause := errors.New("connection refused")

	t.Run("Nodes", func(t *testing.T) {
		b, store, _ := setup(t)
		store.EXPECT().Nodes(gomock.Any()).Return(nil, cause)
		store.EXPECT().Edges(gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := b.Build(context.Background())
		require.ErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Edges", func(t *testing.T) {
		b, store, _ := setup(t)
		store.EXPECT().Nodes(gomock.Any()).Return(nil, nil).AnyTimes()
		store.EXPECT().Edges(gomock.Any()).Return(nil, cause)

		_, err := b.Build(context.Background())
		require.ErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.ErrorIs(t, err, cause)
	})
}
