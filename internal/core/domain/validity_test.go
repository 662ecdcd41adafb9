package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tide/internal/core/domain"
)

func TestIsValid(t *testing.T) {
	coastal := domain.NewCoastalSet("Esmeraldas", "Manta")

	tests := []struct {
		name string
		path []string
		want bool
	}{
		{name: "empty path", path: []string{}, want: false},
		{name: "nil path", path: nil, want: false},
		{name: "no coastal node", path: []string{"Ibarra", "Otavalo", "Quito"}, want: false},
		{name: "coastal at start", path: []string{"Manta", "Portoviejo", "Quito"}, want: true},
		{name: "coastal in middle", path: []string{"Quito", "Esmeraldas", "Ibarra"}, want: true},
		{name: "coastal at end", path: []string{"Quito", "Santo Domingo", "Manta"}, want: true},
		{name: "single coastal node", path: []string{"Manta"}, want: true},
		{name: "single inland node", path: []string{"Quito"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsValid(tt.path, coastal))
		})
	}
}

func TestCoastalSetFromNodes(t *testing.T) {
	set := domain.CoastalSetFromNodes([]domain.Node{
		{Name: "Loja", Coastal: true},
		{Name: "Ibarra"},
		{Name: "Manta", Coastal: true},
	})

	assert.True(t, set.Has("Loja"))
	assert.True(t, set.Has("Manta"))
	assert.False(t, set.Has("Ibarra"))
	assert.Len(t, set, 2)
}
