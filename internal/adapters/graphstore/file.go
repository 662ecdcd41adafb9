// Package graphstore provides graph store adapters backed by a YAML file or memory.
package graphstore

import (
	"cmp"
	"context"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/tide/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// File implements ports.GraphStore over a YAML file.
// The file is re-read on every call so edits are picked up without a restart.
type File struct {
	path     string
	validate *validator.Validate
}

// NewFile creates a File store reading from path.
func NewFile(path string) *File {
	return &File{
		path:     path,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Nodes returns every location ordered by name.
func (f *File) Nodes(ctx context.Context) ([]domain.Node, error) {
	nodes, _, err := f.load(ctx)
	return nodes, err
}

// Edges returns every connection in file order.
func (f *File) Edges(ctx context.Context) ([]domain.Edge, error) {
	_, edges, err := f.load(ctx)
	return edges, err
}

// CoastalSet returns the names of all coastal locations.
func (f *File) CoastalSet(ctx context.Context) (domain.CoastalSet, error) {
	nodes, _, err := f.load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.CoastalSetFromNodes(nodes), nil
}

// Ping reports whether the file can be read and parsed.
func (f *File) Ping(ctx context.Context) error {
	_, _, err := f.load(ctx)
	return err
}

func (f *File) load(ctx context.Context) ([]domain.Node, []domain.Edge, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrGraphReadFailed.Error()), "path", f.path)
	}

	var gf GraphFile
	if err := yaml.Unmarshal(data, &gf); err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrGraphParseFailed.Error()), "path", f.path)
	}

	if err := f.validate.Struct(&gf); err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrGraphParseFailed.Error()), "path", f.path)
	}

	nodes, edges, err := toDomain(&gf)
	if err != nil {
		return nil, nil, zerr.With(err, "path", f.path)
	}
	return nodes, edges, nil
}

// toDomain converts the file representation and enforces the store invariants:
// unique names, known endpoints, no self-loops, positive distances and at most
// one connection per unordered pair.
func toDomain(gf *GraphFile) ([]domain.Node, []domain.Edge, error) {
	nodes := make([]domain.Node, 0, len(gf.Locations))
	seen := make(map[string]struct{}, len(gf.Locations))

	for _, loc := range gf.Locations {
		if _, dup := seen[loc.Name]; dup {
			return nil, nil, zerr.With(domain.ErrDuplicateNode, "location", loc.Name)
		}
		seen[loc.Name] = struct{}{}
		nodes = append(nodes, domain.Node{Name: loc.Name, Coastal: loc.Coastal, Visits: loc.Visits})
	}
	slices.SortFunc(nodes, func(a, b domain.Node) int { return cmp.Compare(a.Name, b.Name) })

	edges := make([]domain.Edge, 0, len(gf.Connections))
	pairs := make(map[[2]string]struct{}, len(gf.Connections))

	for _, c := range gf.Connections {
		e := domain.Edge{A: c.From, B: c.To, Weight: c.Distance}
		switch {
		case e.IsSelfLoop():
			return nil, nil, zerr.With(domain.ErrSelfLoop, "location", e.A)
		case e.Weight <= 0:
			return nil, nil, zerr.With(zerr.With(domain.ErrInvalidWeight, "connection", e.A+"-"+e.B), "distance", e.Weight)
		}
		for _, end := range []string{e.A, e.B} {
			if _, ok := seen[end]; !ok {
				return nil, nil, zerr.With(domain.ErrUnknownLocation, "location", end)
			}
		}

		key := pairKey(e.A, e.B)
		if _, dup := pairs[key]; dup {
			return nil, nil, zerr.With(domain.ErrDuplicateEdge, "connection", e.A+"-"+e.B)
		}
		pairs[key] = struct{}{}
		edges = append(edges, e)
	}

	return nodes, edges, nil
}

func pairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}
