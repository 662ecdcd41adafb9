package ports

import "context"

// GraphWatcher reports changes to the graph store's backing data.
//
//go:generate go run go.uber.org/mock/mockgen -source=graph_watcher.go -destination=mocks/mock_graph_watcher.go -package=mocks
type GraphWatcher interface {
	// Watch calls onChange after the graph data changes, coalescing bursts of
	// changes into a single call. It blocks until ctx is canceled.
	Watch(ctx context.Context, onChange func()) error
}
