package telemetry

import (
	"context"
	"errors"

	"github.com/grindlemire/graft"
	"go.trai.ch/tide/internal/adapters/config"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[*Provider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Provider, error) {
			tf, err := graft.Dep[*config.Tidefile](ctx)
			if err != nil {
				return nil, err
			}

			w, err := ExportWriter(tf.Telemetry)
			if err != nil {
				return nil, err
			}
			if w == nil {
				return NewProvider(nil)
			}

			p, err := NewProvider(w)
			if err != nil {
				return nil, errors.Join(err, w.Close())
			}
			p.closer = w
			return p, nil
		},
	})
}
