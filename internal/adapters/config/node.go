package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/tide/internal/adapters/logger"
	"go.trai.ch/tide/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the configuration Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*Tidefile]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Tidefile, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to get current working directory")
			}

			tf, err := NewLoader(log).Load(cwd)
			if err != nil {
				return nil, err
			}

			if l, ok := log.(interface{ SetJSON(bool) }); ok {
				l.SetJSON(tf.Log.Format == FormatJSON)
			}

			return tf, nil
		},
	})
}
