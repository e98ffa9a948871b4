package commands

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/provision/internal/adapters/shell"
	"go.trai.ch/provision/internal/core/ports"
)

// NodeID is the unique identifier for the command registry node.
const NodeID graft.ID = "adapter.commands"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (*Registry, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewDefaultRegistry(executor), nil
		},
	})
}
