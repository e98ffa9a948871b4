package selector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/provision/internal/core/ports"
)

// NodeID is the unique identifier for the task selector node.
const NodeID graft.ID = "adapter.selector"

func init() {
	graft.Register(graft.Node[ports.TaskSelector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TaskSelector, error) {
			return New(), nil
		},
	})
}
