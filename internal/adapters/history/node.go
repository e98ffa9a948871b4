package history

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/provision/internal/core/ports"
)

// NodeID is the unique identifier for the history factory node.
const NodeID graft.ID = "adapter.history"

func init() {
	graft.Register(graft.Node[ports.HistoryFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HistoryFactory, error) {
			return NewFactory(), nil
		},
	})
}
