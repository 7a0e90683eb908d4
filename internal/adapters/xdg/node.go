package xdg

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the XDG resolver Graft node.
const NodeID graft.ID = "adapter.xdg"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Resolver, error) {
			return New(), nil
		},
	})
}
