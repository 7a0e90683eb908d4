package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fontconf/internal/core/ports"
)

// NodeID is the unique identifier for the config parser Graft node.
const NodeID graft.ID = "adapter.config_parser"

func init() {
	graft.Register(graft.Node[ports.Parser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Parser, error) {
			return NewParser(NewOSFS()), nil
		},
	})
}
