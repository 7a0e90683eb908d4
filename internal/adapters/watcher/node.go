package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fontconf/internal/adapters/logger"
	"go.trai.ch/fontconf/internal/core/ports"
)

// WatcherNodeID is the unique identifier for the file watcher Graft node.
const WatcherNodeID graft.ID = "adapter.watcher"

func init() {
	// Watcher Node. Not cacheable: a Watcher can only be started once.
	graft.Register(graft.Node[ports.Watcher]{
		ID:        WatcherNodeID,
		Cacheable: false,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Watcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(log)
		},
	})
}
