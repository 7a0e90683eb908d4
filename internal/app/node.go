package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fontconf/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/fontconf/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/fontconf/internal/core/ports"
	"go.trai.ch/fontconf/internal/engine/lifecycle"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			lifecycle.RegistryNodeID,
			lifecycle.RescanGateNodeID,
			watcher.WatcherNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			registry, err := graft.Dep[*lifecycle.Registry](ctx)
			if err != nil {
				return nil, err
			}

			gate, err := graft.Dep[*lifecycle.RescanGate](ctx)
			if err != nil {
				return nil, err
			}

			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(registry, gate, w, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
