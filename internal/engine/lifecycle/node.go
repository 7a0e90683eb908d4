package lifecycle

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fontconf/internal/adapters/clock"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fontconf/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fontconf/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fontconf/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fontconf/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fontconf/internal/adapters/xdg"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fontconf/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the config loader Graft node.
	LoaderNodeID graft.ID = "engine.loader"
	// RegistryNodeID is the unique identifier for the process registry Graft node.
	RegistryNodeID graft.ID = "engine.registry"
	// RescanGateNodeID is the unique identifier for the rescan gate Graft node.
	RescanGateNodeID graft.ID = "engine.rescan_gate"
)

func init() {
	// Loader Node
	graft.Register(graft.Node[*Loader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ScannerNodeID,
			xdg.NodeID,
			clock.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runLoaderNode,
	})

	// Registry Node
	graft.Register(graft.Node[*Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			LoaderNodeID,
			fs.DirCacheNodeID,
			xdg.NodeID,
		},
		Run: func(ctx context.Context) (*Registry, error) {
			loader, err := graft.Dep[*Loader](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[*fs.DirCache](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[*xdg.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			return NewRegistry(loader, cache, resolver), nil
		},
	})

	// RescanGate Node
	graft.Register(graft.Node[*RescanGate]{
		ID:        RescanGateNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			RegistryNodeID,
			LoaderNodeID,
			fs.ProbeNodeID,
			clock.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*RescanGate, error) {
			registry, err := graft.Dep[*Registry](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[*Loader](ctx)
			if err != nil {
				return nil, err
			}

			probe, err := graft.Dep[ports.UpToDateProbe](ctx)
			if err != nil {
				return nil, err
			}

			clk, err := graft.Dep[ports.Clock](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewRescanGate(registry, loader, probe, clk, tracer), nil
		},
	})
}

func runLoaderNode(ctx context.Context) (*Loader, error) {
	parser, err := graft.Dep[ports.Parser](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[ports.Builder](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[*xdg.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	clk, err := graft.Dep[ports.Clock](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return NewLoader(parser, builder, resolver, clk, log, tracer), nil
}
