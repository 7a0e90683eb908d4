package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fontconf/internal/adapters/telemetry"
	"go.trai.ch/fontconf/internal/core/ports"
)

const (
	// DirCacheNodeID is the unique identifier for the directory cache Graft node.
	DirCacheNodeID graft.ID = "adapter.fs.dir_cache"
	// ScannerNodeID is the unique identifier for the font scanner Graft node.
	ScannerNodeID graft.ID = "adapter.fs.scanner"
	// ProbeNodeID is the unique identifier for the mtime probe Graft node.
	ProbeNodeID graft.ID = "adapter.fs.probe"
)

func init() {
	// DirCache Node (concrete type, also finalized by the registry)
	graft.Register(graft.Node[*DirCache]{
		ID:        DirCacheNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*DirCache, error) {
			return NewDirCache(), nil
		},
	})

	// Scanner Node
	graft.Register(graft.Node[ports.Builder]{
		ID:        ScannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{DirCacheNodeID, telemetry.TracerNodeID},
		Run: func(ctx context.Context) (ports.Builder, error) {
			cache, err := graft.Dep[*DirCache](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(cache, tracer), nil
		},
	})

	// Probe Node
	graft.Register(graft.Node[ports.UpToDateProbe]{
		ID:        ProbeNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.UpToDateProbe, error) {
			return NewMtimeProbe(), nil
		},
	})
}
