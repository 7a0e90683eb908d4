package fs

import (
	"context"
	"runtime"

	"go.trai.ch/fontconf/internal/core/domain"
	"go.trai.ch/fontconf/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

var _ ports.Builder = (*Scanner)(nil)

// Scanner implements ports.Builder by walking font directories in parallel.
type Scanner struct {
	cache   *DirCache
	tracer  ports.Tracer
	workers int
}

// NewScanner creates a new Scanner backed by cache.
func NewScanner(cache *DirCache, tracer ports.Tracer) *Scanner {
	return &Scanner{
		cache:   cache,
		tracer:  tracer,
		workers: runtime.GOMAXPROCS(0),
	}
}

// Build scans every font directory of cfg and replaces its font database.
// Directories listed earlier win when the same font path appears twice.
func (s *Scanner) Build(ctx context.Context, cfg *domain.Config) error {
	ctx, span := s.tracer.Start(ctx, "build_fonts")
	defer span.End()

	dirs := cfg.FontDirs()
	scans := make([]*DirScan, len(dirs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, dir := range dirs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scan, err := s.scan(dir)
			if err != nil {
				return err
			}
			scans[i] = scan
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return err
	}

	fonts := domain.NewFontSet()
	for _, scan := range scans {
		for _, f := range scan.Fonts {
			fonts.Add(f)
		}
		for path, mtime := range scan.Mtimes {
			cfg.Track(path, mtime)
		}
	}
	cfg.SetFonts(fonts)

	span.SetAttribute("dirs", len(dirs))
	span.SetAttribute("fonts", fonts.Len())
	return nil
}

func (s *Scanner) scan(root string) (*DirScan, error) {
	if paths := s.cache.Paths(root); paths != nil {
		current := make(map[string]int64, len(paths))
		for _, p := range paths {
			current[p] = statMtime(p)
		}
		if scan, ok := s.cache.Get(root, current); ok {
			return scan, nil
		}
	}

	scan, err := walkFontDir(root)
	if err != nil {
		return nil, err
	}
	s.cache.Set(scan)
	return scan, nil
}
