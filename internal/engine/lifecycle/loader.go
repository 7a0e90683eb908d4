// Package lifecycle establishes, installs and refreshes the active font configuration.
//
// Nothing in this package is synchronized. Hosts that call into it from more
// than one goroutine must serialize Init, Reinitialize, BringUpToDate and
// Teardown themselves.
package lifecycle

import (
	"context"
	"errors"

	"go.trai.ch/fontconf/internal/core/domain"
	"go.trai.ch/fontconf/internal/core/ports"
)

// Loader produces Configs from the default source, falling back to the
// compiled-in defaults when the source is unusable.
type Loader struct {
	parser    ports.Parser
	builder   ports.Builder
	cacheHome ports.CacheHomeResolver
	clock     ports.Clock
	logger    ports.Logger
	tracer    ports.Tracer
	defaults  domain.Defaults
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithDefaults overrides the compiled-in font and cache directories.
func WithDefaults(d domain.Defaults) LoaderOption {
	return func(l *Loader) {
		l.defaults = d
	}
}

// NewLoader creates a new Loader.
func NewLoader(
	parser ports.Parser,
	builder ports.Builder,
	cacheHome ports.CacheHomeResolver,
	clock ports.Clock,
	logger ports.Logger,
	tracer ports.Tracer,
	opts ...LoaderOption,
) *Loader {
	l := &Loader{
		parser:    parser,
		builder:   builder,
		cacheHome: cacheHome,
		clock:     clock,
		logger:    logger,
		tracer:    tracer,
		defaults:  domain.DefaultDirs(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadConfig parses the default configuration source.
// A source that cannot be parsed yields FallbackConfig instead. The returned
// Config always has at least one cache directory.
func (l *Loader) LoadConfig(ctx context.Context) (*domain.Config, error) {
	_, span := l.tracer.Start(ctx, "load_config")
	defer span.End()

	cfg, err := l.parser.ParseDefault()
	if err != nil || cfg == nil {
		span.SetAttribute("fallback", true)
		cfg, err = l.fallbackFrom(cfg)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		return cfg, nil
	}

	cfg.RescanTime = l.clock.Now()
	cfg, err = l.ensureCacheDirs(cfg)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("config.id", cfg.ID)
	return cfg, nil
}

// FallbackConfig builds a Config holding only the default font directory and
// the default cache directory.
func (l *Loader) FallbackConfig() (*domain.Config, error) {
	cfg := domain.NewConfig()
	release := true
	defer func() {
		if release {
			cfg.Destroy()
		}
	}()

	if err := cfg.AddFontDir(l.defaults.FontDir); err != nil {
		return nil, errors.Join(domain.ErrFallbackUnavailable, err)
	}
	if err := cfg.AddCacheDir(l.defaults.CacheDir); err != nil {
		return nil, errors.Join(domain.ErrFallbackUnavailable, err)
	}
	cfg.RescanTime = l.clock.Now()

	release = false
	return cfg, nil
}

// LoadConfigAndFonts loads a Config and builds its font database.
// When the build fails the Config is destroyed and never returned.
func (l *Loader) LoadConfigAndFonts(ctx context.Context) (*domain.Config, error) {
	ctx, span := l.tracer.Start(ctx, "load_config_and_fonts")
	defer span.End()

	cfg, err := l.LoadConfig(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := l.builder.Build(ctx, cfg); err != nil {
		cfg.Destroy()
		err = errors.Join(domain.ErrBuildFailed, err)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttribute("config.id", cfg.ID)
	span.SetAttribute("fonts", cfg.Fonts().Len())
	return cfg, nil
}

// fallbackFrom discards cfg and returns FallbackConfig. The paths cfg was
// read from stay tracked, so creating or fixing them makes the fallback stale.
func (l *Loader) fallbackFrom(cfg *domain.Config) (*domain.Config, error) {
	var tracked map[string]int64
	if cfg != nil {
		tracked = cfg.Tracked()
	}
	cfg.Destroy()

	fallback, err := l.FallbackConfig()
	if err != nil {
		return nil, err
	}
	for path, mtime := range tracked {
		fallback.Track(path, mtime)
	}
	return fallback, nil
}
