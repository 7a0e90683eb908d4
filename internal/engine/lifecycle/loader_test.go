package lifecycle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fontconf/internal/adapters/telemetry"
	"go.trai.ch/fontconf/internal/core/domain"
	"go.trai.ch/fontconf/internal/core/ports/mocks"
	"go.trai.ch/fontconf/internal/engine/lifecycle"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

type loaderMocks struct {
	parser    *mocks.MockParser
	builder   *mocks.MockBuilder
	cacheHome *mocks.MockCacheHomeResolver
	clock     *mocks.MockClock
	logger    *mocks.MockLogger
}

func newLoader(t *testing.T, opts ...lifecycle.LoaderOption) (*lifecycle.Loader, loaderMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := loaderMocks{
		parser:    mocks.NewMockParser(ctrl),
		builder:   mocks.NewMockBuilder(ctrl),
		cacheHome: mocks.NewMockCacheHomeResolver(ctrl),
		clock:     mocks.NewMockClock(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	m.clock.EXPECT().Now().Return(testNow).AnyTimes()

	loader := lifecycle.NewLoader(
		m.parser,
		m.builder,
		m.cacheHome,
		m.clock,
		m.logger,
		telemetry.NewNoOpTracer(),
		opts...,
	)
	return loader, m
}

func parsedConfig(t *testing.T, fontDirs, cacheDirs []string) *domain.Config {
	t.Helper()
	cfg := domain.NewConfig()
	for _, d := range fontDirs {
		require.NoError(t, cfg.AddFontDir(d))
	}
	for _, d := range cacheDirs {
		require.NoError(t, cfg.AddCacheDir(d))
	}
	return cfg
}

func TestLoader_FallbackConfig(t *testing.T) {
	loader, _ := newLoader(t)

	cfg, err := loader.FallbackConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{domain.DefaultFontDir}, cfg.FontDirs())
	assert.Equal(t, []string{domain.DefaultCacheDir}, cfg.CacheDirs())
	assert.Equal(t, domain.DefaultRescanInterval, cfg.RescanInterval)
	assert.Equal(t, testNow, cfg.RescanTime)
}

func TestLoader_FallbackConfig_InvalidDefaults(t *testing.T) {
	tests := []struct {
		name     string
		defaults domain.Defaults
	}{
		{name: "empty font dir", defaults: domain.Defaults{CacheDir: "/cache"}},
		{name: "empty cache dir", defaults: domain.Defaults{FontDir: "/fonts"}},
		{name: "relative font dir", defaults: domain.Defaults{FontDir: "fonts", CacheDir: "/cache"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t, lifecycle.WithDefaults(tt.defaults))

			cfg, err := loader.FallbackConfig()
			require.ErrorIs(t, err, domain.ErrFallbackUnavailable)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoader_LoadConfig_Success(t *testing.T) {
	loader, m := newLoader(t)
	parsed := parsedConfig(t, []string{"/fonts"}, []string{"/cache"})
	m.parser.EXPECT().ParseDefault().Return(parsed, nil)

	cfg, err := loader.LoadConfig(t.Context())
	require.NoError(t, err)

	assert.Same(t, parsed, cfg)
	assert.Equal(t, []string{"/fonts"}, cfg.FontDirs())
	assert.Equal(t, []string{"/cache"}, cfg.CacheDirs())
	assert.Equal(t, testNow, cfg.RescanTime)
}

func TestLoader_LoadConfig_ParseFailureFallsBack(t *testing.T) {
	loader, m := newLoader(t)
	partial := parsedConfig(t, []string{"/partial"}, nil)
	m.parser.EXPECT().ParseDefault().Return(partial, errors.Join(domain.ErrParseFailed, errors.New("bad yaml")))

	cfg, err := loader.LoadConfig(t.Context())
	require.NoError(t, err)

	assert.True(t, partial.Destroyed())
	assert.Equal(t, []string{domain.DefaultFontDir}, cfg.FontDirs())
	assert.Equal(t, []string{domain.DefaultCacheDir}, cfg.CacheDirs())
}

func TestLoader_LoadConfig_FallbackKeepsTracking(t *testing.T) {
	loader, m := newLoader(t)
	partial := domain.NewConfig()
	partial.Track("/etc/fontconf/fonts.yaml", 0)
	partial.Track("/etc/fontconf/fonts.toml", 42)
	m.parser.EXPECT().ParseDefault().Return(partial, domain.ErrConfigNotFound)

	cfg, err := loader.LoadConfig(t.Context())
	require.NoError(t, err)

	assert.NotSame(t, partial, cfg)
	assert.Equal(t, map[string]int64{
		"/etc/fontconf/fonts.yaml": 0,
		"/etc/fontconf/fonts.toml": 42,
	}, cfg.Tracked())
}

func TestLoader_LoadConfig_ParseFailureWithoutPartial(t *testing.T) {
	loader, m := newLoader(t)
	m.parser.EXPECT().ParseDefault().Return(nil, domain.ErrConfigNotFound)

	cfg, err := loader.LoadConfig(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{domain.DefaultCacheDir}, cfg.CacheDirs())
}

func TestLoader_LoadConfig_FallbackUnavailable(t *testing.T) {
	loader, m := newLoader(t, lifecycle.WithDefaults(domain.Defaults{}))
	m.parser.EXPECT().ParseDefault().Return(nil, domain.ErrConfigNotFound)

	cfg, err := loader.LoadConfig(t.Context())
	require.ErrorIs(t, err, domain.ErrFallbackUnavailable)
	assert.Nil(t, cfg)
}

func TestLoader_LoadConfig_InjectsCacheDirs(t *testing.T) {
	loader, m := newLoader(t)
	parsed := parsedConfig(t, []string{"/fonts"}, nil)

	gomock.InOrder(
		m.parser.EXPECT().ParseDefault().Return(parsed, nil),
		m.logger.EXPECT().Warn("no cache directories configured; check configuration"),
		m.logger.EXPECT().Warn("adding cache directory "+domain.DefaultCacheDir),
		m.cacheHome.EXPECT().CacheHome().Return("/home/user/.cache", nil),
	)

	cfg, err := loader.LoadConfig(t.Context())
	require.NoError(t, err)

	assert.Same(t, parsed, cfg)
	assert.Equal(t, []string{domain.DefaultCacheDir, "/home/user/.cache/fontconfig"}, cfg.CacheDirs())
	assert.Equal(t, []string{"/fonts"}, cfg.FontDirs())
}

func TestLoader_LoadConfig_CacheHomeFailureFallsBack(t *testing.T) {
	loader, m := newLoader(t)
	parsed := parsedConfig(t, []string{"/fonts"}, nil)

	m.parser.EXPECT().ParseDefault().Return(parsed, nil)
	m.logger.EXPECT().Warn(gomock.Any()).Times(2)
	m.cacheHome.EXPECT().CacheHome().Return("", domain.ErrCacheHomeUnresolved)

	cfg, err := loader.LoadConfig(t.Context())
	require.NoError(t, err)

	fallback, err := loader.FallbackConfig()
	require.NoError(t, err)

	assert.True(t, parsed.Destroyed())
	assert.Equal(t, fallback.FontDirs(), cfg.FontDirs())
	assert.Equal(t, fallback.CacheDirs(), cfg.CacheDirs())
}

func TestLoader_LoadConfig_CacheDirFallbackKeepsTracking(t *testing.T) {
	tests := []struct {
		name    string
		home    string
		homeErr error
	}{
		{name: "cache home unresolved", homeErr: domain.ErrCacheHomeUnresolved},
		{name: "relative cache home", home: "relative/cache"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, m := newLoader(t)
			parsed := parsedConfig(t, []string{"/fonts"}, nil)
			parsed.Track("/etc/fontconf/fonts.yaml", 42)
			parsed.Track("/etc/fontconf/conf.d", 7)

			m.parser.EXPECT().ParseDefault().Return(parsed, nil)
			m.logger.EXPECT().Warn(gomock.Any()).Times(2)
			m.cacheHome.EXPECT().CacheHome().Return(tt.home, tt.homeErr)

			cfg, err := loader.LoadConfig(t.Context())
			require.NoError(t, err)

			assert.True(t, parsed.Destroyed())
			assert.Equal(t, []string{domain.DefaultCacheDir}, cfg.CacheDirs())
			assert.Equal(t, map[string]int64{
				"/etc/fontconf/fonts.yaml": 42,
				"/etc/fontconf/conf.d":     7,
			}, cfg.Tracked())
		})
	}
}

func TestLoader_LoadConfig_AppendFailureFallsBack(t *testing.T) {
	// A relative cache home cannot be appended.
	loader, m := newLoader(t)
	parsed := parsedConfig(t, []string{"/fonts"}, nil)

	m.parser.EXPECT().ParseDefault().Return(parsed, nil)
	m.logger.EXPECT().Warn(gomock.Any()).Times(2)
	m.cacheHome.EXPECT().CacheHome().Return("relative/cache", nil)

	cfg, err := loader.LoadConfig(t.Context())
	require.NoError(t, err)

	assert.True(t, parsed.Destroyed())
	assert.Equal(t, []string{domain.DefaultFontDir}, cfg.FontDirs())
	assert.Equal(t, []string{domain.DefaultCacheDir}, cfg.CacheDirs())
}

func TestLoader_LoadConfigAndFonts(t *testing.T) {
	loader, m := newLoader(t)
	parsed := parsedConfig(t, []string{"/fonts"}, []string{"/cache"})

	m.parser.EXPECT().ParseDefault().Return(parsed, nil)
	m.builder.EXPECT().Build(gomock.Any(), parsed).DoAndReturn(func(_ context.Context, cfg *domain.Config) error {
		cfg.Fonts().Add(domain.Font{Path: "/fonts/a.ttf", Dir: "/fonts"})
		return nil
	})

	cfg, err := loader.LoadConfigAndFonts(t.Context())
	require.NoError(t, err)

	assert.Same(t, parsed, cfg)
	assert.Equal(t, 1, cfg.Fonts().Len())
}

func TestLoader_LoadConfigAndFonts_BuildFailure(t *testing.T) {
	loader, m := newLoader(t)
	parsed := parsedConfig(t, []string{"/fonts"}, []string{"/cache"})
	buildErr := errors.New("disk on fire")

	m.parser.EXPECT().ParseDefault().Return(parsed, nil)
	m.builder.EXPECT().Build(gomock.Any(), parsed).Return(buildErr)

	cfg, err := loader.LoadConfigAndFonts(t.Context())
	require.ErrorIs(t, err, domain.ErrBuildFailed)
	require.ErrorIs(t, err, buildErr)

	assert.Nil(t, cfg)
	assert.True(t, parsed.Destroyed())
}

func TestLoader_LoadConfig_AlwaysHasCacheDirs(t *testing.T) {
	tests := []struct {
		name    string
		parsed  func(t *testing.T) (*domain.Config, error)
		home    string
		homeErr error
	}{
		{
			name: "configured",
			parsed: func(t *testing.T) (*domain.Config, error) {
				return parsedConfig(t, nil, []string{"/c"}), nil
			},
		},
		{
			name: "injected",
			parsed: func(t *testing.T) (*domain.Config, error) {
				return parsedConfig(t, nil, nil), nil
			},
			home: "/home/u/.cache",
		},
		{
			name: "resolution failure",
			parsed: func(t *testing.T) (*domain.Config, error) {
				return parsedConfig(t, nil, nil), nil
			},
			homeErr: domain.ErrCacheHomeUnresolved,
		},
		{
			name: "parse failure",
			parsed: func(*testing.T) (*domain.Config, error) {
				return nil, domain.ErrParseFailed
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, m := newLoader(t)
			m.parser.EXPECT().ParseDefault().Return(tt.parsed(t))
			m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
			m.cacheHome.EXPECT().CacheHome().Return(tt.home, tt.homeErr).AnyTimes()

			cfg, err := loader.LoadConfig(t.Context())
			require.NoError(t, err)
			assert.NotEmpty(t, cfg.CacheDirs())
		})
	}
}
