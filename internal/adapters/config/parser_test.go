package config_test

import (
	"os"
	"path"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fontconf/internal/adapters/config"
	"go.trai.ch/fontconf/internal/core/domain"
)

const mainFile = "/etc/fontconf/fonts.yaml"

var modTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newMapParser(files fstest.MapFS, candidates ...string) *config.Parser {
	if len(candidates) == 0 {
		candidates = []string{mainFile}
	}
	return config.NewParser(
		config.NewMapFS("/", files),
		config.WithCandidates(candidates...),
		config.WithHomeDir("/home/user"),
	)
}

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content), ModTime: modTime}
}

func TestParser_ParseDefault_YAML(t *testing.T) {
	p := newMapParser(fstest.MapFS{
		"etc/fontconf/fonts.yaml": file(`
version: "1"
dirs:
  - /usr/share/fonts
  - ~/.local/share/fonts
  - extra
cachedirs:
  - /var/cache/fontconfig
rescan: 60
`),
	})

	cfg, err := p.ParseDefault()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/usr/share/fonts",
		"/home/user/.local/share/fonts",
		"/etc/fontconf/extra",
	}, cfg.FontDirs())
	assert.Equal(t, []string{"/var/cache/fontconfig"}, cfg.CacheDirs())
	assert.Equal(t, time.Minute, cfg.RescanInterval)
	assert.Equal(t, []string{mainFile}, cfg.ConfigFiles())
	assert.Equal(t, modTime.UnixNano(), cfg.Tracked()[mainFile])
}

func TestParser_ParseDefault_TOMLParity(t *testing.T) {
	p := newMapParser(fstest.MapFS{
		"etc/fontconf/fonts.toml": file(`
version = "1"
dirs = ["/usr/share/fonts", "~/fonts"]
cachedirs = ["/var/cache/fontconfig"]
rescan = 0
`),
	}, "/etc/fontconf/fonts.toml")

	cfg, err := p.ParseDefault()
	require.NoError(t, err)

	assert.Equal(t, []string{"/usr/share/fonts", "/home/user/fonts"}, cfg.FontDirs())
	assert.Equal(t, []string{"/var/cache/fontconfig"}, cfg.CacheDirs())
	assert.Equal(t, time.Duration(0), cfg.RescanInterval)
}

func TestParser_ParseDefault_DefaultsAndEmptyCacheDirs(t *testing.T) {
	p := newMapParser(fstest.MapFS{
		"etc/fontconf/fonts.yaml": file("dirs: [/usr/share/fonts]\n"),
	})

	cfg, err := p.ParseDefault()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultRescanInterval, cfg.RescanInterval)
	assert.Empty(t, cfg.CacheDirs())
}

func TestParser_ParseDefault_Includes(t *testing.T) {
	p := newMapParser(fstest.MapFS{
		"etc/fontconf/fonts.yaml": file(`
dirs: [/usr/share/fonts]
rescan: 10
include:
  - conf.d/*.yaml
  - missing.d/*.yaml
  - fonts.yaml
`),
		"etc/fontconf/conf.d/20-local.yaml": file(`
dirs: [/opt/fonts]
rescan: 20
include: [../fonts.yaml]
`),
		"etc/fontconf/conf.d/10-cache.yaml": file("cachedirs: [/tmp/fc]\n"),
		"etc/fontconf/conf.d/notes.txt":     file("ignored"),
	})

	cfg, err := p.ParseDefault()
	require.NoError(t, err)

	assert.Equal(t, []string{"/usr/share/fonts", "/opt/fonts"}, cfg.FontDirs())
	assert.Equal(t, []string{"/tmp/fc"}, cfg.CacheDirs())
	assert.Equal(t, 20*time.Second, cfg.RescanInterval)
	assert.Equal(t, []string{
		mainFile,
		"/etc/fontconf/conf.d/10-cache.yaml",
		"/etc/fontconf/conf.d/20-local.yaml",
	}, cfg.ConfigFiles())

	tracked := cfg.Tracked()
	assert.Contains(t, tracked, "/etc/fontconf/conf.d")
	assert.Contains(t, tracked, "/etc/fontconf/missing.d")
	assert.Equal(t, int64(0), tracked["/etc/fontconf/missing.d"])
}

func TestParser_ParseDefault_CandidateOrder(t *testing.T) {
	p := newMapParser(fstest.MapFS{
		"home/user/.config/fontconf/fonts.yaml/keep": file(""),
		"etc/fontconf/fonts.toml":                    file(`dirs = ["/sys-fonts"]`),
	},
		"/home/user/.config/fontconf/fonts.yaml",
		"/home/user/.config/fontconf/fonts.toml",
		"/etc/fontconf/fonts.yaml",
		"/etc/fontconf/fonts.toml",
	)

	cfg, err := p.ParseDefault()
	require.NoError(t, err)
	assert.Equal(t, []string{"/sys-fonts"}, cfg.FontDirs())
	assert.Equal(t, []string{"/etc/fontconf/fonts.toml"}, cfg.ConfigFiles())
}

func TestParser_ParseDefault_Errors(t *testing.T) {
	tests := []struct {
		name        string
		files       fstest.MapFS
		candidate   string
		wantPartial bool
		wantContain string
		wantIs      error
	}{
		{
			name:        "malformed yaml",
			files:       fstest.MapFS{"etc/fontconf/fonts.yaml": file("dirs: [unterminated\n")},
			wantPartial: true,
			wantContain: domain.ErrConfigParseFailed.Error(),
			wantIs:      domain.ErrConfigParseFailed,
		},
		{
			name:        "malformed toml",
			files:       fstest.MapFS{"etc/fontconf/fonts.toml": file("dirs = [")},
			candidate:   "/etc/fontconf/fonts.toml",
			wantPartial: true,
			wantContain: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:        "unsupported format",
			files:       fstest.MapFS{"etc/fontconf/fonts.json": file("{}")},
			candidate:   "/etc/fontconf/fonts.json",
			wantPartial: true,
			wantContain: domain.ErrUnsupportedConfigFormat.Error(),
		},
		{
			name:        "negative rescan",
			files:       fstest.MapFS{"etc/fontconf/fonts.yaml": file("rescan: -5\n")},
			wantPartial: true,
			wantContain: domain.ErrInvalidRescanInterval.Error(),
		},
		{
			name:        "rescan overflows duration",
			files:       fstest.MapFS{"etc/fontconf/fonts.yaml": file("rescan: 9300000000\n")},
			wantPartial: true,
			wantContain: domain.ErrInvalidRescanInterval.Error(),
		},
		{
			name: "broken include keeps earlier directories",
			files: fstest.MapFS{
				"etc/fontconf/fonts.yaml":      file("dirs: [/a]\ninclude: [conf.d/*.yaml]\n"),
				"etc/fontconf/conf.d/bad.yaml": file(":\n  - ["),
			},
			wantPartial: true,
			wantContain: domain.ErrConfigParseFailed.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := tt.candidate
			if candidate == "" {
				candidate = mainFile
			}
			p := newMapParser(tt.files, candidate)

			cfg, err := p.ParseDefault()
			require.ErrorIs(t, err, domain.ErrParseFailed)
			require.ErrorContains(t, err, tt.wantContain)
			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantPartial {
				require.NotNil(t, cfg)
			}
		})
	}
}

func TestParser_ParseDefault_LargestRescanInterval(t *testing.T) {
	p := newMapParser(fstest.MapFS{
		"etc/fontconf/fonts.yaml": file("rescan: 9223372036\n"),
	})

	cfg, err := p.ParseDefault()
	require.NoError(t, err)
	assert.Equal(t, 9223372036*time.Second, cfg.RescanInterval)
	assert.Positive(t, cfg.RescanInterval)
}

func TestParser_ParseDefault_BrokenIncludeIsPartial(t *testing.T) {
	p := newMapParser(fstest.MapFS{
		"etc/fontconf/fonts.yaml":      file("dirs: [/a]\ninclude: [conf.d/*.yaml]\n"),
		"etc/fontconf/conf.d/bad.yaml": file(":\n  - ["),
	})

	cfg, err := p.ParseDefault()
	require.Error(t, err)
	assert.Equal(t, []string{"/a"}, cfg.FontDirs())
}

func TestParser_ParseDefault_NotFound(t *testing.T) {
	p := newMapParser(fstest.MapFS{}, "/nowhere/fonts.yaml", "/also/nowhere/fonts.toml")

	cfg, err := p.ParseDefault()
	require.ErrorIs(t, err, domain.ErrParseFailed)
	require.ErrorIs(t, err, domain.ErrConfigNotFound)

	// Missing candidates are tracked so that creating one is noticed.
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.FontDirs())
	assert.Equal(t, map[string]int64{
		"/nowhere/fonts.yaml":      0,
		"/also/nowhere/fonts.toml": 0,
	}, cfg.Tracked())
}

func TestDefaultCandidates(t *testing.T) {
	t.Run("pinned file", func(t *testing.T) {
		t.Setenv(domain.ConfigFileEnv, "/srv/fonts.toml")

		assert.Equal(t, []string{"/srv/fonts.toml"}, config.DefaultCandidates())
	})

	t.Run("xdg then system", func(t *testing.T) {
		t.Setenv(domain.ConfigFileEnv, "")
		t.Setenv("XDG_CONFIG_HOME", "/home/user/.config")

		assert.Equal(t, []string{
			"/home/user/.config/fontconf/fonts.yaml",
			"/home/user/.config/fontconf/fonts.toml",
			"/etc/fontconf/fonts.yaml",
			"/etc/fontconf/fonts.toml",
		}, config.DefaultCandidates())
	})
}

func TestParser_OSFS(t *testing.T) {
	root := t.TempDir()
	confDir := filepath.Join(root, "conf.d")
	require.NoError(t, os.Mkdir(confDir, domain.DirPerm))

	mainPath := filepath.Join(root, "fonts.yaml")
	require.NoError(t, os.WriteFile(mainPath, []byte("dirs: [fonts]\ninclude: [conf.d/*.toml]\n"), domain.FilePerm))
	require.NoError(t, os.WriteFile(filepath.Join(confDir, "cache.toml"), []byte(`cachedirs = ["cache"]`), domain.FilePerm))

	t.Setenv(domain.ConfigFileEnv, mainPath)
	p := config.NewParser(config.NewOSFS())

	cfg, err := p.ParseDefault()
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "fonts")}, cfg.FontDirs())
	assert.Equal(t, []string{filepath.Join(confDir, "cache")}, cfg.CacheDirs())

	info, err := os.Stat(mainPath)
	require.NoError(t, err)
	assert.Equal(t, info.ModTime().UnixNano(), cfg.Tracked()[mainPath])
}

func TestMapFS(t *testing.T) {
	mounted := config.NewMapFS("/etc/fontconf", fstest.MapFS{
		"fonts.yaml":    file("dirs: [/a]\n"),
		"conf.d/a.yaml": file(""),
		"conf.d/b.yaml": file(""),
		"conf.d/c.txt":  file(""),
	})

	t.Run("glob returns absolute matches", func(t *testing.T) {
		matches, err := mounted.Glob("/etc/fontconf/conf.d/*.yaml")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"/etc/fontconf/conf.d/a.yaml", "/etc/fontconf/conf.d/b.yaml"}, matches)
	})

	t.Run("bad pattern", func(t *testing.T) {
		_, err := mounted.Glob("/etc/fontconf/[")
		require.ErrorIs(t, err, path.ErrBadPattern)
	})

	t.Run("reads under root", func(t *testing.T) {
		data, err := mounted.ReadFile("/etc/fontconf/fonts.yaml")
		require.NoError(t, err)
		assert.Equal(t, "dirs: [/a]\n", string(data))

		info, err := mounted.Stat("/etc/fontconf/conf.d")
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("paths outside root are not found", func(t *testing.T) {
		_, err := mounted.Stat("/etc/fonts.yaml")
		require.Error(t, err)

		_, err = mounted.ReadFile("/etc/fontconf/../fontconf2/fonts.yaml")
		require.Error(t, err)
	})
}
