package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fontconf/internal/adapters/fs"
	"go.trai.ch/fontconf/internal/adapters/telemetry"
	"go.trai.ch/fontconf/internal/core/domain"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte("font"), domain.FilePerm))
}

func configWithDirs(t *testing.T, dirs ...string) *domain.Config {
	t.Helper()
	cfg := domain.NewConfig()
	for _, d := range dirs {
		require.NoError(t, cfg.AddFontDir(d))
	}
	return cfg
}

func TestScanner_Build(t *testing.T) {
	root := t.TempDir()
	fonts := filepath.Join(root, "fonts")
	writeFile(t, filepath.Join(fonts, "a.ttf"))
	writeFile(t, filepath.Join(fonts, "nested", "b.otf"))
	writeFile(t, filepath.Join(fonts, "nested", "notes.txt"))
	writeFile(t, filepath.Join(fonts, ".git", "c.ttf"))

	missing := filepath.Join(root, "missing")
	cfg := configWithDirs(t, fonts, missing)

	scanner := fs.NewScanner(fs.NewDirCache(), telemetry.NewNoOpTracer())
	require.NoError(t, scanner.Build(context.Background(), cfg))

	set := cfg.Fonts()
	require.Equal(t, 2, set.Len())

	f, ok := set.Lookup(filepath.Join(fonts, "a.ttf"))
	require.True(t, ok)
	assert.Equal(t, "TrueType", f.Format)
	assert.Equal(t, fonts, f.Dir)
	assert.Equal(t, int64(4), f.Size)

	_, ok = set.Lookup(filepath.Join(fonts, ".git", "c.ttf"))
	assert.False(t, ok)

	tracked := cfg.Tracked()
	assert.Contains(t, tracked, fonts)
	assert.Contains(t, tracked, filepath.Join(fonts, "nested"))
	assert.Equal(t, int64(0), tracked[missing])
}

func TestScanner_Build_FirstDirWins(t *testing.T) {
	root := t.TempDir()
	fonts := filepath.Join(root, "fonts")
	writeFile(t, filepath.Join(fonts, "sub", "x.ttf"))

	// The nested directory is listed first, so its fonts claim the path.
	sub := filepath.Join(fonts, "sub")
	cfg := configWithDirs(t, sub, fonts)

	scanner := fs.NewScanner(fs.NewDirCache(), telemetry.NewNoOpTracer())
	require.NoError(t, scanner.Build(context.Background(), cfg))

	f, ok := cfg.Fonts().Lookup(filepath.Join(sub, "x.ttf"))
	require.True(t, ok)
	assert.Equal(t, sub, f.Dir)
	assert.Equal(t, 1, cfg.Fonts().Len())
}

func TestScanner_Build_FileAsFontDir(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain.ttf")
	writeFile(t, file)

	cfg := configWithDirs(t, file)
	scanner := fs.NewScanner(fs.NewDirCache(), telemetry.NewNoOpTracer())
	require.NoError(t, scanner.Build(context.Background(), cfg))

	assert.Equal(t, 0, cfg.Fonts().Len())
	assert.NotZero(t, cfg.Tracked()[file])
}

func TestScanner_Build_CanceledContext(t *testing.T) {
	root := t.TempDir()
	cfg := configWithDirs(t, root)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scanner := fs.NewScanner(fs.NewDirCache(), telemetry.NewNoOpTracer())
	err := scanner.Build(ctx, cfg)
	require.ErrorIs(t, err, context.Canceled)
}

func TestScanner_Build_UsesCache(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.ttf"))

	cache := fs.NewDirCache()
	scanner := fs.NewScanner(cache, telemetry.NewNoOpTracer())

	first := configWithDirs(t, root)
	require.NoError(t, scanner.Build(context.Background(), first))
	assert.Equal(t, 1, cache.Len())

	// A new font changes the directory mtime and invalidates the entry.
	writeFile(t, filepath.Join(root, "b.ttf"))
	past := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(root, past, past))

	second := configWithDirs(t, root)
	require.NoError(t, scanner.Build(context.Background(), second))
	assert.Equal(t, 2, second.Fonts().Len())

	// Unchanged directories are served from the cache.
	third := configWithDirs(t, root)
	require.NoError(t, scanner.Build(context.Background(), third))
	assert.Equal(t, second.Fonts().Digest(), third.Fonts().Digest())
}
